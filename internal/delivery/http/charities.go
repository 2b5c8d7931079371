package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"giving-tree-admin/internal/models"
)

type getCharitiesResponse struct {
	Data []models.Charity `json:"data"`
}

type getWishesResponse struct {
	Data []models.WishProgress `json:"data"`
}

type getDonationsResponse struct {
	Data []models.Donation `json:"data"`
}

type getSubmissionsResponse struct {
	Data []models.Submission `json:"data"`
}

func charityID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		newErrorResponse(c, http.StatusBadRequest, "invalid charity id")
		return 0, false
	}
	return id, true
}

// GetCharities
// @Summary GetCharities
// @Description Lists every charity with its status and wish count
// @ID get-charities
// @Produce json
// @Success 200 {object} getCharitiesResponse
// @Failure 502 {object} errorResponse
// @Router /api/charities [get]
func (h *Handler) GetCharities(c *gin.Context) {
	charities, err := h.svc.Charities(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, getCharitiesResponse{Data: charities})
}

// ToggleCharity
// @Summary ToggleCharity
// @Description Flips a charity between active and inactive
// @ID toggle-charity
// @Produce json
// @Param id path int true "charity id"
// @Success 200 {object} statusResponse
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /api/charities/{id}/toggle [put]
func (h *Handler) ToggleCharity(c *gin.Context) {
	id, ok := charityID(c)
	if !ok {
		return
	}
	msg, err := h.svc.ToggleCharity(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, statusResponse{Message: msg})
}

// DeleteCharity
// @Summary DeleteCharity
// @Description Deletes a charity and its wishes
// @ID delete-charity
// @Produce json
// @Param id path int true "charity id"
// @Success 200 {object} statusResponse
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /api/charities/{id} [delete]
func (h *Handler) DeleteCharity(c *gin.Context) {
	id, ok := charityID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteCharity(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, statusResponse{Message: "Charity deleted successfully!"})
}

// GetWishes
// @Summary GetWishes
// @Description Lists every wish with how much of it is funded
// @ID get-wishes
// @Produce json
// @Success 200 {object} getWishesResponse
// @Failure 502 {object} errorResponse
// @Router /api/wishes [get]
func (h *Handler) GetWishes(c *gin.Context) {
	wishes, err := h.svc.Wishes(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, getWishesResponse{Data: wishes})
}

// GetDonations
// @Summary GetDonations
// @ID get-donations
// @Produce json
// @Success 200 {object} getDonationsResponse
// @Failure 502 {object} errorResponse
// @Router /api/donations [get]
func (h *Handler) GetDonations(c *gin.Context) {
	donations, err := h.svc.Donations(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, getDonationsResponse{Data: donations})
}

// GetStats
// @Summary GetStats
// @Description Dashboard header numbers
// @ID get-stats
// @Produce json
// @Success 200 {object} models.Stats
// @Failure 502 {object} errorResponse
// @Router /api/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	st, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// GetSubmissions
// @Summary GetSubmissions
// @Description Audit log of accepted charity submissions, newest first
// @ID get-submissions
// @Produce json
// @Success 200 {object} getSubmissionsResponse
// @Failure 500 {object} errorResponse
// @Router /api/submissions [get]
func (h *Handler) GetSubmissions(c *gin.Context) {
	subs, err := h.svc.Submissions()
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, getSubmissionsResponse{Data: subs})
}
