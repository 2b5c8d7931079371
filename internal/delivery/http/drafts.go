package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"giving-tree-admin/internal/form"
	"giving-tree-admin/internal/models"
)

type fieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

type draftResponse struct {
	ID    string     `json:"id"`
	State form.State `json:"state"`
}

type imageResponse struct {
	ImageURL string     `json:"imageUrl"`
	State    form.State `json:"state"`
}

type submitResponse struct {
	Message string                `json:"message"`
	Charity models.CharityPayload `json:"charity"`
	State   form.State            `json:"state"`
}

func (h *Handler) draft(c *gin.Context) (*form.Controller, bool) {
	ctrl, err := h.svc.Draft(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return nil, false
	}
	return ctrl, true
}

// respond sends the draft state, or the error alongside it so the form can
// show the message without a second request.
func respond(c *gin.Context, ctrl *form.Controller, err error) {
	st := ctrl.State()
	if err != nil {
		c.AbortWithStatusJSON(statusFor(err), draftErrorResponse{Message: err.Error(), State: st})
		return
	}
	c.JSON(http.StatusOK, draftResponse{ID: c.Param("id"), State: st})
}

// OpenCreateDraft
// @Summary OpenCreateDraft
// @Description Opens an empty charity form with the minimum number of wishes
// @ID open-create-draft
// @Produce json
// @Success 201 {object} draftResponse
// @Router /api/drafts [post]
func (h *Handler) OpenCreateDraft(c *gin.Context) {
	id, st := h.svc.OpenCreateDraft()
	c.JSON(http.StatusCreated, draftResponse{ID: id, State: st})
}

// OpenEditDraft
// @Summary OpenEditDraft
// @Description Opens a form pre-filled from an existing charity and its wishes
// @ID open-edit-draft
// @Produce json
// @Param id path int true "charity id"
// @Success 201 {object} draftResponse
// @Failure 400,404 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /api/charities/{id}/drafts [post]
func (h *Handler) OpenEditDraft(c *gin.Context) {
	cid, ok := charityID(c)
	if !ok {
		return
	}
	id, st, err := h.svc.OpenEditDraft(c.Request.Context(), cid)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, draftResponse{ID: id, State: st})
}

// GetDraft
// @Summary GetDraft
// @ID get-draft
// @Produce json
// @Param id path string true "draft id"
// @Success 200 {object} draftResponse
// @Failure 404 {object} errorResponse
// @Router /api/drafts/{id} [get]
func (h *Handler) GetDraft(c *gin.Context) {
	ctrl, ok := h.draft(c)
	if !ok {
		return
	}
	respond(c, ctrl, nil)
}

// DiscardDraft
// @Summary DiscardDraft
// @ID discard-draft
// @Param id path string true "draft id"
// @Success 204
// @Failure 404 {object} errorResponse
// @Router /api/drafts/{id} [delete]
func (h *Handler) DiscardDraft(c *gin.Context) {
	if err := h.svc.DiscardDraft(c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateField
// @Summary UpdateField
// @Description Sets one of name, description, website or imageUrl
// @ID update-draft-field
// @Accept json
// @Produce json
// @Param id path string true "draft id"
// @Param input body fieldRequest true "field and raw value"
// @Success 200 {object} draftResponse
// @Failure 400,404,409 {object} draftErrorResponse
// @Router /api/drafts/{id}/fields [patch]
func (h *Handler) UpdateField(c *gin.Context) {
	var req fieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid input body")
		return
	}
	ctrl, ok := h.draft(c)
	if !ok {
		return
	}
	respond(c, ctrl, ctrl.UpdateField(form.Field(req.Field), req.Value))
}

// AddWish
// @Summary AddWish
// @Description Appends a blank wish unless the form is at its maximum
// @ID add-draft-wish
// @Produce json
// @Param id path string true "draft id"
// @Success 200 {object} draftResponse
// @Failure 404,409,422 {object} draftErrorResponse
// @Router /api/drafts/{id}/wishes [post]
func (h *Handler) AddWish(c *gin.Context) {
	ctrl, ok := h.draft(c)
	if !ok {
		return
	}
	respond(c, ctrl, ctrl.AddLineItem())
}

func wishIndex(c *gin.Context) (int, bool) {
	i, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid wish index")
		return 0, false
	}
	return i, true
}

// UpdateWish
// @Summary UpdateWish
// @Description Sets name, description, quantity or unitPrice of one wish; numbers that do not parse are ignored
// @ID update-draft-wish
// @Accept json
// @Produce json
// @Param id path string true "draft id"
// @Param index path int true "zero-based wish index"
// @Param input body fieldRequest true "field and raw value"
// @Success 200 {object} draftResponse
// @Failure 400,404,409 {object} draftErrorResponse
// @Router /api/drafts/{id}/wishes/{index} [patch]
func (h *Handler) UpdateWish(c *gin.Context) {
	idx, ok := wishIndex(c)
	if !ok {
		return
	}
	var req fieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid input body")
		return
	}
	ctrl, ok := h.draft(c)
	if !ok {
		return
	}
	respond(c, ctrl, ctrl.UpdateLineItem(idx, form.LineItemField(req.Field), req.Value))
}

// RemoveWish
// @Summary RemoveWish
// @ID remove-draft-wish
// @Produce json
// @Param id path string true "draft id"
// @Param index path int true "zero-based wish index"
// @Success 200 {object} draftResponse
// @Failure 400,404,409,422 {object} draftErrorResponse
// @Router /api/drafts/{id}/wishes/{index} [delete]
func (h *Handler) RemoveWish(c *gin.Context) {
	idx, ok := wishIndex(c)
	if !ok {
		return
	}
	ctrl, ok := h.draft(c)
	if !ok {
		return
	}
	respond(c, ctrl, ctrl.RemoveLineItem(idx))
}

// UploadImage
// @Summary UploadImage
// @Description Uploads the charity image and stores its public URL on the draft
// @ID upload-draft-image
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "draft id"
// @Param file formData file true "png, jpg, jpeg or webp"
// @Success 200 {object} imageResponse
// @Failure 400,404,413 {object} draftErrorResponse
// @Failure 501,502 {object} draftErrorResponse
// @Router /api/drafts/{id}/image [post]
func (h *Handler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "file is required")
		return
	}
	ctrl, ok := h.draft(c)
	if !ok {
		return
	}
	f, err := fh.Open()
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	defer f.Close()

	url, err := ctrl.AttachImage(c.Request.Context(), fh.Filename, f)
	if err != nil {
		respond(c, ctrl, err)
		return
	}
	c.JSON(http.StatusOK, imageResponse{ImageURL: url, State: ctrl.State()})
}

// SubmitDraft
// @Summary SubmitDraft
// @Description Validates the form and creates or updates the charity on the backend
// @ID submit-draft
// @Produce json
// @Param id path string true "draft id"
// @Success 200 {object} submitResponse
// @Failure 404 {object} errorResponse
// @Failure 409,422 {object} draftErrorResponse
// @Failure 502 {object} draftErrorResponse
// @Router /api/drafts/{id}/submit [post]
func (h *Handler) SubmitDraft(c *gin.Context) {
	payload, st, err := h.svc.SubmitDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		if st.Mode == "" {
			abortWithError(c, err)
			return
		}
		c.AbortWithStatusJSON(statusFor(err), draftErrorResponse{Message: err.Error(), State: st})
		return
	}
	msg := "Charity created successfully!"
	if st.Mode == form.ModeEdit {
		msg = "Charity updated successfully!"
	}
	c.JSON(http.StatusOK, submitResponse{Message: msg, Charity: payload, State: st})
}
