package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "giving-tree-admin/docs"
	"giving-tree-admin/internal/service"
)

type Handler struct {
	svc service.Dashboard
}

func NewHandler(s service.Dashboard) *Handler {
	return &Handler{svc: s}
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), logRequests(), instrument())

	api := router.Group("/api")
	{
		api.GET("/charities", h.GetCharities)
		api.PUT("/charities/:id/toggle", h.ToggleCharity)
		api.DELETE("/charities/:id", h.DeleteCharity)
		api.POST("/charities/:id/drafts", h.OpenEditDraft)

		api.GET("/wishes", h.GetWishes)
		api.GET("/donations", h.GetDonations)
		api.GET("/stats", h.GetStats)
		api.GET("/submissions", h.GetSubmissions)

		drafts := api.Group("/drafts")
		{
			drafts.POST("", h.OpenCreateDraft)
			drafts.GET("/:id", h.GetDraft)
			drafts.DELETE("/:id", h.DiscardDraft)
			drafts.PATCH("/:id/fields", h.UpdateField)
			drafts.POST("/:id/wishes", h.AddWish)
			drafts.PATCH("/:id/wishes/:index", h.UpdateWish)
			drafts.DELETE("/:id/wishes/:index", h.RemoveWish)
			drafts.POST("/:id/image", h.UploadImage)
			drafts.POST("/:id/submit", h.SubmitDraft)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			newErrorResponse(c, http.StatusNotFound, "not found")
			return
		}
		c.Redirect(http.StatusTemporaryRedirect, "/swagger/index.html")
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
