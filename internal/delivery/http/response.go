package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"giving-tree-admin/internal/form"
	"giving-tree-admin/internal/repository/cache"
	"giving-tree-admin/internal/service"
	"giving-tree-admin/internal/uploader"
)

type errorResponse struct {
	Message string `json:"message"`
}

// draftErrorResponse is returned when a draft operation fails but the form
// still has state worth re-rendering.
type draftErrorResponse struct {
	Message string     `json:"message"`
	State   form.State `json:"state"`
}

type statusResponse struct {
	Message string `json:"message"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	if statusCode >= http.StatusInternalServerError {
		logrus.WithField("path", c.Request.URL.Path).Error(message)
	}
	c.AbortWithStatusJSON(statusCode, errorResponse{Message: message})
}

// statusFor maps domain errors onto HTTP codes. Anything from the Giving Tree
// backend, or unclassified, is a bad gateway since the dashboard only proxies.
func statusFor(err error) int {
	var cached cache.ErrorHandler
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, form.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, form.ErrSubmitInProgress):
		return http.StatusConflict
	case errors.Is(err, form.ErrUnknownField), errors.Is(err, form.ErrLineItemIndex),
		errors.Is(err, uploader.ErrUnsupportedFormat):
		return http.StatusBadRequest
	case errors.Is(err, uploader.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, form.ErrNoUploader):
		return http.StatusNotImplemented
	case errors.As(err, &cached):
		return cached.StatusCode
	default:
		return http.StatusBadGateway
	}
}

func abortWithError(c *gin.Context, err error) {
	newErrorResponse(c, statusFor(err), err.Error())
}
