package handler

import (
	"errors"
	"net/http"

	"palmcafe/internal/service"
	"palmcafe/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	msgInternal = "Internal server error"
	msgRender   = "Could not generate invoice document"
)

// statusFor maps a service error to the HTTP status and the message the
// client sees. Only validation and not-found messages are passed through.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, service.ErrRender):
		return http.StatusInternalServerError, msgRender
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

// respondError writes the error envelope and records err on the context so
// the request logger prints the detail.
func respondError(c *gin.Context, err error) {
	status, msg := statusFor(err)
	_ = c.Error(err)
	c.JSON(status, response.Error(status, msg))
}

func respondBindError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
}
