package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/selimyuksel/NetTakip/internal/dto"
	"github.com/selimyuksel/NetTakip/internal/service"
)

// WriteServiceError maps the service sentinel errors onto HTTP statuses and
// writes the standard error body. Anything unrecognized is a 500.
func WriteServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Record not found"})
	case errors.Is(err, service.ErrForbidden):
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: "Record belongs to another user"})
	case errors.Is(err, service.ErrInvalidTransition):
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Message: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error", Details: []string{err.Error()}})
	}
}
