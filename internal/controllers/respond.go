package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
)

// respondError maps the error taxonomy onto a status code and an
// {"error": msg} body. notFound replaces the message of a NotFound error
// when it is not empty.
func respondError(ctx *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		msg := notFound
		if msg == "" {
			msg = err.Error()
		}
		ctx.JSON(http.StatusNotFound, models.ErrorResponse{Error: msg})
	case errors.Is(err, services.ErrValidation):
		ctx.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: err.Error()})
	default:
		log.WithError(err).WithField("path", ctx.FullPath()).Error("Request failed")
		ctx.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
	}
}

// parseID reads the :id path parameter, writing a 400 response when it is
// not a positive integer.
func parseID(ctx *gin.Context, entity string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid " + entity + " ID format"})
		return 0, false
	}
	return uint(id), true
}
