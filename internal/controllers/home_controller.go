package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
)

type HomeController interface {
	Home(c *gin.Context)
	Health(c *gin.Context)
}

type homeController struct {
	ping func(ctx context.Context) error
}

// NewHomeController creates the controller for the index and health routes.
// ping checks the database and may be nil.
func NewHomeController(ping func(ctx context.Context) error) HomeController {
	return &homeController{ping: ping}
}

// Home godoc
// @Summary Welcome message
// @Tags home
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (c *homeController) Home(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"home": "Welcome to the Restaurant API."})
}

// Health godoc
// @Summary Health check
// @Description Reports whether the API and its database are reachable
// @Tags home
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} models.ErrorResponse
// @Router /health [get]
func (c *homeController) Health(ctx *gin.Context) {
	if c.ping != nil {
		if err := c.ping(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: err.Error()})
			return
		}
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "gin-restaurant-api",
	})
}
