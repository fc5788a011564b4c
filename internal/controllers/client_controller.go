package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/middleware"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
)

// ClientController lets an admin manage the OAuth2 clients it owns
type ClientController interface {
	CreateClient(c *gin.Context)
	ListClients(c *gin.Context)
	DeleteClient(c *gin.Context)
}

type clientController struct {
	clientService services.ClientService
}

func NewClientController(clientService services.ClientService) ClientController {
	return &clientController{clientService: clientService}
}

type createClientRequest struct {
	Name   string `json:"name" binding:"required"`
	Domain string `json:"domain"`
	Scopes string `json:"scopes"`
}

// CreateClient godoc
// @Summary Create OAuth2 client
// @Description Create a new OAuth2 client for API access. The secret is only returned once.
// @Tags OAuth2 Clients
// @Accept json
// @Produce json
// @Param client body createClientRequest true "Client details"
// @Success 201 {object} map[string]interface{} "Client created with client_id and client_secret"
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /admin/clients [post]
func (cc *clientController) CreateClient(c *gin.Context) {
	var req createClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	client, secret, err := cc.clientService.CreateClient(c.Request.Context(), services.NewClient{
		Name:   req.Name,
		Domain: req.Domain,
		Scopes: req.Scopes,
		UserID: c.GetUint(middleware.UserIDKey),
	})
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"client_id":     client.ID,
		"client_secret": secret,
		"name":          client.Name,
		"scopes":        client.Scopes,
		"grant_types":   client.GrantTypes,
	})
}

// ListClients godoc
// @Summary List OAuth2 clients
// @Description Get all OAuth2 clients owned by the authenticated user
// @Tags OAuth2 Clients
// @Produce json
// @Success 200 {array} models.OAuthClient
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /admin/clients [get]
func (cc *clientController) ListClients(c *gin.Context) {
	clients, err := cc.clientService.GetClientsByUserID(c.Request.Context(), c.GetUint(middleware.UserIDKey))
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, clients)
}

// DeleteClient godoc
// @Summary Delete OAuth2 client
// @Description Delete an OAuth2 client owned by the authenticated user
// @Tags OAuth2 Clients
// @Param id path string true "Client ID"
// @Success 204 "Client deleted successfully"
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /admin/clients/{id} [delete]
func (cc *clientController) DeleteClient(c *gin.Context) {
	if err := cc.clientService.DeleteClient(c.Request.Context(), c.Param("id"), c.GetUint(middleware.UserIDKey)); err != nil {
		respondError(c, err, "client_not_found")
		return
	}
	c.Status(http.StatusNoContent)
}
