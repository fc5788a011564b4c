package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
)

const restaurantNotFound = "Restaurant not found"

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// ListRestaurants retrieves all restaurants
	ListRestaurants(c *gin.Context)
	// GetRestaurant retrieves a restaurant by its ID
	GetRestaurant(c *gin.Context)
	// CreateRestaurant creates a new restaurant
	CreateRestaurant(c *gin.Context)
	// DeleteRestaurant deletes a restaurant and its pizza associations
	DeleteRestaurant(c *gin.Context)
}

type restaurantController struct {
	queries     services.QueryService
	restaurants services.RestaurantService
	cascade     services.CascadeDeleteService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(queries services.QueryService, restaurants services.RestaurantService, cascade services.CascadeDeleteService) RestaurantController {
	return &restaurantController{queries: queries, restaurants: restaurants, cascade: cascade}
}

// ListRestaurants godoc
// @Summary Get all restaurants
// @Tags restaurants
// @Produce json
// @Success 200 {array} dto.Restaurant
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [get]
func (c *restaurantController) ListRestaurants(ctx *gin.Context) {
	restaurants, err := c.queries.ListRestaurants(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "")
		return
	}
	ctx.JSON(http.StatusOK, restaurants)
}

// GetRestaurant godoc
// @Summary Get restaurant by ID
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} dto.Restaurant
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (c *restaurantController) GetRestaurant(ctx *gin.Context) {
	id, ok := parseID(ctx, "restaurant")
	if !ok {
		return
	}

	restaurant, found, err := c.queries.GetRestaurantByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, "")
		return
	}
	if !found {
		ctx.JSON(http.StatusNotFound, models.ErrorResponse{Error: restaurantNotFound})
		return
	}
	ctx.JSON(http.StatusOK, restaurant)
}

type createRestaurantRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// CreateRestaurant godoc
// @Summary Create a restaurant
// @Tags restaurants
// @Accept json
// @Produce json
// @Param restaurant body createRestaurantRequest true "Restaurant"
// @Success 201 {object} dto.Restaurant
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /restaurants [post]
func (c *restaurantController) CreateRestaurant(ctx *gin.Context) {
	var req createRestaurantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	restaurant, err := c.restaurants.CreateRestaurant(ctx.Request.Context(), req.Name, req.Address)
	if err != nil {
		respondError(ctx, err, "")
		return
	}
	ctx.JSON(http.StatusCreated, restaurant)
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Deletes the restaurant together with all of its pizza associations
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	id, ok := parseID(ctx, "restaurant")
	if !ok {
		return
	}

	if _, err := c.cascade.DeleteRestaurant(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err, restaurantNotFound)
		return
	}
	ctx.JSON(http.StatusOK, models.MessageResponse{Message: "Restaurant successfully deleted."})
}
