package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
)

const restaurantPizzaNotFound = "RestaurantPizza not found"

// RestaurantPizzaController handles the pizza offers of restaurants
type RestaurantPizzaController interface {
	ListRestaurantPizzas(c *gin.Context)
	GetRestaurantPizza(c *gin.Context)
	CreateRestaurantPizza(c *gin.Context)
	DeleteRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	queries      services.QueryService
	associations services.AssociationService
}

func NewRestaurantPizzaController(queries services.QueryService, associations services.AssociationService) RestaurantPizzaController {
	return &restaurantPizzaController{queries: queries, associations: associations}
}

// ListRestaurantPizzas godoc
// @Summary Get all restaurant pizzas
// @Tags restaurantspizza
// @Produce json
// @Success 200 {array} dto.RestaurantPizza
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurantspizza [get]
func (c *restaurantPizzaController) ListRestaurantPizzas(ctx *gin.Context) {
	rps, err := c.queries.ListAssociations(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "")
		return
	}
	ctx.JSON(http.StatusOK, rps)
}

// GetRestaurantPizza godoc
// @Summary Get restaurant pizza by ID
// @Tags restaurantspizza
// @Produce json
// @Param id path int true "RestaurantPizza ID"
// @Success 200 {object} dto.RestaurantPizza
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurantspizza/{id} [get]
func (c *restaurantPizzaController) GetRestaurantPizza(ctx *gin.Context) {
	id, ok := parseID(ctx, "restaurant pizza")
	if !ok {
		return
	}

	rp, found, err := c.queries.GetAssociationByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, "")
		return
	}
	if !found {
		ctx.JSON(http.StatusNotFound, models.ErrorResponse{Error: restaurantPizzaNotFound})
		return
	}
	ctx.JSON(http.StatusOK, rp)
}

type createRestaurantPizzaRequest struct {
	Price          string `form:"price" json:"price"`
	PizzaName      string `form:"pizza_name" json:"pizza_name"`
	RestaurantName string `form:"restaurant_name" json:"restaurant_name"`
}

func (r createRestaurantPizzaRequest) missing() []string {
	var fields []string
	for _, f := range []struct{ name, value string }{
		{"price", r.Price},
		{"pizza_name", r.PizzaName},
		{"restaurant_name", r.RestaurantName},
	} {
		if strings.TrimSpace(f.value) == "" {
			fields = append(fields, f.name)
		}
	}
	return fields
}

// CreateRestaurantPizza godoc
// @Summary Offer a pizza at a restaurant
// @Description Links an existing pizza to an existing restaurant, both given by name
// @Tags restaurantspizza
// @Accept x-www-form-urlencoded
// @Produce json
// @Param price formData string true "Price"
// @Param pizza_name formData string true "Pizza name"
// @Param restaurant_name formData string true "Restaurant name"
// @Success 200 {object} dto.RestaurantPizzaDetail
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /restaurantspizza [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var req createRestaurantPizzaRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if missing := req.missing(); len(missing) > 0 {
		ctx.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: strings.Join(missing, ", ") + " required"})
		return
	}

	price, err := decimal.NewFromString(strings.TrimSpace(req.Price))
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: "price must be a decimal number"})
		return
	}

	detail, err := c.associations.CreateAssociation(ctx.Request.Context(), req.PizzaName, req.RestaurantName, price)
	if err != nil {
		respondError(ctx, err, "")
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// DeleteRestaurantPizza godoc
// @Summary Remove a pizza offer
// @Tags restaurantspizza
// @Produce json
// @Param id path int true "RestaurantPizza ID"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /restaurantspizza/{id} [delete]
func (c *restaurantPizzaController) DeleteRestaurantPizza(ctx *gin.Context) {
	id, ok := parseID(ctx, "restaurant pizza")
	if !ok {
		return
	}

	if err := c.associations.DeleteAssociation(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err, restaurantPizzaNotFound)
		return
	}
	ctx.JSON(http.StatusOK, models.MessageResponse{Message: "RestaurantPizza successfully deleted."})
}
