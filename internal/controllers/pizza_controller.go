package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
)

const pizzaNotFound = "Pizza not found"

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// ListPizzas retrieves all pizzas
	ListPizzas(c *gin.Context)
	// GetPizza retrieves a pizza by its ID
	GetPizza(c *gin.Context)
	// CreatePizza creates a new pizza
	CreatePizza(c *gin.Context)
	// UpdatePizza updates an existing pizza
	UpdatePizza(c *gin.Context)
	// DeletePizza deletes a pizza and its restaurant associations
	DeletePizza(c *gin.Context)
}

type pizzaController struct {
	queries services.QueryService
	pizzas  services.PizzaService
	cascade services.CascadeDeleteService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(queries services.QueryService, pizzas services.PizzaService, cascade services.CascadeDeleteService) PizzaController {
	return &pizzaController{queries: queries, pizzas: pizzas, cascade: cascade}
}

// ListPizzas godoc
// @Summary Get all pizzas
// @Tags pizzas
// @Produce json
// @Success 200 {array} dto.Pizza
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas [get]
func (c *pizzaController) ListPizzas(ctx *gin.Context) {
	pizzas, err := c.queries.ListPizzas(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "")
		return
	}
	ctx.JSON(http.StatusOK, pizzas)
}

// GetPizza godoc
// @Summary Get pizza by ID
// @Tags pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} dto.Pizza
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /pizzas/{id} [get]
func (c *pizzaController) GetPizza(ctx *gin.Context) {
	id, ok := parseID(ctx, "pizza")
	if !ok {
		return
	}

	pizza, found, err := c.queries.GetPizzaByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, "")
		return
	}
	if !found {
		ctx.JSON(http.StatusNotFound, models.ErrorResponse{Error: pizzaNotFound})
		return
	}
	ctx.JSON(http.StatusOK, pizza)
}

type createPizzaRequest struct {
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// CreatePizza godoc
// @Summary Create a new pizza
// @Tags pizzas
// @Accept json
// @Produce json
// @Param pizza body createPizzaRequest true "Pizza"
// @Success 201 {object} dto.Pizza
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /pizzas [post]
func (c *pizzaController) CreatePizza(ctx *gin.Context) {
	var req createPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	pizza, err := c.pizzas.CreatePizza(ctx.Request.Context(), req.Name, req.Ingredients)
	if err != nil {
		respondError(ctx, err, "")
		return
	}
	ctx.JSON(http.StatusCreated, pizza)
}

type updatePizzaRequest struct {
	Name        *string `json:"name"`
	Ingredients *string `json:"ingredients"`
}

// UpdatePizza godoc
// @Summary Update a pizza
// @Description Changes the given fields of a pizza, omitted fields are kept
// @Tags pizzas
// @Accept json
// @Produce json
// @Param id path int true "Pizza ID"
// @Param pizza body updatePizzaRequest true "Fields to change"
// @Success 200 {object} dto.Pizza
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /pizzas/{id} [patch]
func (c *pizzaController) UpdatePizza(ctx *gin.Context) {
	id, ok := parseID(ctx, "pizza")
	if !ok {
		return
	}

	var req updatePizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	changes := services.PizzaChanges{Name: req.Name, Ingredients: req.Ingredients}
	pizza, err := c.pizzas.UpdatePizza(ctx.Request.Context(), id, changes)
	if err != nil {
		respondError(ctx, err, pizzaNotFound)
		return
	}
	ctx.JSON(http.StatusOK, pizza)
}

// DeletePizza godoc
// @Summary Delete a pizza
// @Description Deletes the pizza together with all of its restaurant associations
// @Tags pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /pizzas/{id} [delete]
func (c *pizzaController) DeletePizza(ctx *gin.Context) {
	id, ok := parseID(ctx, "pizza")
	if !ok {
		return
	}

	if _, err := c.cascade.DeletePizza(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err, pizzaNotFound)
		return
	}
	ctx.JSON(http.StatusOK, models.MessageResponse{Message: "Pizza successfully deleted."})
}
