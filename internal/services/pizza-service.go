package services

import (
	"context"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/dto"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/store"
)

// PizzaChanges holds the fields of a partial pizza update, nil means unchanged
type PizzaChanges struct {
	Name        *string
	Ingredients *string
}

// PizzaService provides the write operations on pizzas that are not deletes
type PizzaService interface {
	// CreatePizza creates a new pizza in the database
	CreatePizza(ctx context.Context, name, ingredients string) (dto.Pizza, error)
	// UpdatePizza applies changes to an existing pizza and refreshes updated_at
	UpdatePizza(ctx context.Context, id uint, changes PizzaChanges) (dto.Pizza, error)
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	store *store.Store
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(s *store.Store) PizzaService {
	return &pizzaService{store: s}
}

func (s *pizzaService) CreatePizza(ctx context.Context, name, ingredients string) (dto.Pizza, error) {
	pizza := models.Pizza{Name: name, Ingredients: ingredients}
	if err := s.store.CreatePizza(ctx, &pizza); err != nil {
		return dto.Pizza{}, err
	}
	return dto.FromPizza(pizza), nil
}

func (s *pizzaService) UpdatePizza(ctx context.Context, id uint, changes PizzaChanges) (dto.Pizza, error) {
	var updated models.Pizza
	err := s.store.Transaction(ctx, func(tx *store.Store) error {
		pizza, found, err := tx.GetPizza(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return errPizzaIDNotFound(id)
		}

		if changes.Name != nil {
			pizza.Name = *changes.Name
		}
		if changes.Ingredients != nil {
			pizza.Ingredients = *changes.Ingredients
		}
		if err := tx.UpdatePizza(ctx, &pizza); err != nil {
			return err
		}
		updated = pizza
		return nil
	})
	if err != nil {
		return dto.Pizza{}, err
	}
	return dto.FromPizza(updated), nil
}
