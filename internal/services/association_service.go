package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/dto"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/store"
)

// AssociationService links pizzas to restaurants at a price
type AssociationService interface {
	// CreateAssociation resolves both parents by name and inserts exactly one
	// link. If either name is unknown nothing is written and ErrNotFound is returned.
	CreateAssociation(ctx context.Context, pizzaName, restaurantName string, price decimal.Decimal) (dto.RestaurantPizzaDetail, error)
	// DeleteAssociation removes a single link
	DeleteAssociation(ctx context.Context, id uint) error
}

type associationService struct {
	store *store.Store
}

func NewAssociationService(s *store.Store) AssociationService {
	return &associationService{store: s}
}

func (s *associationService) CreateAssociation(ctx context.Context, pizzaName, restaurantName string, price decimal.Decimal) (dto.RestaurantPizzaDetail, error) {
	var detail dto.RestaurantPizzaDetail

	err := s.store.Transaction(ctx, func(tx *store.Store) error {
		pizza, found, err := tx.GetPizzaByName(ctx, pizzaName)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("pizza %q %w", pizzaName, ErrNotFound)
		}

		restaurant, found, err := tx.GetRestaurantByName(ctx, restaurantName)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("restaurant %q %w", restaurantName, ErrNotFound)
		}

		rp := models.RestaurantPizza{
			RestaurantID: restaurant.ID,
			PizzaID:      pizza.ID,
			Price:        price,
		}
		if err := tx.CreateRestaurantPizza(ctx, &rp); err != nil {
			return err
		}

		detail = dto.NewRestaurantPizzaDetail(rp, pizza, restaurant)
		return nil
	})
	if err != nil {
		return dto.RestaurantPizzaDetail{}, err
	}

	log.WithFields(log.Fields{
		"restaurant_pizza_id": detail.ID,
		"pizza_id":            detail.PizzaID,
		"restaurant_id":       detail.RestaurantID,
	}).Debug("Association created")
	return detail, nil
}

func (s *associationService) DeleteAssociation(ctx context.Context, id uint) error {
	return s.store.DeleteRestaurantPizza(ctx, id)
}
