package services

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/store"
)

// CascadeDeleteService removes a restaurant or a pizza together with every
// association row that references it. Both steps share one transaction, so a
// failure leaves the data exactly as it was.
type CascadeDeleteService interface {
	// DeleteRestaurant returns the number of association rows removed with the restaurant
	DeleteRestaurant(ctx context.Context, id uint) (int64, error)
	// DeletePizza returns the number of association rows removed with the pizza
	DeletePizza(ctx context.Context, id uint) (int64, error)
}

type cascadeDeleteService struct {
	store *store.Store
}

func NewCascadeDeleteService(s *store.Store) CascadeDeleteService {
	return &cascadeDeleteService{store: s}
}

func (s *cascadeDeleteService) DeleteRestaurant(ctx context.Context, id uint) (int64, error) {
	var removed int64
	err := s.store.Transaction(ctx, func(tx *store.Store) error {
		_, found, err := tx.GetRestaurant(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return errRestaurantIDNotFound(id)
		}

		if removed, err = tx.DeleteRestaurantPizzasByRestaurant(ctx, id); err != nil {
			return err
		}
		return tx.DeleteRestaurant(ctx, id)
	})
	if err != nil {
		return 0, cascadeError(err)
	}

	log.WithFields(log.Fields{"restaurant_id": id, "associations_removed": removed}).Info("Restaurant deleted")
	return removed, nil
}

func (s *cascadeDeleteService) DeletePizza(ctx context.Context, id uint) (int64, error) {
	var removed int64
	err := s.store.Transaction(ctx, func(tx *store.Store) error {
		_, found, err := tx.GetPizza(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return errPizzaIDNotFound(id)
		}

		if removed, err = tx.DeleteRestaurantPizzasByPizza(ctx, id); err != nil {
			return err
		}
		return tx.DeletePizza(ctx, id)
	})
	if err != nil {
		return 0, cascadeError(err)
	}

	log.WithFields(log.Fields{"pizza_id": id, "associations_removed": removed}).Info("Pizza deleted")
	return removed, nil
}

// cascadeError keeps NotFound and reports every other failure as a storage
// error, including constraint errors raised half way through the cascade.
func cascadeError(err error) error {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrStorage) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrStorage, err)
}

func errRestaurantIDNotFound(id uint) error {
	return fmt.Errorf("restaurant %d %w", id, ErrNotFound)
}

func errPizzaIDNotFound(id uint) error {
	return fmt.Errorf("pizza %d %w", id, ErrNotFound)
}
