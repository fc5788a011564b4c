package services

import (
	"context"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/dto"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/store"
)

// QueryService provides the read-only projections of the stored entities.
// Lookups by id report absence through the bool result, never as an error.
type QueryService interface {
	ListRestaurants(ctx context.Context) ([]dto.Restaurant, error)
	ListPizzas(ctx context.Context) ([]dto.Pizza, error)
	ListAssociations(ctx context.Context) ([]dto.RestaurantPizza, error)
	GetRestaurantByID(ctx context.Context, id uint) (dto.Restaurant, bool, error)
	GetPizzaByID(ctx context.Context, id uint) (dto.Pizza, bool, error)
	GetAssociationByID(ctx context.Context, id uint) (dto.RestaurantPizza, bool, error)
}

type queryService struct {
	store *store.Store
}

func NewQueryService(s *store.Store) QueryService {
	return &queryService{store: s}
}

func (s *queryService) ListRestaurants(ctx context.Context) ([]dto.Restaurant, error) {
	restaurants, err := s.store.ListRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromRestaurants(restaurants), nil
}

func (s *queryService) ListPizzas(ctx context.Context) ([]dto.Pizza, error) {
	pizzas, err := s.store.ListPizzas(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromPizzas(pizzas), nil
}

func (s *queryService) ListAssociations(ctx context.Context) ([]dto.RestaurantPizza, error) {
	rps, err := s.store.ListRestaurantPizzas(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromRestaurantPizzas(rps), nil
}

func (s *queryService) GetRestaurantByID(ctx context.Context, id uint) (dto.Restaurant, bool, error) {
	restaurant, found, err := s.store.GetRestaurant(ctx, id)
	if err != nil || !found {
		return dto.Restaurant{}, false, err
	}
	return dto.FromRestaurant(restaurant), true, nil
}

func (s *queryService) GetPizzaByID(ctx context.Context, id uint) (dto.Pizza, bool, error) {
	pizza, found, err := s.store.GetPizza(ctx, id)
	if err != nil || !found {
		return dto.Pizza{}, false, err
	}
	return dto.FromPizza(pizza), true, nil
}

func (s *queryService) GetAssociationByID(ctx context.Context, id uint) (dto.RestaurantPizza, bool, error) {
	rp, found, err := s.store.GetRestaurantPizza(ctx, id)
	if err != nil || !found {
		return dto.RestaurantPizza{}, false, err
	}
	return dto.FromRestaurantPizza(rp), true, nil
}
