package services

import (
	"context"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/dto"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/store"
)

// RestaurantService creates restaurants
type RestaurantService interface {
	CreateRestaurant(ctx context.Context, name, address string) (dto.Restaurant, error)
}

type restaurantService struct {
	store *store.Store
}

func NewRestaurantService(s *store.Store) RestaurantService {
	return &restaurantService{store: s}
}

func (s *restaurantService) CreateRestaurant(ctx context.Context, name, address string) (dto.Restaurant, error) {
	restaurant := models.Restaurant{Name: name, Address: address}
	if err := s.store.CreateRestaurant(ctx, &restaurant); err != nil {
		return dto.Restaurant{}, err
	}
	return dto.FromRestaurant(restaurant), nil
}
