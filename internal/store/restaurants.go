package store

import (
	"context"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
)

const restaurantEntity = "restaurant"

// CreateRestaurant inserts r and fills in its generated ID
func (s *Store) CreateRestaurant(ctx context.Context, r *models.Restaurant) error {
	if err := s.check(restaurantEntity, r); err != nil {
		return err
	}
	if err := s.ensureNameFree(ctx, restaurantEntity, &models.Restaurant{}, r.Name, 0); err != nil {
		return err
	}
	return s.insert(ctx, r)
}

func (s *Store) GetRestaurant(ctx context.Context, id uint) (models.Restaurant, bool, error) {
	return first[models.Restaurant](ctx, s.db, "id = ?", id)
}

func (s *Store) GetRestaurantByName(ctx context.Context, name string) (models.Restaurant, bool, error) {
	return first[models.Restaurant](ctx, s.db, nameQueryPattern, name)
}

func (s *Store) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	return all[models.Restaurant](ctx, s.db)
}

// DeleteRestaurant removes the restaurant row only. It fails while
// associations still reference it; use the cascade service to remove both.
func (s *Store) DeleteRestaurant(ctx context.Context, id uint) error {
	return deleteByID(ctx, s.db, restaurantEntity, &models.Restaurant{}, id)
}
