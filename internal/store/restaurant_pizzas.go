package store

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
)

const restaurantPizzaEntity = "restaurant pizza"

// RestaurantPizzaFilter narrows CountRestaurantPizzas; zero fields match everything
type RestaurantPizzaFilter struct {
	RestaurantID uint
	PizzaID      uint
}

// CreateRestaurantPizza inserts rp without touching the referenced parents.
// The price is rounded to cents before it is written.
func (s *Store) CreateRestaurantPizza(ctx context.Context, rp *models.RestaurantPizza) error {
	if err := s.check(restaurantPizzaEntity, rp); err != nil {
		return err
	}
	rp.Price = rp.Price.Round(2)
	return s.insert(ctx, rp)
}

func (s *Store) GetRestaurantPizza(ctx context.Context, id uint) (models.RestaurantPizza, bool, error) {
	return first[models.RestaurantPizza](ctx, s.db, "id = ?", id)
}

func (s *Store) ListRestaurantPizzas(ctx context.Context) ([]models.RestaurantPizza, error) {
	return all[models.RestaurantPizza](ctx, s.db)
}

func (s *Store) DeleteRestaurantPizza(ctx context.Context, id uint) error {
	return deleteByID(ctx, s.db, restaurantPizzaEntity, &models.RestaurantPizza{}, id)
}

// DeleteRestaurantPizzasByRestaurant removes every association of a restaurant
// and returns how many rows went away.
func (s *Store) DeleteRestaurantPizzasByRestaurant(ctx context.Context, restaurantID uint) (int64, error) {
	result := s.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID).Delete(&models.RestaurantPizza{})
	if result.Error != nil {
		return 0, translateError(result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteRestaurantPizzasByPizza removes every association of a pizza.
func (s *Store) DeleteRestaurantPizzasByPizza(ctx context.Context, pizzaID uint) (int64, error) {
	result := s.db.WithContext(ctx).Where("pizza_id = ?", pizzaID).Delete(&models.RestaurantPizza{})
	if result.Error != nil {
		return 0, translateError(result.Error)
	}
	return result.RowsAffected, nil
}

func (s *Store) CountRestaurantPizzas(ctx context.Context, filter RestaurantPizzaFilter) (int64, error) {
	var count int64
	q := s.db.WithContext(ctx).Model(&models.RestaurantPizza{})
	if filter.RestaurantID != 0 {
		q = q.Where("restaurant_id = ?", filter.RestaurantID)
	}
	if filter.PizzaID != 0 {
		q = q.Where("pizza_id = ?", filter.PizzaID)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, storageError(err)
	}
	return count, nil
}

// SetRestaurantPizzaPrice overwrites the price of one association
func (s *Store) SetRestaurantPizzaPrice(ctx context.Context, id uint, price decimal.Decimal) error {
	result := s.db.WithContext(ctx).Model(&models.RestaurantPizza{}).
		Where("id = ?", id).
		Update("price", price.Round(2))
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(restaurantPizzaEntity)
	}
	return nil
}
