package store

import (
	"context"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
)

const pizzaEntity = "pizza"

// CreatePizza inserts p; CreatedAt and UpdatedAt are set by gorm
func (s *Store) CreatePizza(ctx context.Context, p *models.Pizza) error {
	if err := s.check(pizzaEntity, p); err != nil {
		return err
	}
	if err := s.ensureNameFree(ctx, pizzaEntity, &models.Pizza{}, p.Name, 0); err != nil {
		return err
	}
	return s.insert(ctx, p)
}

func (s *Store) GetPizza(ctx context.Context, id uint) (models.Pizza, bool, error) {
	return first[models.Pizza](ctx, s.db, "id = ?", id)
}

func (s *Store) GetPizzaByName(ctx context.Context, name string) (models.Pizza, bool, error) {
	return first[models.Pizza](ctx, s.db, nameQueryPattern, name)
}

func (s *Store) ListPizzas(ctx context.Context) ([]models.Pizza, error) {
	return all[models.Pizza](ctx, s.db)
}

// UpdatePizza writes name and ingredients of an existing pizza and refreshes
// its UpdatedAt. Save is avoided on purpose since it upserts missing rows.
func (s *Store) UpdatePizza(ctx context.Context, p *models.Pizza) error {
	if err := s.check(pizzaEntity, p); err != nil {
		return err
	}
	if err := s.ensureNameFree(ctx, pizzaEntity, &models.Pizza{}, p.Name, p.ID); err != nil {
		return err
	}
	result := s.db.WithContext(ctx).Model(p).Select("name", "ingredients", "updated_at").Updates(p)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(pizzaEntity)
	}
	return nil
}

// DeletePizza removes the pizza row only, see DeleteRestaurant.
func (s *Store) DeletePizza(ctx context.Context, id uint) error {
	return deleteByID(ctx, s.db, pizzaEntity, &models.Pizza{}, id)
}
