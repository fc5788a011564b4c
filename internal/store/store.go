// Package store persists restaurants, pizzas and their priced associations.
//
// Every method runs against the gorm handle the Store was built with. Inside
// Transaction that handle is the transaction, so the same methods compose
// into atomic units.
package store

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
)

const nameQueryPattern = "name = ?"

// Store is the entity store
type Store struct {
	db       *gorm.DB
	validate *validator.Validate
}

// New creates a Store on top of an opened and migrated database
func New(db *gorm.DB) *Store {
	return &Store{db: db, validate: validator.New()}
}

// Transaction runs fn with a Store bound to a single database transaction.
// The transaction is committed if fn returns nil and rolled back otherwise.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx, validate: s.validate})
	})
	return translateError(err)
}

func (s *Store) insert(ctx context.Context, entity any) error {
	return translateError(s.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error)
}

func (s *Store) check(entity string, value any) error {
	if err := s.validate.Struct(value); err != nil {
		return validationError(entity, err)
	}
	return nil
}

// ensureNameFree fails with ErrValidation if another row of model already uses name.
func (s *Store) ensureNameFree(ctx context.Context, entity string, model any, name string, exceptID uint) error {
	var count int64
	q := s.db.WithContext(ctx).Model(model).Where(nameQueryPattern, name)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return storageError(err)
	}
	if count > 0 {
		return validationNameTaken(entity, name)
	}
	return nil
}

// first loads the first row matching query. A missing row is reported through
// the bool, not as an error.
func first[T any](ctx context.Context, db *gorm.DB, query any, args ...any) (T, bool, error) {
	var out T
	err := db.WithContext(ctx).Where(query, args...).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return out, false, nil
	}
	if err != nil {
		return out, false, storageError(err)
	}
	return out, true, nil
}

// all loads every row in insertion order.
func all[T any](ctx context.Context, db *gorm.DB) ([]T, error) {
	var out []T
	if err := db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, storageError(err)
	}
	return out, nil
}

// deleteByID removes a single row and reports ErrNotFound when nothing matched.
func deleteByID(ctx context.Context, db *gorm.DB, entity string, model any, id uint) error {
	result := db.WithContext(ctx).Delete(model, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(entity)
	}
	return nil
}

// Truncate removes every restaurant, pizza and association. Associations go
// first so the restricting foreign keys never fire.
func (s *Store) Truncate(ctx context.Context) error {
	return s.Transaction(ctx, func(tx *Store) error {
		for _, model := range []any{&models.RestaurantPizza{}, &models.Pizza{}, &models.Restaurant{}} {
			if err := tx.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return translateError(err)
			}
		}
		return nil
	})
}

// Counts reports how many restaurants, pizzas and associations are stored
func (s *Store) Counts(ctx context.Context) (restaurants, pizzas, associations int64, err error) {
	counts := []*int64{&restaurants, &pizzas, &associations}
	for i, model := range []any{&models.Restaurant{}, &models.Pizza{}, &models.RestaurantPizza{}} {
		if err = s.db.WithContext(ctx).Model(model).Count(counts[i]).Error; err != nil {
			return 0, 0, 0, storageError(err)
		}
	}
	return restaurants, pizzas, associations, nil
}
