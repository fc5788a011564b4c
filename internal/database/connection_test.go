package database

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
)

func TestDSN(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      DatabaseConfig
		expected string
	}{
		{
			name:     "sqlite enables foreign keys",
			cfg:      DatabaseConfig{Driver: "sqlite", Path: "restaurants.sqlite"},
			expected: "restaurants.sqlite?_foreign_keys=on",
		},
		{
			name:     "sqlite keeps existing query",
			cfg:      DatabaseConfig{Driver: "", Path: "file::memory:?cache=shared"},
			expected: "file::memory:?cache=shared&_foreign_keys=on",
		},
		{
			name:     "sqlite does not duplicate the pragma",
			cfg:      DatabaseConfig{Driver: "sqlite3", Path: "db.sqlite?_foreign_keys=on"},
			expected: "db.sqlite?_foreign_keys=on",
		},
		{
			name:     "pure go sqlite uses pragma syntax",
			cfg:      DatabaseConfig{Driver: "sqlite-nocgo", Path: "db.sqlite"},
			expected: "db.sqlite?_pragma=foreign_keys(1)",
		},
		{
			name: "postgres from parts",
			cfg: DatabaseConfig{Driver: "postgresql", Host: "db", Port: "5432", User: "u",
				Password: "p", Name: "restaurants", SSLMode: "disable"},
			expected: "host=db user=u password=p dbname=restaurants port=5432 sslmode=disable",
		},
		{
			name:     "postgres url wins",
			cfg:      DatabaseConfig{Driver: "postgres", URL: "postgres://u:p@db/restaurants", Host: "ignored"},
			expected: "postgres://u:p@db/restaurants",
		},
		{
			name:     "mysql from parts",
			cfg:      DatabaseConfig{Driver: "mysql", Host: "db", Port: "3306", User: "u", Password: "p", Name: "restaurants"},
			expected: "u:p@tcp(db:3306)/restaurants?charset=utf8mb4&parseTime=True&loc=UTC",
		},
		{
			name:     "unknown driver",
			cfg:      DatabaseConfig{Driver: "oracle"},
			expected: "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cfg.DSN())
		})
	}
}

func TestStringMasksPassword(t *testing.T) {
	cfg := DatabaseConfig{Driver: "postgres", User: "u", Password: "hunter2"}
	assert.NotContains(t, cfg.String(), "hunter2")
	assert.Contains(t, cfg.String(), "[REDACTED]")
}

func TestInitDatabaseUnsupportedDriver(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "oracle"})
	assert.Nil(t, db)
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := InitDatabase(DatabaseConfig{Driver: "sqlite", Path: "file::memory:"})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestMigrateCreatesTables(t *testing.T) {
	db := setupTestDB(t)

	for _, table := range []string{"Restaurant", "Pizza", "restaurant_pizzas", "oauth_clients", "oauth_tokens", "users"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s should exist", table)
	}
}

func TestForeignKeysAreEnforced(t *testing.T) {
	db := setupTestDB(t)

	orphan := models.RestaurantPizza{RestaurantID: 42, PizzaID: 7, Price: decimal.NewFromFloat(9.5)}
	err := db.Create(&orphan).Error
	assert.Error(t, err, "an association without parents must be rejected")
}

func TestDeleteParentIsRestricted(t *testing.T) {
	db := setupTestDB(t)

	restaurant := models.Restaurant{Name: "Tony's", Address: "1 Main St"}
	pizza := models.Pizza{Name: "Margherita", Ingredients: "Tomato, Mozzarella, Basil"}
	require.NoError(t, db.Create(&restaurant).Error)
	require.NoError(t, db.Create(&pizza).Error)
	link := models.RestaurantPizza{RestaurantID: restaurant.ID, PizzaID: pizza.ID, Price: decimal.NewFromFloat(12.5)}
	require.NoError(t, db.Omit("Restaurant", "Pizza").Create(&link).Error)

	err := db.Delete(&models.Restaurant{}, restaurant.ID).Error
	assert.Error(t, err, "deleting a referenced restaurant must fail")

	var count int64
	require.NoError(t, db.Model(&models.Restaurant{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
