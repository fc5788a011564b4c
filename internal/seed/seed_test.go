package seed

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/database"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/store"
)

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: "file::memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })

	return store.New(db)
}

func TestRunCreatesFullDataSet(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	opts := DefaultOptions()
	opts.Seed = 42
	res, err := Run(ctx, s, opts)
	require.NoError(t, err)
	assert.Equal(t, 20, res.Restaurants)
	assert.Equal(t, 200, res.Pizzas)
	assert.Equal(t, 400, res.Associations)

	restaurants, err := s.ListRestaurants(ctx)
	require.NoError(t, err)
	pizzas, err := s.ListPizzas(ctx)
	require.NoError(t, err)
	associations, err := s.ListRestaurantPizzas(ctx)
	require.NoError(t, err)
	require.Len(t, restaurants, 20)
	require.Len(t, pizzas, 200)
	require.Len(t, associations, 400)

	restaurantIDs := map[uint]bool{}
	for _, r := range restaurants {
		restaurantIDs[r.ID] = true
	}
	pizzaNames := map[string]bool{}
	pizzaIDs := map[uint]bool{}
	for _, p := range pizzas {
		assert.False(t, pizzaNames[p.Name], "duplicate pizza name %q", p.Name)
		pizzaNames[p.Name] = true
		pizzaIDs[p.ID] = true
		assert.NotEmpty(t, p.Ingredients)
	}

	outliers := 0
	for _, rp := range associations {
		assert.True(t, restaurantIDs[rp.RestaurantID], "dangling restaurant_id %d", rp.RestaurantID)
		assert.True(t, pizzaIDs[rp.PizzaID], "dangling pizza_id %d", rp.PizzaID)
		if rp.Price.Equal(OutlierPrice) {
			outliers++
			assert.Equal(t, res.OutlierID, rp.ID)
			continue
		}
		assert.True(t, rp.Price.GreaterThanOrEqual(decimal.NewFromInt(5)), "price %s below 5", rp.Price)
		assert.True(t, rp.Price.LessThanOrEqual(decimal.NewFromInt(16)), "price %s above 16", rp.Price)
		assert.True(t, rp.Price.Equal(rp.Price.Round(2)), "price %s not in cents", rp.Price)
	}
	assert.Equal(t, 1, outliers)
}

func TestRunReplacesExistingData(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	keep := models.Restaurant{Name: "Old Place", Address: "gone soon"}
	require.NoError(t, s.CreateRestaurant(ctx, &keep))

	_, err := Run(ctx, s, Options{Restaurants: 2, Pizzas: 3, Associations: 5, Seed: 7})
	require.NoError(t, err)

	_, found, err := s.GetRestaurantByName(ctx, "Old Place")
	require.NoError(t, err)
	assert.False(t, found)

	restaurants, pizzas, associations, err := s.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 5}, []int64{restaurants, pizzas, associations})
}

func TestRunRejectsEmptyOptions(t *testing.T) {
	s := setupTestStore(t)

	_, err := Run(context.Background(), s, Options{Restaurants: 1, Pizzas: 1})
	assert.ErrorIs(t, err, store.ErrValidation)
}

func TestUniqueNames(t *testing.T) {
	names := uniqueNames(5, func() string { return "Same" })
	require.Len(t, names, 5)

	seen := map[string]bool{}
	for _, n := range names {
		assert.False(t, seen[n], n)
		seen[n] = true
	}
	assert.Equal(t, "Same", names[0])
}

func TestTruncateKeepsRunes(t *testing.T) {
	assert.Equal(t, "Caffè", truncate("Caffè Roma", 5))
	assert.Equal(t, "short", truncate("short", 50))
}
