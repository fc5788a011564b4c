package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/database"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/store"
)

func setupTestDB(t *testing.T) (*gorm.DB, *store.Store) {
	t.Helper()

	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: "file::memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })

	return db, store.New(db)
}

func mustCreateRestaurant(t *testing.T, s *store.Store, name string) models.Restaurant {
	t.Helper()
	r := models.Restaurant{Name: name, Address: name + " street"}
	require.NoError(t, s.CreateRestaurant(context.Background(), &r))
	return r
}

func mustCreatePizza(t *testing.T, s *store.Store, name string) models.Pizza {
	t.Helper()
	p := models.Pizza{Name: name, Ingredients: "Dough, Tomato"}
	require.NoError(t, s.CreatePizza(context.Background(), &p))
	return p
}

func countLinks(t *testing.T, s *store.Store, filter store.RestaurantPizzaFilter) int64 {
	t.Helper()
	n, err := s.CountRestaurantPizzas(context.Background(), filter)
	require.NoError(t, err)
	return n
}

func TestCreateAssociation(t *testing.T) {
	ctx := context.Background()
	_, s := setupTestDB(t)
	svc := NewAssociationService(s)

	r := mustCreateRestaurant(t, s, "Sottocasa")
	p := mustCreatePizza(t, s, "Diavola")

	detail, err := svc.CreateAssociation(ctx, "Diavola", "Sottocasa", decimal.RequireFromString("12.5"))
	require.NoError(t, err)

	assert.NotZero(t, detail.ID)
	assert.Equal(t, p.ID, detail.PizzaID)
	assert.Equal(t, r.ID, detail.RestaurantID)
	assert.Equal(t, 12.5, detail.Price)
	assert.Equal(t, "Diavola", detail.Pizza.Name)
	assert.Equal(t, "Sottocasa", detail.Restaurant.Name)
	assert.Equal(t, "Sottocasa street", detail.Restaurant.Address)
	assert.Equal(t, int64(1), countLinks(t, s, store.RestaurantPizzaFilter{}))
}

func TestCreateAssociationUnknownNames(t *testing.T) {
	ctx := context.Background()
	_, s := setupTestDB(t)
	svc := NewAssociationService(s)

	mustCreateRestaurant(t, s, "Sottocasa")
	mustCreatePizza(t, s, "Diavola")

	tests := []struct {
		name       string
		pizza      string
		restaurant string
		message    string
	}{
		{"unknown pizza", "Hawaiian", "Sottocasa", `pizza "Hawaiian" not found`},
		{"unknown restaurant", "Diavola", "Nowhere", `restaurant "Nowhere" not found`},
		{"both unknown", "Hawaiian", "Nowhere", `pizza "Hawaiian" not found`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateAssociation(ctx, tt.pizza, tt.restaurant, decimal.NewFromInt(10))
			require.ErrorIs(t, err, ErrNotFound)
			assert.Equal(t, tt.message, err.Error())
			assert.Equal(t, int64(0), countLinks(t, s, store.RestaurantPizzaFilter{}))
		})
	}
}

func TestCreateAssociationAllowsDuplicatesAndAnyPrice(t *testing.T) {
	ctx := context.Background()
	_, s := setupTestDB(t)
	svc := NewAssociationService(s)

	mustCreateRestaurant(t, s, "Sottocasa")
	mustCreatePizza(t, s, "Diavola")

	first, err := svc.CreateAssociation(ctx, "Diavola", "Sottocasa", decimal.NewFromInt(-3))
	require.NoError(t, err)
	second, err := svc.CreateAssociation(ctx, "Diavola", "Sottocasa", decimal.NewFromInt(1000))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, -3.0, first.Price)
	assert.Equal(t, 1000.0, second.Price)
	assert.Equal(t, int64(2), countLinks(t, s, store.RestaurantPizzaFilter{}))
}

func TestDeleteAssociation(t *testing.T) {
	ctx := context.Background()
	_, s := setupTestDB(t)
	svc := NewAssociationService(s)

	mustCreateRestaurant(t, s, "Sottocasa")
	mustCreatePizza(t, s, "Diavola")
	detail, err := svc.CreateAssociation(ctx, "Diavola", "Sottocasa", decimal.NewFromInt(9))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAssociation(ctx, detail.ID))
	assert.ErrorIs(t, svc.DeleteAssociation(ctx, detail.ID), ErrNotFound)
}

func TestCascadeDeleteRestaurant(t *testing.T) {
	ctx := context.Background()
	_, s := setupTestDB(t)
	cascade := NewCascadeDeleteService(s)
	queries := NewQueryService(s)

	target := mustCreateRestaurant(t, s, "Target")
	other := mustCreateRestaurant(t, s, "Other")
	pizzas := []models.Pizza{
		mustCreatePizza(t, s, "Margherita"),
		mustCreatePizza(t, s, "Marinara"),
		mustCreatePizza(t, s, "Capricciosa"),
	}
	for _, p := range pizzas {
		for _, r := range []models.Restaurant{target, other} {
			rp := models.RestaurantPizza{RestaurantID: r.ID, PizzaID: p.ID, Price: decimal.NewFromInt(8)}
			require.NoError(t, s.CreateRestaurantPizza(ctx, &rp))
		}
	}

	removed, err := cascade.DeleteRestaurant(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(len(pizzas)), removed)

	_, found, err := queries.GetRestaurantByID(ctx, target.ID)
	require.NoError(t, err)
	assert.False(t, found)

	assert.Equal(t, int64(0), countLinks(t, s, store.RestaurantPizzaFilter{RestaurantID: target.ID}))
	assert.Equal(t, int64(len(pizzas)), countLinks(t, s, store.RestaurantPizzaFilter{RestaurantID: other.ID}))

	all, err := queries.ListPizzas(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(pizzas))
}

func TestCascadeDeletePizza(t *testing.T) {
	ctx := context.Background()
	_, s := setupTestDB(t)
	cascade := NewCascadeDeleteService(s)

	p := mustCreatePizza(t, s, "Margherita")
	kept := mustCreatePizza(t, s, "Marinara")
	for i := 0; i < 4; i++ {
		r := mustCreateRestaurant(t, s, fmt.Sprintf("Restaurant %d", i))
		for _, pizzaID := range []uint{p.ID, kept.ID} {
			rp := models.RestaurantPizza{RestaurantID: r.ID, PizzaID: pizzaID, Price: decimal.NewFromInt(5)}
			require.NoError(t, s.CreateRestaurantPizza(ctx, &rp))
		}
	}

	removed, err := cascade.DeletePizza(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)
	assert.Equal(t, int64(0), countLinks(t, s, store.RestaurantPizzaFilter{PizzaID: p.ID}))
	assert.Equal(t, int64(4), countLinks(t, s, store.RestaurantPizzaFilter{PizzaID: kept.ID}))
}

func TestCascadeDeleteWithoutAssociations(t *testing.T) {
	ctx := context.Background()
	_, s := setupTestDB(t)
	cascade := NewCascadeDeleteService(s)

	r := mustCreateRestaurant(t, s, "Lonely")
	removed, err := cascade.DeleteRestaurant(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)
}

func TestCascadeDeleteMissing(t *testing.T) {
	ctx := context.Background()
	_, s := setupTestDB(t)
	cascade := NewCascadeDeleteService(s)

	_, err := cascade.DeleteRestaurant(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrStorage)

	_, err = cascade.DeletePizza(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCascadeDeleteRollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	db, s := setupTestDB(t)
	cascade := NewCascadeDeleteService(s)

	r := mustCreateRestaurant(t, s, "Fragile")
	for _, name := range []string{"Margherita", "Marinara"} {
		p := mustCreatePizza(t, s, name)
		rp := models.RestaurantPizza{RestaurantID: r.ID, PizzaID: p.ID, Price: decimal.NewFromInt(7)}
		require.NoError(t, s.CreateRestaurantPizza(ctx, &rp))
	}

	// Fail the parent delete after the associations are already gone.
	err := db.Callback().Delete().Before("gorm:delete").Register("test:fail_restaurant_delete", func(tx *gorm.DB) {
		if tx.Statement.Table == "Restaurant" {
			_ = tx.AddError(errors.New("disk full"))
		}
	})
	require.NoError(t, err)

	removed, err := cascade.DeleteRestaurant(ctx, r.ID)
	require.ErrorIs(t, err, ErrStorage)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Zero(t, removed)

	_, found, err := s.GetRestaurant(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(2), countLinks(t, s, store.RestaurantPizzaFilter{RestaurantID: r.ID}))
}

func TestQueryService(t *testing.T) {
	ctx := context.Background()
	_, s := setupTestDB(t)
	queries := NewQueryService(s)
	associations := NewAssociationService(s)

	t.Run("empty", func(t *testing.T) {
		restaurants, err := queries.ListRestaurants(ctx)
		require.NoError(t, err)
		assert.Empty(t, restaurants)

		_, found, err := queries.GetPizzaByID(ctx, 1)
		require.NoError(t, err)
		assert.False(t, found)

		_, found, err = queries.GetAssociationByID(ctx, 1)
		require.NoError(t, err)
		assert.False(t, found)
	})

	r := mustCreateRestaurant(t, s, "Sottocasa")
	p := mustCreatePizza(t, s, "Diavola")
	detail, err := associations.CreateAssociation(ctx, "Diavola", "Sottocasa", decimal.RequireFromString("12.499"))
	require.NoError(t, err)

	t.Run("lists", func(t *testing.T) {
		restaurants, err := queries.ListRestaurants(ctx)
		require.NoError(t, err)
		require.Len(t, restaurants, 1)
		assert.Equal(t, r.ID, restaurants[0].ID)

		pizzas, err := queries.ListPizzas(ctx)
		require.NoError(t, err)
		require.Len(t, pizzas, 1)
		assert.Equal(t, "Dough, Tomato", pizzas[0].Ingredients)

		links, err := queries.ListAssociations(ctx)
		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, 12.5, links[0].Price)
	})

	t.Run("get by id", func(t *testing.T) {
		restaurant, found, err := queries.GetRestaurantByID(ctx, r.ID)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "Sottocasa", restaurant.Name)

		pizza, found, err := queries.GetPizzaByID(ctx, p.ID)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "Diavola", pizza.Name)

		link, found, err := queries.GetAssociationByID(ctx, detail.ID)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, p.ID, link.PizzaID)
		assert.Equal(t, r.ID, link.RestaurantID)
	})
}

func TestPizzaService(t *testing.T) {
	ctx := context.Background()
	_, s := setupTestDB(t)
	svc := NewPizzaService(s)

	created, err := svc.CreatePizza(ctx, "Quattro Formaggi", "Mozzarella, Gorgonzola, Fontina, Parmesan")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = svc.CreatePizza(ctx, "Quattro Formaggi", "Other")
	assert.ErrorIs(t, err, ErrValidation)

	name := "Quattro Stagioni"
	updated, err := svc.UpdatePizza(ctx, created.ID, PizzaChanges{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, created.Ingredients, updated.Ingredients)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	empty := ""
	_, err = svc.UpdatePizza(ctx, created.ID, PizzaChanges{Ingredients: &empty})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdatePizza(ctx, 999, PizzaChanges{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRestaurantService(t *testing.T) {
	ctx := context.Background()
	_, s := setupTestDB(t)
	svc := NewRestaurantService(s)

	created, err := svc.CreateRestaurant(ctx, "Kiki's", "2 Elm St")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = svc.CreateRestaurant(ctx, "Kiki's", "3 Elm St")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateRestaurant(ctx, "", "3 Elm St")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestClientService(t *testing.T) {
	ctx := context.Background()
	db, _ := setupTestDB(t)
	users := NewUserService(db)
	clients := NewClientService(db)

	owner, err := users.EnsureUser(ctx, "admin@restaurant.local", "Admin", RoleAdmin)
	require.NoError(t, err)

	client, secret, err := clients.CreateClient(ctx, NewClient{Name: "ci", UserID: owner.ID})
	require.NoError(t, err)
	assert.NotEmpty(t, client.ID)
	assert.NotEmpty(t, secret)
	assert.NotEqual(t, secret, client.Secret)
	assert.True(t, client.VerifyPassword(secret))
	assert.Equal(t, "read write", client.Scopes)
	assert.Equal(t, "client_credentials", client.GrantTypes)

	fixed, secret, err := clients.CreateClient(ctx, NewClient{ID: "dev-client", Secret: "dev-secret", Name: "dev", UserID: owner.ID})
	require.NoError(t, err)
	assert.Equal(t, "dev-client", fixed.ID)
	assert.Equal(t, "dev-secret", secret)

	_, _, err = clients.CreateClient(ctx, NewClient{ID: "dev-client", Name: "dev", UserID: owner.ID})
	assert.ErrorIs(t, err, ErrValidation)

	_, _, err = clients.CreateClient(ctx, NewClient{UserID: owner.ID})
	assert.ErrorIs(t, err, ErrValidation)

	owned, err := clients.GetClientsByUserID(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, owned, 2)

	stored, found, err := clients.GetClientByID(ctx, "dev-client")
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, stored.VerifyPassword("dev-secret"))

	assert.ErrorIs(t, clients.DeleteClient(ctx, "dev-client", owner.ID+1), ErrNotFound)
	require.NoError(t, clients.DeleteClient(ctx, "dev-client", owner.ID))

	_, found, err = clients.GetClientByID(ctx, "dev-client")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUserService(t *testing.T) {
	ctx := context.Background()
	db, _ := setupTestDB(t)
	users := NewUserService(db)

	created, err := users.EnsureUser(ctx, "user@restaurant.local", "User", RoleUser)
	require.NoError(t, err)
	assert.Equal(t, RoleUser, created.Role)

	again, err := users.EnsureUser(ctx, "user@restaurant.local", "Someone else", RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	assert.Equal(t, RoleUser, again.Role)

	_, err = users.EnsureUser(ctx, "x@restaurant.local", "X", "root")
	assert.ErrorIs(t, err, ErrValidation)

	byID, found, err := users.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "user@restaurant.local", byID.Email)

	_, found, err = users.GetUserByID(ctx, 999)
	require.NoError(t, err)
	assert.False(t, found)
}
