// Package seed fills the store with fake restaurants, pizzas and prices.
package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/store"
)

const maxNameLength = 50

// OutlierPrice is written to one random association after seeding
var OutlierPrice = decimal.NewFromInt(100)

// Options controls how much data Run creates. Seed 0 picks a random seed.
type Options struct {
	Restaurants  int
	Pizzas       int
	Associations int
	Seed         uint64
}

// DefaultOptions returns the sizes the API is demonstrated with
func DefaultOptions() Options {
	return Options{Restaurants: 20, Pizzas: 200, Associations: 400}
}

// Result describes what Run wrote
type Result struct {
	Restaurants  int
	Pizzas       int
	Associations int
	OutlierID    uint
}

// Run wipes the store and creates a fresh data set in a single transaction.
func Run(ctx context.Context, s *store.Store, opts Options) (Result, error) {
	if opts.Restaurants < 1 || opts.Pizzas < 1 || opts.Associations < 1 {
		return Result{}, fmt.Errorf("%w: seed needs at least one restaurant, pizza and association", store.ErrValidation)
	}

	faker := gofakeit.New(opts.Seed)
	var res Result

	log.WithFields(log.Fields{
		"restaurants":  opts.Restaurants,
		"pizzas":       opts.Pizzas,
		"associations": opts.Associations,
	}).Info("Seeding database")

	err := s.Transaction(ctx, func(tx *store.Store) error {
		if err := tx.Truncate(ctx); err != nil {
			return err
		}

		restaurants := make([]models.Restaurant, 0, opts.Restaurants)
		for _, name := range uniqueNames(opts.Restaurants, faker.Company) {
			r := models.Restaurant{
				Name:    name,
				Address: fmt.Sprintf("%s, %s", faker.Street(), faker.City()),
			}
			if err := tx.CreateRestaurant(ctx, &r); err != nil {
				return err
			}
			restaurants = append(restaurants, r)
		}

		pizzas := make([]models.Pizza, 0, opts.Pizzas)
		pizzaName := func() string { return faker.Adjective() + " " + faker.Noun() }
		for _, name := range uniqueNames(opts.Pizzas, pizzaName) {
			p := models.Pizza{Name: name, Ingredients: ingredients(faker)}
			if err := tx.CreatePizza(ctx, &p); err != nil {
				return err
			}
			pizzas = append(pizzas, p)
		}

		ids := make([]uint, 0, opts.Associations)
		for range opts.Associations {
			rp := models.RestaurantPizza{
				RestaurantID: restaurants[faker.Number(0, len(restaurants)-1)].ID,
				PizzaID:      pizzas[faker.Number(0, len(pizzas)-1)].ID,
				Price:        price(faker),
			}
			if err := tx.CreateRestaurantPizza(ctx, &rp); err != nil {
				return err
			}
			ids = append(ids, rp.ID)
		}

		res.OutlierID = ids[faker.Number(0, len(ids)-1)]
		if err := tx.SetRestaurantPizzaPrice(ctx, res.OutlierID, OutlierPrice); err != nil {
			return err
		}

		res.Restaurants = len(restaurants)
		res.Pizzas = len(pizzas)
		res.Associations = len(ids)
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	log.WithField("outlier_id", res.OutlierID).Info("Database seeded")
	return res, nil
}

// price is a whole number between 5 and 15 plus a random fraction, in cents
func price(faker *gofakeit.Faker) decimal.Decimal {
	whole := decimal.NewFromInt(int64(faker.Number(5, 15)))
	return whole.Add(decimal.NewFromFloat(faker.Float64Range(0, 1))).Round(2)
}

func ingredients(faker *gofakeit.Faker) string {
	parts := []string{"Dough"}
	for range faker.Number(2, 4) {
		parts = append(parts, faker.Vegetable())
	}
	return strings.Join(parts, ", ")
}

// uniqueNames draws n distinct names from gen. Repeats get a numeric suffix
// so the loop always terminates.
func uniqueNames(n int, gen func() string) []string {
	seen := make(map[string]struct{}, n)
	names := make([]string, 0, n)
	for len(names) < n {
		name := truncate(strings.TrimSpace(gen()), maxNameLength)
		if _, dup := seen[name]; dup {
			suffix := fmt.Sprintf(" %d", len(names)+1)
			name = truncate(name, maxNameLength-len(suffix)) + suffix
			if _, dup := seen[name]; dup {
				continue
			}
		}
		if name == "" {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n]))
}
