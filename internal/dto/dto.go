// Package dto declares the wire projections of the persisted models.
// Storage structs never leave the service layer; handlers only see these.
package dto

import (
	"time"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
)

// Restaurant is the public view of a restaurant
type Restaurant struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Pizza is the public view of a pizza
type Pizza struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Ingredients string    `json:"ingredients"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PizzaSummary is the pizza part of a RestaurantPizzaDetail
type PizzaSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// RestaurantPizza is the public view of an association row.
// Price is rounded to cents before it is stored, so the float is exact enough
// for display.
type RestaurantPizza struct {
	ID           uint      `json:"id"`
	PizzaID      uint      `json:"pizza_id"`
	RestaurantID uint      `json:"restaurant_id"`
	Price        float64   `json:"price"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RestaurantPizzaDetail is returned when an association is created
type RestaurantPizzaDetail struct {
	RestaurantPizza
	Pizza      PizzaSummary `json:"pizza"`
	Restaurant Restaurant   `json:"restaurant"`
}

func FromRestaurant(r models.Restaurant) Restaurant {
	return Restaurant{ID: r.ID, Name: r.Name, Address: r.Address}
}

func FromRestaurants(rs []models.Restaurant) []Restaurant {
	out := make([]Restaurant, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRestaurant(r))
	}
	return out
}

func FromPizza(p models.Pizza) Pizza {
	return Pizza{
		ID:          p.ID,
		Name:        p.Name,
		Ingredients: p.Ingredients,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromPizzas(ps []models.Pizza) []Pizza {
	out := make([]Pizza, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPizza(p))
	}
	return out
}

func FromRestaurantPizza(rp models.RestaurantPizza) RestaurantPizza {
	return RestaurantPizza{
		ID:           rp.ID,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
		Price:        rp.Price.Round(2).InexactFloat64(),
		CreatedAt:    rp.CreatedAt,
		UpdatedAt:    rp.UpdatedAt,
	}
}

func FromRestaurantPizzas(rps []models.RestaurantPizza) []RestaurantPizza {
	out := make([]RestaurantPizza, 0, len(rps))
	for _, rp := range rps {
		out = append(out, FromRestaurantPizza(rp))
	}
	return out
}

// NewRestaurantPizzaDetail combines a stored association with the parents it was resolved from
func NewRestaurantPizzaDetail(rp models.RestaurantPizza, p models.Pizza, r models.Restaurant) RestaurantPizzaDetail {
	return RestaurantPizzaDetail{
		RestaurantPizza: FromRestaurantPizza(rp),
		Pizza:           PizzaSummary{ID: p.ID, Name: p.Name, Ingredients: p.Ingredients},
		Restaurant:      FromRestaurant(r),
	}
}
