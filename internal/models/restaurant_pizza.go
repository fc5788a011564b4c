package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RestaurantPizza is the priced link between a Restaurant and a Pizza.
// Both foreign keys restrict deletes, so a parent can only be removed after
// its links are gone.
type RestaurantPizza struct {
	ID           uint            `gorm:"primaryKey"`
	RestaurantID uint            `gorm:"not null;index" validate:"required"`
	Restaurant   Restaurant      `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" validate:"-"`
	PizzaID      uint            `gorm:"not null;index" validate:"required"`
	Pizza        Pizza           `gorm:"foreignKey:PizzaID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" validate:"-"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}
