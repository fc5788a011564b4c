package models

// Restaurant represents a restaurant that serves pizzas through RestaurantPizza rows
type Restaurant struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"size:50;uniqueIndex;not null" validate:"required,max=50"`
	Address string `gorm:"not null" validate:"required"`
}

func (Restaurant) TableName() string {
	return "Restaurant"
}
