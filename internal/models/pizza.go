package models

import (
	"time"
)

// Pizza represents a pizza with its properties
type Pizza struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"size:50;uniqueIndex;not null" validate:"required,max=50"`
	Ingredients string    `gorm:"not null" validate:"required"`
	CreatedAt   time.Time // set by gorm on insert
	UpdatedAt   time.Time // set by gorm on every save
}

func (Pizza) TableName() string {
	return "Pizza"
}
