package models

import (
	"time"
)

// User owns OAuth clients; its Role ends up in the issued access tokens
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;not null"`
	Name      string
	Role      string `gorm:"default:'admin'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
