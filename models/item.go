package models

import (
	"time"
)

const (
	ItemStatusAvailable = "available"
	ItemStatusSold      = "sold"
)

type Item struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null;type:text" json:"description"`
	Price       float64   `gorm:"not null;type:numeric(10,2)" json:"price"`
	Category    string    `gorm:"not null" json:"category"`
	Condition   string    `gorm:"not null" json:"condition"`
	Photo       string    `json:"photo"`
	Status      string    `gorm:"not null;default:'available'" json:"status"` // available, sold
	Approved    bool      `gorm:"not null;default:false" json:"approved"`
	UserID      uint      `gorm:"not null" json:"user_id"`
	User        *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
