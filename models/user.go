package models

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName    string    `gorm:"not null" json:"firstName"`
	LastName     string    `gorm:"not null" json:"lastName"`
	Email        string    `gorm:"unique;not null" json:"email"`
	Password     string    `gorm:"not null" json:"-"` // Don't expose password in JSON
	PhoneNumber  string    `json:"phoneNumber"`
	ProfilePhoto string    `json:"profilePhoto"`
	Role         string    `gorm:"not null;default:'user'" json:"role"` // user, admin
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Items []Item `json:"items,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// UserSummary is the public slice of a user embedded in item, message and
// report payloads.
type UserSummary struct {
	ID           uint   `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	ProfilePhoto string `json:"profilePhoto"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		ProfilePhoto: u.ProfilePhoto,
	}
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
