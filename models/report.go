package models

import (
	"time"
)

const (
	ReportStatusPending       = "pending"
	ReportStatusInvestigating = "investigating"
	ReportStatusResolved      = "resolved"
	ReportStatusRejected      = "rejected"
)

// Report targets exactly one of TargetUserID or ItemID; the controller
// enforces the exclusivity before the row is written. A report outlives its
// target (the reference is nulled when the user or item goes away) but not
// its reporter.
type Report struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ReporterID   uint      `gorm:"not null" json:"reporter_id"`
	TargetUserID *uint     `json:"target_user_id"`
	ItemID       *uint     `json:"item_id"`
	Reason       string    `gorm:"not null;type:text" json:"reason"`
	Status       string    `gorm:"not null;default:'pending'" json:"status"` // pending, investigating, resolved, rejected
	Reporter     *User     `json:"reporter,omitempty" gorm:"foreignKey:ReporterID;constraint:OnDelete:CASCADE"`
	TargetUser   *User     `json:"targetUser,omitempty" gorm:"foreignKey:TargetUserID;constraint:OnDelete:SET NULL"`
	Item         *Item     `json:"item,omitempty" gorm:"foreignKey:ItemID;constraint:OnDelete:SET NULL"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
