package model

import (
	"time"
)

// Purchase represents the database model for the purchase ledger.
// UserID references users by convention; the constraint is not enforced at
// the storage level.
type Purchase struct {
	ID               uint64    `gorm:"primaryKey;autoIncrement"`
	Reference        string    `gorm:"uniqueIndex;not null;size:36"`
	UserID           uint64    `gorm:"not null;index"`
	AmountPaise      int64     `gorm:"not null"`
	Micrograms       int64     `gorm:"not null"`
	RatePaisePerGram int64     `gorm:"not null"`
	Timestamp        time.Time `gorm:"not null"`
}

// TableName specifies the table name for Purchase
func (Purchase) TableName() string {
	return "purchases"
}
