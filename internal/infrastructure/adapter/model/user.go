package model

import (
	"time"
)

// User represents the database model for user accounts
type User struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	Name           string    `gorm:"not null;size:255"`
	BalancePaise   int64     `gorm:"not null"` // Cash balance in paise
	GoldMicrograms int64     `gorm:"not null;default:0"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
