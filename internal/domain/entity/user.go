package entity

import (
	"strings"
	"time"

	errs "github.com/kuberai/gold-service/internal/domain/error"
	coreport "github.com/kuberai/gold-service/internal/domain/port/core"
)

// User represents an account holding a cash balance and accumulated gold.
// Balance and gold weight are private so every mutation goes through the
// invariant-preserving methods below.
type User struct {
	ID             uint64    // Unique identifier, generated by the store
	Name           string    // Display name, immutable after creation
	balancePaise   int64     // Cash balance in paise, never negative
	goldMicrograms int64     // Gold held in micrograms, never decreases
	CreatedAt      time.Time // When the account was created
	UpdatedAt      time.Time // When the account was last mutated
}

// NewUser creates a new user with the given name and initial deposit in paise
func NewUser(name string, initialDepositPaise int64, timeProvider coreport.TimeProvider) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.ErrInvalidName
	}
	if initialDepositPaise < 0 {
		return nil, errs.ErrNegativeAmount
	}

	now := timeProvider.Now()
	return &User{
		Name:         name,
		balancePaise: initialDepositPaise,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// RestoreUser rebuilds a user entity from persisted state. Intended for
// repositories only; no validation is applied.
func RestoreUser(id uint64, name string, balancePaise, goldMicrograms int64, createdAt, updatedAt time.Time) *User {
	return &User{
		ID:             id,
		Name:           name,
		balancePaise:   balancePaise,
		goldMicrograms: goldMicrograms,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}

// BalancePaise returns the current cash balance in paise
func (u *User) BalancePaise() int64 {
	return u.balancePaise
}

// GoldMicrograms returns the gold held in micrograms
func (u *User) GoldMicrograms() int64 {
	return u.goldMicrograms
}

// BalanceINR returns the cash balance as a rupee amount for API responses
func (u *User) BalanceINR() float64 {
	return INRFromPaise(u.balancePaise)
}

// GoldGrams returns the gold held as a gram amount for API responses
func (u *User) GoldGrams() float64 {
	return GramsFromMicrograms(u.goldMicrograms)
}

// CanDeduct checks if the balance covers a deduction of amountPaise
func (u *User) CanDeduct(amountPaise int64) bool {
	return u.balancePaise >= amountPaise
}

// ApplyPurchase debits the cash balance and credits the gold holding.
// Returns ErrInsufficientBalance if the debit would make the balance negative.
func (u *User) ApplyPurchase(amountPaise, micrograms int64, timeProvider coreport.TimeProvider) error {
	if amountPaise <= 0 {
		return errs.ErrInvalidAmount
	}
	if u.balancePaise < amountPaise {
		return errs.ErrInsufficientBalance
	}

	u.balancePaise -= amountPaise
	u.goldMicrograms += micrograms
	u.UpdatedAt = timeProvider.Now()
	return nil
}
