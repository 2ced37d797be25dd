package usecase

import (
	"context"

	"github.com/kuberai/gold-service/internal/domain/entity"
)

// Profile is an account snapshot together with its full purchase ledger,
// newest first.
type Profile struct {
	User      *entity.User
	Purchases []*entity.Purchase
}

// UserUseCase defines methods for user-related business operations
type UserUseCase interface {
	// CreateUser creates a new user with the given name and initial deposit in paise
	CreateUser(ctx context.Context, name string, initialDepositPaise int64) (*entity.User, error)

	// GetProfile retrieves a user's account and purchase ledger.
	// This backs the GET /get-user/{userId} endpoint.
	GetProfile(ctx context.Context, userID uint64) (*Profile, error)

	// UserExists checks if a user exists with the given ID
	UserExists(ctx context.Context, userID uint64) (bool, error)
}
