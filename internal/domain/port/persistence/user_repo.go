package persistence

import (
	"context"

	"github.com/kuberai/gold-service/internal/domain/entity"
)

// UserRepository defines the methods to interact with user accounts
type UserRepository interface {
	// Create persists a new user and assigns its generated ID
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the database is unreachable
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If no user with the given ID exists
	// - ErrDatabaseConnection: If the database is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// ExecutePurchase atomically debits the user's balance, credits the gold
	// holding and appends the ledger row, all within one database transaction.
	// The balance check and the debit happen as a single conditional update so
	// concurrent purchases cannot overdraw the account.
	// Returns the updated user on success.
	//
	// Possible errors:
	// - ErrUserNotFound: If no user with the given ID exists
	// - InsufficientBalanceError: If the balance cannot cover the amount
	// - ErrDatabaseConnection: If the database is unreachable
	ExecutePurchase(ctx context.Context, purchase *entity.Purchase) (*entity.User, error)
}
