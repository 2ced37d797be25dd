package persistence

import (
	"context"

	"github.com/kuberai/gold-service/internal/domain/entity"
)

// PurchaseRepository defines read access to the append-only purchase ledger.
// Ledger rows are written by UserRepository.ExecutePurchase so the debit and
// the ledger append share one transaction.
type PurchaseRepository interface {
	// ListByUser returns all purchases for a user, newest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the database is unreachable
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Purchase, error)
}
