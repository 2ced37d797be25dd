package usecase

import (
	"context"

	"github.com/kuberai/gold-service/internal/domain/entity"
)

// PurchaseResult carries the executed purchase, the updated account snapshot
// and the full ledger for the user, newest first.
type PurchaseResult struct {
	Purchase  *entity.Purchase
	User      *entity.User
	Purchases []*entity.Purchase
}

// PurchaseUseCase defines the purchase engine operations
type PurchaseUseCase interface {
	// PurchaseGold converts amountPaise of the user's cash balance into gold
	// at the configured rate. This backs the POST /purchase-gold endpoint.
	//
	// Possible errors:
	// - ErrInvalidAmount: If amountPaise is not positive
	// - ErrUserNotFound: If the user doesn't exist
	// - InsufficientBalanceError: If the balance cannot cover the amount
	PurchaseGold(ctx context.Context, userID uint64, amountPaise int64) (*PurchaseResult, error)
}
