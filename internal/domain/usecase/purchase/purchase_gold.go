package purchase

import (
	"context"
	"errors"

	"github.com/kuberai/gold-service/internal/domain/entity"
	errs "github.com/kuberai/gold-service/internal/domain/error"
	"github.com/kuberai/gold-service/internal/domain/port/usecase"
)

// PurchaseGold validates the request, computes the gold leg at the configured
// rate and executes the debit/credit/append atomically through the repository.
// On success it returns the updated account and the full ledger, newest first.
func (s *Service) PurchaseGold(ctx context.Context, userID uint64, amountPaise int64) (*usecase.PurchaseResult, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if amountPaise <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	record, err := entity.NewPurchase(userID, amountPaise, s.ratePaisePerGram, s.timeProvider)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.ExecutePurchase(ctx, record)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUserNotFound):
			s.logger.Warn("Purchase attempted for non-existent user", map[string]any{
				"userId": userID,
			})
		case errors.Is(err, errs.ErrInsufficientBalance):
			s.logger.Warn("Purchase rejected for insufficient balance", map[string]any{
				"userId":     userID,
				"amountInr":  entity.FormatINR(amountPaise),
			})
		default:
			s.logger.Error("Purchase execution failed", map[string]any{
				"userId": userID,
				"error":  err.Error(),
			})
		}
		return nil, err
	}

	purchases, err := s.purchaseRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list purchases after execution", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Gold purchased", map[string]any{
		"userId":     userID,
		"reference":  record.Reference,
		"amountInr":  entity.FormatINR(record.AmountPaise),
		"grams":      entity.FormatGrams(record.Micrograms),
		"newBalance": entity.FormatINR(user.BalancePaise()),
	})

	return &usecase.PurchaseResult{
		Purchase:  record,
		User:      user,
		Purchases: purchases,
	}, nil
}
