package user

import (
	"context"
	"errors"

	errs "github.com/kuberai/gold-service/internal/domain/error"
	"github.com/kuberai/gold-service/internal/domain/port/usecase"
)

// GetProfile retrieves a user's account together with the full purchase
// ledger, newest first
func (u *UserUseCase) GetProfile(ctx context.Context, userID uint64) (*usecase.Profile, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, errs.ErrUserNotFound) {
			u.logger.Error("Failed to get user", map[string]any{
				"userId": userID,
				"error":  err.Error(),
			})
		}
		return nil, err
	}

	purchases, err := u.purchaseRepo.ListByUser(ctx, userID)
	if err != nil {
		u.logger.Error("Failed to list purchases", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, err
	}

	return &usecase.Profile{
		User:      user,
		Purchases: purchases,
	}, nil
}
