package user

import (
	"context"
	"errors"

	errs "github.com/kuberai/gold-service/internal/domain/error"
	coreport "github.com/kuberai/gold-service/internal/domain/port/core"
	"github.com/kuberai/gold-service/internal/domain/port/persistence"
	"github.com/kuberai/gold-service/internal/domain/port/usecase"
)

// UserUseCase implements the user business logic
type UserUseCase struct {
	userRepo     persistence.UserRepository
	purchaseRepo persistence.PurchaseRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserUseCase creates a new user use case instance
func NewUserUseCase(
	userRepo persistence.UserRepository,
	purchaseRepo persistence.PurchaseRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		purchaseRepo: purchaseRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// UserExists checks if a user exists with the given ID
func (u *UserUseCase) UserExists(ctx context.Context, userID uint64) (bool, error) {
	if userID == 0 {
		return false, errs.ErrInvalidUserID
	}

	_, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
