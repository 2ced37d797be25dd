package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kuberai/gold-service/internal/domain/entity"
	errs "github.com/kuberai/gold-service/internal/domain/error"
	coreport "github.com/kuberai/gold-service/internal/domain/port/core"
	"github.com/kuberai/gold-service/internal/infrastructure/adapter/model"
)

// UserRepository implements persistence.UserRepository using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to a domain entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	return entity.RestoreUser(
		userModel.ID,
		userModel.Name,
		userModel.BalancePaise,
		userModel.GoldMicrograms,
		userModel.CreatedAt,
		userModel.UpdatedAt,
	)
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", map[string]any{
			"user_id": userID,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create persists a new user and assigns its generated ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		Name:           user.Name,
		BalancePaise:   user.BalancePaise(),
		GoldMicrograms: user.GoldMicrograms(),
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}

	if result := r.db.WithContext(ctx).Create(&userModel); result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, 0)
	}

	user.ID = userModel.ID

	r.logger.Info("User created", map[string]any{
		"user_id": user.ID,
		"balance": entity.FormatINR(user.BalancePaise()),
	})
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	if result := r.db.WithContext(ctx).First(&userModel, id); result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}

	return r.modelToEntity(&userModel), nil
}

// ExecutePurchase atomically debits the balance, credits the gold holding and
// appends the ledger row. The debit is a single conditional update guarded by
// the current balance, so two concurrent purchases cannot overdraw the account
// even without a row lock.
func (r *UserRepository) ExecutePurchase(ctx context.Context, purchase *entity.Purchase) (*entity.User, error) {
	var user *entity.User

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var userModel model.User
		if result := tx.First(&userModel, purchase.UserID); result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return errs.ErrUserNotFound
			}
			return result.Error
		}

		result := tx.Model(&model.User{}).
			Where("id = ? AND balance_paise >= ?", purchase.UserID, purchase.AmountPaise).
			Updates(map[string]any{
				"balance_paise":   gorm.Expr("balance_paise - ?", purchase.AmountPaise),
				"gold_micrograms": gorm.Expr("gold_micrograms + ?", purchase.Micrograms),
				"updated_at":      r.timeProvider.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// The guarded update matched nothing: the balance read above
			// cannot cover the amount.
			return errs.NewInsufficientBalanceError(
				purchase.UserID,
				entity.FormatINR(purchase.AmountPaise),
				entity.FormatINR(userModel.BalancePaise),
			)
		}

		purchaseModel := model.Purchase{
			Reference:        purchase.Reference,
			UserID:           purchase.UserID,
			AmountPaise:      purchase.AmountPaise,
			Micrograms:       purchase.Micrograms,
			RatePaisePerGram: purchase.RatePaisePerGram,
			Timestamp:        purchase.Timestamp,
		}
		if result := tx.Create(&purchaseModel); result.Error != nil {
			return result.Error
		}
		purchase.ID = purchaseModel.ID

		var updated model.User
		if result := tx.First(&updated, purchase.UserID); result.Error != nil {
			return result.Error
		}
		user = r.modelToEntity(&updated)
		return nil
	})

	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) || errors.Is(err, errs.ErrInsufficientBalance) {
			return nil, err
		}
		if r.errorClassifier.IsLockError(err) {
			r.logger.Warn("Purchase conflicted with a concurrent operation", map[string]any{
				"user_id": purchase.UserID,
				"error":   err.Error(),
			})
		}
		return nil, r.handleDatabaseError("executing purchase", err, purchase.UserID)
	}

	r.logger.Info("Purchase executed", map[string]any{
		"user_id":     purchase.UserID,
		"reference":   purchase.Reference,
		"amount_inr":  entity.FormatINR(purchase.AmountPaise),
		"grams":       entity.FormatGrams(purchase.Micrograms),
		"new_balance": entity.FormatINR(user.BalancePaise()),
	})

	return user, nil
}
