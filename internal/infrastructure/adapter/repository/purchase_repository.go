package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/kuberai/gold-service/internal/domain/entity"
	errs "github.com/kuberai/gold-service/internal/domain/error"
	coreport "github.com/kuberai/gold-service/internal/domain/port/core"
	"github.com/kuberai/gold-service/internal/infrastructure/adapter/model"
)

// PurchaseRepository implements persistence.PurchaseRepository using GORM
type PurchaseRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewPurchaseRepository creates a new PurchaseRepository instance
func NewPurchaseRepository(db *gorm.DB, logger coreport.Logger) *PurchaseRepository {
	return &PurchaseRepository{
		db:     db,
		logger: logger,
	}
}

// ListByUser returns all purchases for a user ordered newest first
func (r *PurchaseRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Purchase, error) {
	var purchaseModels []model.Purchase
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&purchaseModels)
	if result.Error != nil {
		r.logger.Error("Database error when listing purchases", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	purchases := make([]*entity.Purchase, 0, len(purchaseModels))
	for _, purchaseModel := range purchaseModels {
		purchases = append(purchases, &entity.Purchase{
			ID:               purchaseModel.ID,
			Reference:        purchaseModel.Reference,
			UserID:           purchaseModel.UserID,
			AmountPaise:      purchaseModel.AmountPaise,
			Micrograms:       purchaseModel.Micrograms,
			RatePaisePerGram: purchaseModel.RatePaisePerGram,
			Timestamp:        purchaseModel.Timestamp,
		})
	}

	return purchases, nil
}
