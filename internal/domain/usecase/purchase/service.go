package purchase

import (
	coreport "github.com/kuberai/gold-service/internal/domain/port/core"
	"github.com/kuberai/gold-service/internal/domain/port/persistence"
	"github.com/kuberai/gold-service/internal/domain/port/usecase"
)

// Service is the purchase engine: it converts cash balance into gold at a
// fixed rate and appends the result to the ledger
type Service struct {
	userRepo         persistence.UserRepository
	purchaseRepo     persistence.PurchaseRepository
	ratePaisePerGram int64
	timeProvider     coreport.TimeProvider
	logger           coreport.Logger
}

// NewService creates a new purchase service with the given conversion rate
// in paise per gram
func NewService(
	userRepo persistence.UserRepository,
	purchaseRepo persistence.PurchaseRepository,
	ratePaisePerGram int64,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.PurchaseUseCase {
	return &Service{
		userRepo:         userRepo,
		purchaseRepo:     purchaseRepo,
		ratePaisePerGram: ratePaisePerGram,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}
