package assistant

import (
	"context"

	errs "github.com/kuberai/gold-service/internal/domain/error"
	coreport "github.com/kuberai/gold-service/internal/domain/port/core"
	"github.com/kuberai/gold-service/internal/domain/port/persistence"
	"github.com/kuberai/gold-service/internal/domain/port/usecase"
)

// Canned response texts. The reply does not vary with the query content once
// classified.
const (
	cannedFacts = "Gold is traditionally considered a hedge against inflation and currency depreciation. " +
		"It tends to preserve value over long periods, though short-term price movements can be volatile."

	cannedNudge = "If you'd like, I can help you invest in digital gold through the Simplify Money flow. " +
		"A small test purchase (e.g., ₹10) is a great way to see how it works. Would you like to proceed?"

	redirectMessage = "I couldn't detect that your question is about gold investment. " +
		"If you want to learn about gold investments, try asking 'Should I invest in gold?' or 'How to buy digital gold?'"

	purchasePath = "/purchase-gold"
)

// Service composes assistant replies from the keyword classifier. The only
// state it touches is the user existence check.
type Service struct {
	userRepo persistence.UserRepository
	logger   coreport.Logger
}

// NewService creates a new assistant service instance
func NewService(userRepo persistence.UserRepository, logger coreport.Logger) usecase.AssistantUseCase {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Ask verifies the user exists, classifies the query and returns the canned
// reply for its class
func (s *Service) Ask(ctx context.Context, userID uint64, query string) (*usecase.AssistantReply, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	if !IsGoldQuery(query) {
		s.logger.Debug("Query not gold-related", map[string]any{
			"userId": userID,
		})
		return &usecase.AssistantReply{
			Response:    redirectMessage,
			IsGoldQuery: false,
		}, nil
	}

	s.logger.Debug("Gold query detected", map[string]any{
		"userId": userID,
	})

	return &usecase.AssistantReply{
		Response:    cannedFacts,
		Nudge:       cannedNudge,
		NextStep:    purchasePath,
		IsGoldQuery: true,
	}, nil
}
