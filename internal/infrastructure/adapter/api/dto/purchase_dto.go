package dto

import (
	"time"

	"github.com/kuberai/gold-service/internal/domain/entity"
)

// PurchaseRequest represents the API request for purchasing gold
type PurchaseRequest struct {
	UserID    uint64  `json:"user_id" binding:"required"`
	AmountINR float64 `json:"amount_inr"`
}

// PurchaseLeg is the cash/gold pair of a single executed purchase
type PurchaseLeg struct {
	Reference string  `json:"reference"`
	AmountINR float64 `json:"amount_inr"`
	Grams     float64 `json:"grams"`
}

// PurchaseResponse represents one ledger row in API responses
type PurchaseResponse struct {
	PurchaseID uint64    `json:"purchase_id"`
	Reference  string    `json:"reference"`
	UserID     uint64    `json:"user_id"`
	AmountINR  float64   `json:"amount_inr"`
	Grams      float64   `json:"grams"`
	Timestamp  time.Time `json:"timestamp"`
}

// PurchaseResultResponse represents the API response for a successful purchase
type PurchaseResultResponse struct {
	Status         string             `json:"status"`
	Message        string             `json:"message"`
	Purchase       PurchaseLeg        `json:"purchase"`
	UpdatedProfile UserResponse       `json:"updated_profile"`
	Purchases      []PurchaseResponse `json:"purchases"`
}

// NewPurchaseResponse maps a purchase entity to its API representation
func NewPurchaseResponse(purchase *entity.Purchase) PurchaseResponse {
	return PurchaseResponse{
		PurchaseID: purchase.ID,
		Reference:  purchase.Reference,
		UserID:     purchase.UserID,
		AmountINR:  purchase.AmountINR(),
		Grams:      purchase.Grams(),
		Timestamp:  purchase.Timestamp,
	}
}

// NewPurchaseResponses maps a ledger slice preserving its order
func NewPurchaseResponses(purchases []*entity.Purchase) []PurchaseResponse {
	responses := make([]PurchaseResponse, 0, len(purchases))
	for _, purchase := range purchases {
		responses = append(responses, NewPurchaseResponse(purchase))
	}
	return responses
}
