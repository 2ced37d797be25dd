package entity

import (
	"time"

	"github.com/google/uuid"

	errs "github.com/kuberai/gold-service/internal/domain/error"
	coreport "github.com/kuberai/gold-service/internal/domain/port/core"
)

// Purchase is one append-only ledger row: the cash leg, the gold leg and the
// rate the conversion was made at. Rows are never mutated after creation.
type Purchase struct {
	ID               uint64    // Store-generated identifier, also the ledger order
	Reference        string    // External reference, generated at creation
	UserID           uint64    // Owning account
	AmountPaise      int64     // Cash leg in paise
	Micrograms       int64     // Gold leg in micrograms
	RatePaisePerGram int64     // Conversion rate snapshot
	Timestamp        time.Time // Capture time, UTC, immutable
}

// NewPurchase builds a purchase for the given amount at the given rate,
// computing the gold leg at the fixed precision.
func NewPurchase(userID uint64, amountPaise, ratePaisePerGram int64, timeProvider coreport.TimeProvider) (*Purchase, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if amountPaise <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	micrograms, err := MicrogramsAtRate(amountPaise, ratePaisePerGram)
	if err != nil {
		return nil, err
	}

	return &Purchase{
		Reference:        uuid.NewString(),
		UserID:           userID,
		AmountPaise:      amountPaise,
		Micrograms:       micrograms,
		RatePaisePerGram: ratePaisePerGram,
		Timestamp:        timeProvider.Now().UTC(),
	}, nil
}

// AmountINR returns the cash leg as a rupee amount for API responses
func (p *Purchase) AmountINR() float64 {
	return INRFromPaise(p.AmountPaise)
}

// Grams returns the gold leg as a gram amount for API responses
func (p *Purchase) Grams() float64 {
	return GramsFromMicrograms(p.Micrograms)
}
