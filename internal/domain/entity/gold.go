package entity

import (
	"github.com/shopspring/decimal"

	errs "github.com/kuberai/gold-service/internal/domain/error"
)

// Gold weight is stored as integer micrograms. Six fractional digits of a
// gram is the fixed precision of the purchase computation; the same scale is
// used for the account credit and the ledger row.
const (
	GramsPrecision    = 6
	MicrogramsPerGram = 1_000_000
)

// MicrogramsAtRate computes the gold weight purchasable for amountPaise at
// ratePaisePerGram, rounded to GramsPrecision fractional grams.
func MicrogramsAtRate(amountPaise, ratePaisePerGram int64) (int64, error) {
	if ratePaisePerGram <= 0 {
		return 0, errs.ErrInvalidRate
	}
	if amountPaise < 0 {
		return 0, errs.ErrNegativeAmount
	}
	grams := decimal.NewFromInt(amountPaise).
		Div(decimal.NewFromInt(ratePaisePerGram)).
		Round(GramsPrecision)
	return grams.Mul(decimal.NewFromInt(MicrogramsPerGram)).IntPart(), nil
}

// GramsFromMicrograms converts integer micrograms to a gram amount for API responses
func GramsFromMicrograms(micrograms int64) float64 {
	value, _ := decimal.New(micrograms, -GramsPrecision).Float64()
	return value
}

// FormatGrams renders integer micrograms as a human-readable gram string,
// e.g. 10000 -> "0.01"
func FormatGrams(micrograms int64) string {
	return decimal.New(micrograms, -GramsPrecision).String()
}
