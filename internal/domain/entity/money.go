package entity

import (
	"github.com/shopspring/decimal"

	errs "github.com/kuberai/gold-service/internal/domain/error"
)

// Monetary values cross the API as JSON numbers (rupees) but are stored and
// computed as integer paise to avoid floating point drift.
const PaisePerRupee = 100

// PaiseFromINR converts a rupee amount to integer paise, rounding to the
// nearest paisa. Negative amounts are rejected.
func PaiseFromINR(amountINR float64) (int64, error) {
	if amountINR < 0 {
		return 0, errs.ErrNegativeAmount
	}
	return decimal.NewFromFloat(amountINR).
		Mul(decimal.NewFromInt(PaisePerRupee)).
		Round(0).
		IntPart(), nil
}

// INRFromPaise converts integer paise back to a rupee amount for API responses
func INRFromPaise(paise int64) float64 {
	value, _ := decimal.New(paise, -2).Float64()
	return value
}

// FormatINR renders integer paise as a human-readable rupee string,
// e.g. 4050 -> "40.5", 4000 -> "40"
func FormatINR(paise int64) string {
	return decimal.New(paise, -2).String()
}
