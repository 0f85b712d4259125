package usecase

import (
	"time"

	"payment_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Cancellation fee coefficients, applied per elapsed whole hour since
// creation. Every PaymentType must have an entry here; feeCoefficient keeps
// the mapping in one place so adding a type forces this table to be updated.
func feeCoefficient(t entities.PaymentType) decimal.Decimal {
	switch t {
	case entities.PaymentTypeTYPE1:
		return decimal.RequireFromString("0.05")
	case entities.PaymentTypeTYPE2:
		return decimal.RequireFromString("0.10")
	case entities.PaymentTypeTYPE3:
		return decimal.RequireFromString("0.15")
	}
	return decimal.Zero
}

// CancellationFee computes the fee charged when a payment of the given type,
// created at createdAt, is canceled at now: elapsed whole hours (truncated,
// not rounded) multiplied by the per-type coefficient, rounded half-up to two
// decimal places. Pure function; identical inputs always yield an identical
// fee.
func CancellationFee(t entities.PaymentType, createdAt, now time.Time) decimal.Decimal {
	hours := int64(now.Sub(createdAt) / time.Hour)
	return decimal.NewFromInt(hours).Mul(feeCoefficient(t)).Round(2)
}
