package usecase

import (
	"strings"
	"time"

	"payment_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// BusinessValidationError reports why a payment or query violates a business
// rule. Validation is fail-fast, so Reasons carries the first violation found.

type BusinessValidationError struct {
	Reasons []string
}

func (e *BusinessValidationError) Error() string {
	return strings.Join(e.Reasons, "; ")
}

func newBusinessValidationError(reason string) *BusinessValidationError {
	return &BusinessValidationError{Reasons: []string{reason}}
}

// PaymentValidator holds the pure admission rules for payments. Rules are
// evaluated in a fixed order and the first violated rule is the one reported;
// that order is part of the observable contract because callers surface the
// first message only.

type PaymentValidator struct{}

func NewPaymentValidator() *PaymentValidator {
	return &PaymentValidator{}
}

// ValidateNewPayment admits or rejects a payment about to be created.
//
// The amount scale rule runs first, then the per-type rules:
//   - TYPE1: EUR only, details required, creditor bank BIC forbidden
//   - TYPE2: USD only, creditor bank BIC forbidden
//   - TYPE3: creditor bank BIC required, details forbidden
func (v *PaymentValidator) ValidateNewPayment(p entities.Payment) error {
	if p.Amount.Exponent() != -2 {
		return newBusinessValidationError("Monetary amount must have exactly 2 decimal places")
	}

	switch p.Type {
	case entities.PaymentTypeTYPE1:
		if p.Currency != entities.CurrencyEUR {
			return newBusinessValidationError("Payment of TYPE1 must be EUR")
		}
		if p.Details == nil || *p.Details == "" {
			return newBusinessValidationError("Details are required for TYPE1 payment")
		}
		if p.CreditorBankBic != nil {
			return newBusinessValidationError("Creditor Bank BIC is not allowed for TYPE1 payments")
		}
	case entities.PaymentTypeTYPE2:
		if p.Currency != entities.CurrencyUSD {
			return newBusinessValidationError("Payment of TYPE2 must be USD")
		}
		if p.CreditorBankBic != nil {
			return newBusinessValidationError("Creditor Bank BIC is not allowed for TYPE2 payments")
		}
	case entities.PaymentTypeTYPE3:
		if p.CreditorBankBic == nil || strings.TrimSpace(*p.CreditorBankBic) == "" {
			return newBusinessValidationError("Creditor bank BIC is required for TYPE3 payment")
		}
		if p.Details != nil {
			return newBusinessValidationError("Details are not allowed for TYPE3 payments")
		}
	}
	return nil
}

// ValidateCancellable admits or rejects a cancellation attempt. Both checks
// use the single now reading the caller obtained from the clock, so
// eligibility and fee computation agree within one attempt. Calendar dates
// are compared in UTC.
func (v *PaymentValidator) ValidateCancellable(p entities.Payment, now time.Time) error {
	if p.IsCanceled {
		return newBusinessValidationError("Payment is already canceled")
	}
	ny, nm, nd := now.UTC().Date()
	cy, cm, cd := p.CreatedAt.UTC().Date()
	if ny != cy || nm != cm || nd != cd {
		return newBusinessValidationError("Payment can only be cancel on the same day")
	}
	return nil
}

// ValidateAmountFilter checks the optional bounds of an active-payments query
// before the store is touched.
func (v *PaymentValidator) ValidateAmountFilter(amountMin, amountMax *decimal.Decimal) error {
	if (amountMin != nil && amountMin.IsNegative()) || (amountMax != nil && amountMax.IsNegative()) {
		return newBusinessValidationError("Monetary value can not be negative")
	}
	if amountMin != nil && amountMax != nil && amountMax.LessThan(*amountMin) {
		return newBusinessValidationError("AmountMax should be larger then or equal to AmountMin")
	}
	return nil
}
