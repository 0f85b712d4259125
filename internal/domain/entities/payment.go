package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType selects the business rules applied to a payment: which currency
// is accepted, whether details / creditor bank BIC are required or forbidden,
// and the cancellation fee coefficient.

type PaymentType string

const (
	PaymentTypeTYPE1 PaymentType = "TYPE1"
	PaymentTypeTYPE2 PaymentType = "TYPE2"
	PaymentTypeTYPE3 PaymentType = "TYPE3"
)

// ParsePaymentType validates a wire value against the closed enumeration.
func ParsePaymentType(s string) (PaymentType, error) {
	switch PaymentType(s) {
	case PaymentTypeTYPE1, PaymentTypeTYPE2, PaymentTypeTYPE3:
		return PaymentType(s), nil
	}
	return "", fmt.Errorf("invalid payment type %q, allowed values are: TYPE1, TYPE2, TYPE3", s)
}

// CurrencyType is the closed set of currencies accepted by the service.

type CurrencyType string

const (
	CurrencyEUR CurrencyType = "EUR"
	CurrencyUSD CurrencyType = "USD"
)

// ParseCurrencyType validates a wire value against the closed enumeration.
func ParseCurrencyType(s string) (CurrencyType, error) {
	switch CurrencyType(s) {
	case CurrencyEUR, CurrencyUSD:
		return CurrencyType(s), nil
	}
	return "", fmt.Errorf("invalid currency %q, allowed values are: EUR, USD", s)
}

// Payment is the money-movement order persisted by the payment-service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - version: monotonic stamp bumped on every write, used for optimistic
//     concurrency on cancellation.
//
// A payment is either active (IsCanceled false, no fee) or canceled
// (IsCanceled true, CancellationFee set); fields stamped at creation
// (ID, CreatedAt, Type, IBANs) never change afterwards.
//
// Details and CreditorBankBic are pointers because their presence, not just
// their value, is constrained per payment type.

type Payment struct {
	ID              string          `json:"id"`
	CreatedAt       time.Time       `json:"created_at"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        CurrencyType    `json:"currency"`
	DebtorIban      string          `json:"debtor_iban"`
	CreditorIban    string          `json:"creditor_iban"`
	Type            PaymentType     `json:"type"`
	Details         *string         `json:"details,omitempty"`
	CreditorBankBic *string         `json:"creditor_bank_bic,omitempty"`

	IsCanceled      bool             `json:"is_canceled"`
	CancellationFee *decimal.Decimal `json:"cancellation_fee,omitempty"`

	// NotificationSuccess is written asynchronously after creation by the
	// notification follow-up; nil until the outcome is known. It carries no
	// weight in the active/canceled state machine.
	NotificationSuccess *bool `json:"notification_success,omitempty"`

	Version int64 `json:"version"`
}
