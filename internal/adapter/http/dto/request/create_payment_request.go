package request

import (
	"payment_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest is the payload for POST /v1/payments.
//
// Amount is a pointer so that a missing field is distinguishable from a
// legitimate 0.00 payment. Details and creditor_bank_bic are pointers because
// the business rules constrain their presence per payment type.

type CreatePaymentRequest struct {
	Amount          *decimal.Decimal `json:"amount" binding:"required"`
	Currency        string           `json:"currency" binding:"required"`
	DebtorIban      string           `json:"debtor_iban" binding:"required"`
	CreditorIban    string           `json:"creditor_iban" binding:"required"`
	Type            string           `json:"type" binding:"required"`
	Details         *string          `json:"details"`
	CreditorBankBic *string          `json:"creditor_bank_bic"`
}

// ToEntity translates the wire payload into the domain entity, rejecting
// values outside the closed currency/type enumerations.
func (r CreatePaymentRequest) ToEntity() (entities.Payment, error) {
	currency, err := entities.ParseCurrencyType(r.Currency)
	if err != nil {
		return entities.Payment{}, err
	}
	paymentType, err := entities.ParsePaymentType(r.Type)
	if err != nil {
		return entities.Payment{}, err
	}

	return entities.Payment{
		Amount:          *r.Amount,
		Currency:        currency,
		DebtorIban:      r.DebtorIban,
		CreditorIban:    r.CreditorIban,
		Type:            paymentType,
		Details:         r.Details,
		CreditorBankBic: r.CreditorBankBic,
	}, nil
}
