package response

import (
	"time"

	"payment_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PaymentResponse is the full payment representation returned by GET
// /v1/payments/:id.

type PaymentResponse struct {
	ID                  string           `json:"id"`
	CreatedAt           time.Time        `json:"created_at"`
	Amount              decimal.Decimal  `json:"amount"`
	Currency            string           `json:"currency"`
	DebtorIban          string           `json:"debtor_iban"`
	CreditorIban        string           `json:"creditor_iban"`
	Type                string           `json:"type"`
	Details             *string          `json:"details,omitempty"`
	CreditorBankBic     *string          `json:"creditor_bank_bic,omitempty"`
	IsCanceled          bool             `json:"is_canceled"`
	CancellationFee     *decimal.Decimal `json:"cancellation_fee,omitempty"`
	NotificationSuccess *bool            `json:"notification_success,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                  p.ID,
		CreatedAt:           p.CreatedAt,
		Amount:              p.Amount,
		Currency:            string(p.Currency),
		DebtorIban:          p.DebtorIban,
		CreditorIban:        p.CreditorIban,
		Type:                string(p.Type),
		Details:             p.Details,
		CreditorBankBic:     p.CreditorBankBic,
		IsCanceled:          p.IsCanceled,
		CancellationFee:     p.CancellationFee,
		NotificationSuccess: p.NotificationSuccess,
	}
}

// PaymentIDResponse is the id-only representation used by the create response
// and the active-payments listing.

type PaymentIDResponse struct {
	ID string `json:"id"`
}

func FromPaymentIDOnly(p entities.Payment) PaymentIDResponse {
	return PaymentIDResponse{ID: p.ID}
}

func FromPaymentsIDOnly(ps []entities.Payment) []PaymentIDResponse {
	out := make([]PaymentIDResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPaymentIDOnly(p))
	}
	return out
}

// CancelPaymentResponse is returned by POST /v1/payments/:id/cancel.

type CancelPaymentResponse struct {
	ID              string          `json:"id"`
	CancellationFee decimal.Decimal `json:"cancellation_fee"`
}

func FromCanceledPayment(p entities.Payment) CancelPaymentResponse {
	resp := CancelPaymentResponse{ID: p.ID}
	if p.CancellationFee != nil {
		resp.CancellationFee = *p.CancellationFee
	}
	return resp
}
