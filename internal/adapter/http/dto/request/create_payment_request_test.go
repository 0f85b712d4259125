package request

import (
	"testing"

	"payment_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestCreatePaymentRequest_ToEntity(t *testing.T) {
	amount := decimal.RequireFromString("100.00")
	details := "invoice 42"

	t.Run("valid request", func(t *testing.T) {
		r := CreatePaymentRequest{
			Amount:       &amount,
			Currency:     "EUR",
			DebtorIban:   "LT121000011101001000",
			CreditorIban: "LT121000011101001001",
			Type:         "TYPE1",
			Details:      &details,
		}

		p, err := r.ToEntity()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Currency != entities.CurrencyEUR || p.Type != entities.PaymentTypeTYPE1 {
			t.Fatalf("unexpected entity: %+v", p)
		}
		if !p.Amount.Equal(amount) {
			t.Fatalf("amount = %s", p.Amount)
		}
		if p.Details == nil || *p.Details != details {
			t.Fatalf("details = %v", p.Details)
		}
	})

	t.Run("unknown currency", func(t *testing.T) {
		r := CreatePaymentRequest{Amount: &amount, Currency: "GBP", Type: "TYPE1"}
		if _, err := r.ToEntity(); err == nil {
			t.Fatal("expected error for unknown currency")
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		r := CreatePaymentRequest{Amount: &amount, Currency: "EUR", Type: "TYPE4"}
		if _, err := r.ToEntity(); err == nil {
			t.Fatal("expected error for unknown payment type")
		}
	})
}
