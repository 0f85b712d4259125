package usecase

import (
	"testing"
	"time"

	"payment_service/internal/domain/entities"
)

func TestCancellationFee(t *testing.T) {
	createdAt := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		typ     entities.PaymentType
		elapsed time.Duration
		want    string
	}{
		{name: "TYPE1 under one hour is free", typ: entities.PaymentTypeTYPE1, elapsed: 59 * time.Minute, want: "0"},
		{name: "TYPE1 two whole hours", typ: entities.PaymentTypeTYPE1, elapsed: 2*time.Hour + 59*time.Minute, want: "0.10"},
		{name: "TYPE2 three whole hours", typ: entities.PaymentTypeTYPE2, elapsed: 3*time.Hour + 59*time.Minute, want: "0.30"},
		{name: "TYPE3 four whole hours", typ: entities.PaymentTypeTYPE3, elapsed: 4*time.Hour + 59*time.Minute, want: "0.60"},
		{name: "partial hour truncates down", typ: entities.PaymentTypeTYPE2, elapsed: time.Hour + 59*time.Minute + 59*time.Second, want: "0.10"},
		{name: "exact hour boundary counts", typ: entities.PaymentTypeTYPE1, elapsed: time.Hour, want: "0.05"},
		{name: "zero elapsed", typ: entities.PaymentTypeTYPE3, elapsed: 0, want: "0"},
		{name: "many hours", typ: entities.PaymentTypeTYPE3, elapsed: 20 * time.Hour, want: "3.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CancellationFee(tc.typ, createdAt, createdAt.Add(tc.elapsed))
			if !got.Equal(dec(tc.want)) {
				t.Fatalf("CancellationFee(%s, +%s) = %s, want %s", tc.typ, tc.elapsed, got, tc.want)
			}
		})
	}
}

func TestCancellationFee_Deterministic(t *testing.T) {
	createdAt := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	now := createdAt.Add(5*time.Hour + 30*time.Minute)

	first := CancellationFee(entities.PaymentTypeTYPE2, createdAt, now)
	second := CancellationFee(entities.PaymentTypeTYPE2, createdAt, now)
	if !first.Equal(second) {
		t.Fatalf("fee is not deterministic: %s vs %s", first, second)
	}
}

func TestFeeCoefficient_CoversAllTypes(t *testing.T) {
	for _, typ := range []entities.PaymentType{
		entities.PaymentTypeTYPE1,
		entities.PaymentTypeTYPE2,
		entities.PaymentTypeTYPE3,
	} {
		if feeCoefficient(typ).IsZero() {
			t.Fatalf("no fee coefficient for %s", typ)
		}
	}
}
