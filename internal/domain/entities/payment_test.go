package entities

import (
	"strings"
	"testing"
)

func TestParsePaymentType(t *testing.T) {
	for _, valid := range []string{"TYPE1", "TYPE2", "TYPE3"} {
		got, err := ParsePaymentType(valid)
		if err != nil {
			t.Fatalf("ParsePaymentType(%q) error: %v", valid, err)
		}
		if string(got) != valid {
			t.Fatalf("ParsePaymentType(%q) = %q", valid, got)
		}
	}

	for _, invalid := range []string{"", "type1", "TYPE4", "TYPE 1"} {
		if _, err := ParsePaymentType(invalid); err == nil {
			t.Fatalf("ParsePaymentType(%q) accepted an invalid value", invalid)
		} else if !strings.Contains(err.Error(), "TYPE1, TYPE2, TYPE3") {
			t.Fatalf("error %q does not list the allowed values", err)
		}
	}
}

func TestParseCurrencyType(t *testing.T) {
	for _, valid := range []string{"EUR", "USD"} {
		got, err := ParseCurrencyType(valid)
		if err != nil {
			t.Fatalf("ParseCurrencyType(%q) error: %v", valid, err)
		}
		if string(got) != valid {
			t.Fatalf("ParseCurrencyType(%q) = %q", valid, got)
		}
	}

	for _, invalid := range []string{"", "eur", "GBP"} {
		if _, err := ParseCurrencyType(invalid); err == nil {
			t.Fatalf("ParseCurrencyType(%q) accepted an invalid value", invalid)
		}
	}
}
