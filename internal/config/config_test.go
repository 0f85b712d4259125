package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 8080 {
		t.Fatalf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.PaymentsTable != "payments" {
		t.Fatalf("PaymentsTable = %q", cfg.PaymentsTable)
	}
	if cfg.NotificationTimeout != 5*time.Second {
		t.Fatalf("NotificationTimeout = %s", cfg.NotificationTimeout)
	}
	if cfg.CountryLoggingEnabled {
		t.Fatal("country logging must be off by default")
	}
	if cfg.CountryLookupBaseURL != "https://ipapi.co" {
		t.Fatalf("CountryLookupBaseURL = %q", cfg.CountryLookupBaseURL)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PAYMENTS_TABLE", "payments-test")
	t.Setenv("NOTIFICATION_TYPE1_URL", "http://localhost:9999/type1")
	t.Setenv("NOTIFICATION_TIMEOUT", "2s")
	t.Setenv("COUNTRY_LOGGING_ENABLED", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 9090 {
		t.Fatalf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.PaymentsTable != "payments-test" {
		t.Fatalf("PaymentsTable = %q", cfg.PaymentsTable)
	}
	if cfg.NotificationType1URL != "http://localhost:9999/type1" {
		t.Fatalf("NotificationType1URL = %q", cfg.NotificationType1URL)
	}
	if cfg.NotificationTimeout != 2*time.Second {
		t.Fatalf("NotificationTimeout = %s", cfg.NotificationTimeout)
	}
	if !cfg.CountryLoggingEnabled {
		t.Fatal("CountryLoggingEnabled not parsed")
	}
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed PORT")
	}
}
