package notifications

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"payment_service/internal/domain/entities"
)

func TestWebhookNotificationDispatcher_Notify(t *testing.T) {
	t.Run("successful call", func(t *testing.T) {
		var gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		d := NewWebhookNotificationDispatcher(srv.URL+"/notify/type1", "", time.Second)

		applicable, success := d.Notify(context.Background(), entities.Payment{ID: "pay-1", Type: entities.PaymentTypeTYPE1})
		if !applicable || !success {
			t.Fatalf("applicable=%t success=%t, want true/true", applicable, success)
		}
		if gotPath != "/notify/type1" {
			t.Fatalf("called path = %q", gotPath)
		}
	})

	t.Run("server error means failure not error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		d := NewWebhookNotificationDispatcher("", srv.URL, time.Second)

		applicable, success := d.Notify(context.Background(), entities.Payment{ID: "pay-2", Type: entities.PaymentTypeTYPE2})
		if !applicable || success {
			t.Fatalf("applicable=%t success=%t, want true/false", applicable, success)
		}
	})

	t.Run("unreachable target means failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		d := NewWebhookNotificationDispatcher(srv.URL, "", time.Second)

		applicable, success := d.Notify(context.Background(), entities.Payment{ID: "pay-3", Type: entities.PaymentTypeTYPE1})
		if !applicable || success {
			t.Fatalf("applicable=%t success=%t, want true/false", applicable, success)
		}
	})

	t.Run("unmapped type is not applicable", func(t *testing.T) {
		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer srv.Close()

		d := NewWebhookNotificationDispatcher(srv.URL, srv.URL, time.Second)

		applicable, success := d.Notify(context.Background(), entities.Payment{ID: "pay-4", Type: entities.PaymentTypeTYPE3})
		if applicable || success {
			t.Fatalf("applicable=%t success=%t, want false/false", applicable, success)
		}
		if called {
			t.Fatal("no call should be made for an unmapped type")
		}
	})

	t.Run("empty url leaves type unmapped", func(t *testing.T) {
		d := NewWebhookNotificationDispatcher("", "", time.Second)

		applicable, _ := d.Notify(context.Background(), entities.Payment{ID: "pay-5", Type: entities.PaymentTypeTYPE1})
		if applicable {
			t.Fatal("type without a configured url must not be applicable")
		}
	})
}
