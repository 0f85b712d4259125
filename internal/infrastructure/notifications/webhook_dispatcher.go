package notifications

import (
	"context"
	"io"
	"log"
	"net/http"
	"time"

	"payment_service/internal/domain/entities"
	"payment_service/internal/usecase/interfaces"
)

const defaultTimeout = 5 * time.Second

// WebhookNotificationDispatcher performs the best-effort GET call that informs
// downstream systems about a newly created payment.
//
// Targets are mapped per payment type; a payment whose type has no mapped
// target is not applicable and produces neither a call nor a log line. Any
// transport failure is reported as success=false, never as an error: the
// notification outcome must not affect the committed payment.

type WebhookNotificationDispatcher struct {
	client *http.Client
	urls   map[entities.PaymentType]string
}

var _ interfaces.INotificationDispatcher = (*WebhookNotificationDispatcher)(nil)

func NewWebhookNotificationDispatcher(type1URL, type2URL string, timeout time.Duration) *WebhookNotificationDispatcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	urls := make(map[entities.PaymentType]string)
	if type1URL != "" {
		urls[entities.PaymentTypeTYPE1] = type1URL
	}
	if type2URL != "" {
		urls[entities.PaymentTypeTYPE2] = type2URL
	}
	return &WebhookNotificationDispatcher{
		client: &http.Client{Timeout: timeout},
		urls:   urls,
	}
}

func (d *WebhookNotificationDispatcher) Notify(ctx context.Context, p entities.Payment) (bool, bool) {
	url, ok := d.urls[p.Type]
	if !ok {
		return false, false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Printf("[notification][dispatcher] request build failed payment_id=%s err=%v", p.ID, err)
		return true, false
	}
	resp, err := d.client.Do(req)
	if err != nil {
		log.Printf("[notification][dispatcher] call failed payment_id=%s url=%s err=%v", p.ID, url, err)
		return true, false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	success := resp.StatusCode >= 200 && resp.StatusCode < 300
	log.Printf("[notification][dispatcher] call finished payment_id=%s url=%s status=%d", p.ID, url, resp.StatusCode)
	return true, success
}
