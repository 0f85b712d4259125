package interfaces

import (
	"context"

	"payment_service/internal/domain/entities"
)

// INotificationDispatcher abstracts the best-effort outbound call made after a
// payment is created.
//
// Targets are mapped per payment type. A type without a mapped target returns
// applicable=false and must cause no state write and no log entry. The
// dispatcher never returns an error: transport failures are reported as
// success=false so they can be stored, not propagated.

type INotificationDispatcher interface {
	Notify(ctx context.Context, p entities.Payment) (applicable bool, success bool)
}
