package interfaces

import (
	"context"
	"errors"

	"payment_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ErrVersionConflict is returned by Update when the expected version no longer
// matches the stored record, i.e. another writer committed between the
// caller's read and its write.
var ErrVersionConflict = errors.New("payment version conflict")

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// Contract:
//   - Create assigns the id and the initial version stamp.
//   - GetByID returns a zero-value Payment when the record is absent.
//   - Update is a conditional write on expectedVersion; the version check is
//     enforced by the store, never by service-layer locking.
//   - ListActive filters server-side on is_canceled=false and the optional
//     inclusive amount bounds.
//   - SetNotificationOutcome is the best-effort follow-up write for the
//     asynchronous notification result.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	Update(ctx context.Context, p entities.Payment, expectedVersion int64) (entities.Payment, error)
	ListActive(ctx context.Context, amountMin, amountMax *decimal.Decimal) ([]entities.Payment, error)
	SetNotificationOutcome(ctx context.Context, id string, success bool) error
}
