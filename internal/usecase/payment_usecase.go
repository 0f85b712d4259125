package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"payment_service/internal/domain/entities"
	"payment_service/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrPaymentNotFound        = errors.New("payment not found")
	ErrConcurrentModification = errors.New("payment was modified concurrently")
)

// IPaymentUseCase exposes the payment lifecycle operations:
//   - Create: validate, stamp creation time, persist, then notify downstream
//     systems asynchronously without blocking the caller.
//   - GetByID / ListActive: read-only lookups.
//   - Cancel: same-day cancellation with a time-decayed fee, guarded by the
//     store's optimistic version check.

type IPaymentUseCase interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	Cancel(ctx context.Context, id string) (entities.Payment, error)
	ListActive(ctx context.Context, amountMin, amountMax *decimal.Decimal) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo       interfaces.IPaymentRepository
	dispatcher interfaces.INotificationDispatcher
	clock      interfaces.IClock
	validator  *PaymentValidator
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, dispatcher interfaces.INotificationDispatcher, clock interfaces.IClock) *PaymentUseCase {
	return &PaymentUseCase{
		repo:       repo,
		dispatcher: dispatcher,
		clock:      clock,
		validator:  NewPaymentValidator(),
	}
}

func (u *PaymentUseCase) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	log.Printf("[payment][usecase] create start type=%s amount=%s", p.Type, p.Amount)
	if err := u.validator.ValidateNewPayment(p); err != nil {
		log.Printf("[payment][usecase] create rejected type=%s err=%v", p.Type, err)
		return entities.Payment{}, err
	}

	p.CreatedAt = u.clock.Now().UTC()
	p.IsCanceled = false
	p.CancellationFee = nil
	p.NotificationSuccess = nil

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] create repository failed type=%s err=%v", p.Type, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] create success payment_id=%s type=%s", created.ID, created.Type)

	if u.dispatcher != nil {
		go u.notifyCreated(created)
	}
	return created, nil
}

// notifyCreated runs after the create write committed, outside the caller's
// control flow. The notification outcome is stored best-effort: a failed
// follow-up write is logged and swallowed since it has no bearing on the
// committed payment record.
func (u *PaymentUseCase) notifyCreated(p entities.Payment) {
	ctx := context.Background()
	applicable, success := u.dispatcher.Notify(ctx, p)
	if !applicable {
		return
	}
	if err := u.repo.SetNotificationOutcome(ctx, p.ID, success); err != nil {
		log.Printf("[payment][usecase] notification outcome write failed payment_id=%s success=%t err=%v", p.ID, success, err)
	}
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) Cancel(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	log.Printf("[payment][usecase] cancel start payment_id=%s", id)

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("[payment][usecase] cancel fetch failed payment_id=%s err=%v", id, err)
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	// One clock reading serves both the eligibility check and the fee.
	now := u.clock.Now().UTC()
	if err := u.validator.ValidateCancellable(p, now); err != nil {
		log.Printf("[payment][usecase] cancel rejected payment_id=%s err=%v", id, err)
		return entities.Payment{}, err
	}

	fee := CancellationFee(p.Type, p.CreatedAt, now)
	p.IsCanceled = true
	p.CancellationFee = &fee

	updated, err := u.repo.Update(ctx, p, p.Version)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			log.Printf("[payment][usecase] cancel conflict payment_id=%s expected_version=%d", id, p.Version)
			return entities.Payment{}, ErrConcurrentModification
		}
		log.Printf("[payment][usecase] cancel update failed payment_id=%s err=%v", id, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] cancel success payment_id=%s fee=%s", updated.ID, fee)
	return updated, nil
}

func (u *PaymentUseCase) ListActive(ctx context.Context, amountMin, amountMax *decimal.Decimal) ([]entities.Payment, error) {
	if err := u.validator.ValidateAmountFilter(amountMin, amountMax); err != nil {
		return nil, err
	}
	return u.repo.ListActive(ctx, amountMin, amountMax)
}
