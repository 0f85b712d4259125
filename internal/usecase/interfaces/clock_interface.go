package interfaces

import "time"

// IClock supplies the current time. It is injected into the payment use case
// so the same-day cancellation window and the fee computation are
// deterministic in tests.

type IClock interface {
	Now() time.Time
}

// SystemClock is the production clock. All timestamps in the service are UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
