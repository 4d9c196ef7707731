package pipeline

import (
	"context"
	"time"
)

// RetryPolicy is the backoff schedule applied to transient recognition
// failures. Delay doubles per attempt: base, 2*base, 4*base, ...
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// Delay returns the wait before retrying after the given zero-based attempt.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	return p.BaseDelay * (1 << uint(attempt))
}

// sleep waits for d or until ctx is done, whichever comes first. The wait is
// local to the retrying worker and never blocks other workers.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
