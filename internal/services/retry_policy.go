package services

import (
	"context"
	"errors"
	"net"
	"route-distance-enricher/internal/domain"
	"time"
)

const (
	DefaultMaxAttempts = 3
	DefaultRetryDelay  = 2 * time.Second
)

// Bounded attempts with a fixed delay between them.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: DefaultMaxAttempts, Delay: DefaultRetryDelay}
}

// IsRecoverable splits lookup errors into the two kinds that are retried
// (a malformed response shape, a connection-level failure) and everything
// else, which aborts the run.
//
// The taxonomy sentinels are checked first: an HTTP client timeout wraps
// context.DeadlineExceeded but is still a transport failure. Whether the
// caller itself gave up is decided from its context, not from err.
func IsRecoverable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, domain.ErrMalformedResponse) || errors.Is(err, domain.ErrTransport) {
		return true
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

// sleepContext waits for d unless ctx ends first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
