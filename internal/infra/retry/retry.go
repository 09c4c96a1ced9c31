// Package retry wraps a single remote operation with bounded retries and
// exponential backoff. Retry policy is dispatched off tagged error
// classifications, never off error message text.
package retry

import (
	"context"
	"log"
	"time"

	"github.com/jmgilman/go/errors"
)

// Config defines retry behavior with exponential backoff.
type Config struct {
	MaxAttempts  int           // attempt budget, including the first try
	InitialDelay time.Duration // delay before the second attempt
	MaxDelay     time.Duration // backoff cap
}

// DefaultConfig returns the retry budget used for remote catalog calls.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:  3,
		InitialDelay: time.Second,
		MaxDelay:     5 * time.Second,
	}
}

// Executor retries operations according to its Config.
type Executor struct {
	cfg Config
}

func New(cfg Config) *Executor {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = time.Second
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = 5 * time.Second
	}
	return &Executor{cfg: cfg}
}

// Do executes op up to the configured attempt budget. Failed attempts wait
// min(InitialDelay × 2^(attempt−1), MaxDelay) before the next try. Errors whose
// classification is permanent (invalid configuration, schema failure) are
// returned immediately; unclassified errors are assumed transient, since they
// originate from remote calls. The last error is always returned once the
// budget is exhausted, never swallowed.
func (e *Executor) Do(ctx context.Context, name string, op func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 1; attempt <= e.cfg.MaxAttempts; attempt++ {
		err := op(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if !retryable(err) {
			return err
		}

		log.Printf("retry: %s attempt %d/%d failed: %v", name, attempt, e.cfg.MaxAttempts, err)

		if attempt == e.cfg.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return errors.Wrapf(ctx.Err(), errors.CodeTimeout, "%s aborted while backing off", name)
		case <-time.After(e.backoff(attempt)):
		}
	}

	return lastErr
}

// backoff returns the delay to wait after the given 1-based attempt.
func (e *Executor) backoff(attempt int) time.Duration {
	delay := e.cfg.InitialDelay << (attempt - 1)
	if delay > e.cfg.MaxDelay || delay <= 0 {
		delay = e.cfg.MaxDelay
	}
	return delay
}

// retryable reports whether an error should consume another attempt. Tagged
// platform errors answer via their classification. Plain errors are treated as
// transient: every operation run through the executor is a remote call, and an
// untagged failure there is far more likely a network hiccup than a permanent
// condition.
func retryable(err error) bool {
	var perr errors.PlatformError
	if errors.As(err, &perr) {
		return perr.Classification().IsRetryable()
	}
	return true
}
