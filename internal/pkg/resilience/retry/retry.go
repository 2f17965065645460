// Package retry runs operations that may fail temporarily with exponential
// backoff. It wraps avast/retry-go behind a small interface so callers can
// swap in a fake during tests.
//
//	r := retry.New(
//	    retry.WithAttempts(5),
//	    retry.WithRetryIf(isTransient),
//	)
//	err := r.Execute(ctx, "get_height", func() error {
//	    return call(ctx)
//	})
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
	"github.com/gabapcia/walletsync/internal/pkg/logger"
)

// Retry executes an operation with retry logic.
type Retry interface {
	// Execute runs operation until it succeeds, a non-retryable error is
	// returned, the attempts are exhausted or ctx is done. name identifies the
	// operation in logs.
	//
	// operation must be safe to call more than once.
	Execute(ctx context.Context, name string, operation func() error) error
}

// config holds internal settings for the retry mechanism.
type config struct {
	attempts    uint             // maximum number of attempts, including the first
	delay       time.Duration    // base delay between attempts
	maxDelay    time.Duration    // cap of the exponential delay
	lastErrOnly bool             // return only the last error instead of all of them
	retryIf     func(error) bool // decides whether an error is retried
}

// Option configures the retry mechanism.
type Option func(*config)

// retrier implements Retry on top of retry-go.
type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New creates a Retry. Defaults:
//
//   - attempts:    3
//   - delay:       1 second, doubled on every attempt
//   - maxDelay:    5 seconds
//   - lastErrOnly: true
//   - retryIf:     every error is retried
func New(opts ...Option) *retrier {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
		retryIf:     retry.IsRecoverable,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

func (r *retrier) Execute(ctx context.Context, name string, operation func() error) error {
	return retry.Do(operation,
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.RetryIf(r.cfg.retryIf),
		retry.OnRetry(func(attempt uint, err error) {
			logger.Warn(ctx, "retrying operation",
				"retry.operation", name,
				"retry.attempt", attempt+1,
				"error", err,
			)
		}),
		retry.Context(ctx),
	)
}

// WithAttempts sets the maximum number of attempts, including the first one.
// Default: 3.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between attempts. Default: 1 second.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the delay between attempts. Default: 5 seconds.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly sets whether only the error of the final attempt is
// returned. Default: true.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithRetryIf limits retries to errors for which f returns true. Any other
// error is returned immediately.
func WithRetryIf(f func(error) bool) Option {
	return func(c *config) {
		c.retryIf = f
	}
}
