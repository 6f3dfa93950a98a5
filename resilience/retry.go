package resilience

import (
	"context"
	"time"
)

// RetryConfig configures the retry behavior.
type RetryConfig struct {
	// MaxRetries is the retry ceiling, as in BackoffConfig.
	// Default: 20
	MaxRetries int

	// RetryIf determines if an error should trigger a retry.
	// Default: all non-nil errors trigger retry.
	RetryIf func(err error) bool

	// OnRetry is called before each backoff wait with the attempt
	// number that just failed and the coming delay.
	OnRetry func(attempt int, err error, delay time.Duration)
}

// Retry runs operations repeatedly under an exponential backoff
// strategy until they succeed, a non-retryable error occurs, or the
// retry ceiling is reached.
type Retry struct {
	config RetryConfig
}

// NewRetry creates a new retry handler.
func NewRetry(config RetryConfig) *Retry {
	if config.MaxRetries <= 0 {
		config.MaxRetries = 20
	}
	if config.RetryIf == nil {
		config.RetryIf = func(err error) bool { return err != nil }
	}

	return &Retry{config: config}
}

// Config returns the retry configuration.
func (r *Retry) Config() RetryConfig {
	return r.config
}

// Execute runs op with retry logic. Each Execute call owns a fresh
// backoff strategy. On exhaustion the last error from op is returned;
// a cancelled context returns ctx.Err().
func (r *Retry) Execute(ctx context.Context, op func(context.Context) error) error {
	backoff := NewExponentialBackoff(BackoffConfig{MaxRetries: r.config.MaxRetries})

	var lastErr error
	for {
		err := op(ctx)
		if err == nil {
			return nil
		}

		lastErr = err

		if !r.config.RetryIf(err) {
			return err
		}

		if !backoff.NextAttempt() {
			return lastErr
		}

		delay := backoff.Delay()
		if r.config.OnRetry != nil {
			r.config.OnRetry(backoff.Retries(), err, delay)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			// Continue to next attempt
		}
	}
}
