package resilience

import (
	"math/rand/v2"
	"time"
)

// BackoffConfig configures an ExponentialBackoff.
type BackoffConfig struct {
	// MaxRetries is the retry ceiling: once this many attempts have
	// been made, Wait signals exhaustion instead of scheduling another
	// delay. The ceiling itself is never attempted.
	// Default: 20
	MaxRetries int
}

// ExponentialBackoff decides, for a bounded number of attempts, whether
// another retry should occur and how long to wait before it. The delay
// for the n-th attempt is
//
//	(2^n) * 25ms, plus a uniform jitter in [-10ms, 10ms]
//
// so delays grow 50ms, 100ms, 200ms, ... jittered, unbounded except by
// the retry ceiling.
//
// An ExponentialBackoff is owned by the single retrying operation that
// created it and is not safe for concurrent use. Create one per
// operation and discard it when the operation completes.
type ExponentialBackoff struct {
	maxRetries int
	retries    int
}

// NewExponentialBackoff creates a backoff strategy with its counter at
// zero.
func NewExponentialBackoff(config ...BackoffConfig) *ExponentialBackoff {
	cfg := BackoffConfig{}
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 20
	}

	return &ExponentialBackoff{maxRetries: cfg.MaxRetries}
}

// Retries returns the number of attempts made so far.
func (b *ExponentialBackoff) Retries() int {
	return b.retries
}

// MaxRetries returns the configured retry ceiling.
func (b *ExponentialBackoff) MaxRetries() int {
	return b.maxRetries
}

// NextAttempt records an attempt and reports whether the retry counter
// is still below the ceiling.
func (b *ExponentialBackoff) NextAttempt() bool {
	b.retries++
	return b.retries < b.maxRetries
}

// Delay computes the jittered delay for the current retry count.
func (b *ExponentialBackoff) Delay() time.Duration {
	// #nosec G404 -- jitter is non-cryptographic timing variance.
	jitter := time.Duration(rand.IntN(21)-10) * time.Millisecond
	return time.Duration(1<<uint(b.retries))*25*time.Millisecond + jitter
}

// Wait records an attempt and schedules onReady to run once the
// attempt's backoff delay has elapsed, returning the delay immediately
// without blocking. onReady receives the same delay and fires exactly
// once, on its own goroutine.
//
// When the ceiling has been reached, Wait instead invokes onReady
// synchronously with a zero delay and returns zero: the signal to give
// up rather than an error.
func (b *ExponentialBackoff) Wait(onReady func(delay time.Duration)) time.Duration {
	if !b.NextAttempt() {
		onReady(0)
		return 0
	}

	delay := b.Delay()
	time.AfterFunc(delay, func() {
		onReady(delay)
	})
	return delay
}
