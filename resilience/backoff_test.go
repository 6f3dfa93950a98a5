package resilience

import (
	"testing"
	"time"
)

func TestNewExponentialBackoff(t *testing.T) {
	b := NewExponentialBackoff()

	if b.MaxRetries() != 20 {
		t.Errorf("MaxRetries() = %d, want 20", b.MaxRetries())
	}
	if b.Retries() != 0 {
		t.Errorf("Retries() = %d, want 0", b.Retries())
	}
}

func TestNewExponentialBackoff_WithConfig(t *testing.T) {
	b := NewExponentialBackoff(BackoffConfig{MaxRetries: 5})

	if b.MaxRetries() != 5 {
		t.Errorf("MaxRetries() = %d, want 5", b.MaxRetries())
	}
}

func TestExponentialBackoff_NextAttempt(t *testing.T) {
	const maxRetries = 5
	b := NewExponentialBackoff(BackoffConfig{MaxRetries: maxRetries})

	// The first maxRetries-1 calls succeed; the ceiling itself is
	// never attempted.
	for i := 1; i < maxRetries; i++ {
		if !b.NextAttempt() {
			t.Fatalf("NextAttempt() call %d = false, want true", i)
		}
		if b.Retries() != i {
			t.Fatalf("Retries() = %d, want %d", b.Retries(), i)
		}
	}

	if b.NextAttempt() {
		t.Errorf("NextAttempt() call %d = true, want false", maxRetries)
	}
}

func TestExponentialBackoff_DelayBounds(t *testing.T) {
	b := NewExponentialBackoff()

	for n := 1; n <= 6; n++ {
		b.NextAttempt()

		base := time.Duration(1<<uint(n)) * 25 * time.Millisecond
		low := base - 10*time.Millisecond
		high := base + 10*time.Millisecond

		// Jitter is random; sample a few times.
		for range 20 {
			delay := b.Delay()
			if delay < low || delay > high {
				t.Errorf("Delay() for retry %d = %v, want in [%v, %v]", n, delay, low, high)
			}
		}
	}
}

func TestExponentialBackoff_WaitSchedulesCallback(t *testing.T) {
	b := NewExponentialBackoff()

	delays := make(chan time.Duration, 1)
	returned := b.Wait(func(delay time.Duration) {
		delays <- delay
	})

	if returned < 40*time.Millisecond || returned > 60*time.Millisecond {
		t.Errorf("Wait() = %v, want first delay in [40ms, 60ms]", returned)
	}

	select {
	case delivered := <-delays:
		if delivered != returned {
			t.Errorf("callback delay = %v, want %v (same as return value)", delivered, returned)
		}
	case <-time.After(returned + 500*time.Millisecond):
		t.Fatal("callback never fired")
	}
}

func TestExponentialBackoff_WaitReturnsBeforeCallback(t *testing.T) {
	b := NewExponentialBackoff()

	fired := make(chan struct{})
	b.Wait(func(time.Duration) {
		close(fired)
	})

	// The first delay is at least 40ms; Wait must have returned
	// without blocking on it.
	select {
	case <-fired:
		t.Error("callback fired before the delay elapsed")
	default:
	}

	<-fired
}

func TestExponentialBackoff_WaitAtExhaustion(t *testing.T) {
	b := NewExponentialBackoff(BackoffConfig{MaxRetries: 1})

	var delivered time.Duration = -1
	returned := b.Wait(func(delay time.Duration) {
		delivered = delay
	})

	if returned != 0 {
		t.Errorf("Wait() = %v, want 0", returned)
	}
	// Synchronous invocation: the callback has already run.
	if delivered != 0 {
		t.Errorf("callback delay = %v, want synchronous 0", delivered)
	}
}

func TestExponentialBackoff_WaitExtraArgsViaClosure(t *testing.T) {
	b := NewExponentialBackoff(BackoffConfig{MaxRetries: 1})

	attempt := "refresh-token"
	var got string
	b.Wait(func(delay time.Duration) {
		got = attempt
	})

	if got != "refresh-token" {
		t.Errorf("callback state = %q, want closure-captured value", got)
	}
}

func TestExponentialBackoff_DelayGrowth(t *testing.T) {
	b := NewExponentialBackoff()

	var previous time.Duration
	for n := 1; n <= 5; n++ {
		b.NextAttempt()
		delay := b.Delay()
		// With a ±10ms jitter and a doubling base, each delay is
		// strictly larger than the one before it.
		if delay <= previous {
			t.Errorf("Delay() for retry %d = %v, want > %v", n, delay, previous)
		}
		previous = delay
	}
}
