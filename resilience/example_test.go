package resilience_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonwraymond/svckit/resilience"
)

func ExampleExponentialBackoff_NextAttempt() {
	backoff := resilience.NewExponentialBackoff(resilience.BackoffConfig{
		MaxRetries: 3,
	})

	for backoff.NextAttempt() {
		fmt.Println("attempt", backoff.Retries())
	}
	fmt.Println("gave up after", backoff.Retries(), "attempts")
	// Output:
	// attempt 1
	// attempt 2
	// gave up after 3 attempts
}

func ExampleExponentialBackoff_Wait() {
	backoff := resilience.NewExponentialBackoff(resilience.BackoffConfig{
		MaxRetries: 4,
	})

	done := make(chan struct{})
	var attempt func()
	attempt = func() {
		backoff.Wait(func(delay time.Duration) {
			if delay == 0 {
				fmt.Println("exhausted after", backoff.Retries(), "attempts")
				close(done)
				return
			}
			// A real caller would retry its operation here.
			attempt()
		})
	}
	attempt()
	<-done
	// Output:
	// exhausted after 4 attempts
}

func ExampleRetry_Execute() {
	retry := resilience.NewRetry(resilience.RetryConfig{MaxRetries: 5})

	attempts := 0
	err := retry.Execute(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("transient failure")
		}
		return nil
	})

	fmt.Println("error:", err)
	fmt.Println("attempts:", attempts)
	// Output:
	// error: <nil>
	// attempts: 3
}
