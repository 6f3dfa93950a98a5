// Package resilience provides a retry strategy with jittered
// exponential backoff.
//
// ExponentialBackoff is the core primitive: a per-operation counter
// that decides whether another attempt should occur and how long to
// wait before it. Reaching the retry ceiling is a designed terminal
// state signaled by a zero delay, not an error, so the package defines
// no error conditions of its own.
//
// # Usage
//
// Callback style, mirroring an event-loop timer:
//
//	backoff := resilience.NewExponentialBackoff()
//	backoff.Wait(func(delay time.Duration) {
//	    if delay == 0 {
//	        // ceiling reached, give up
//	        return
//	    }
//	    // delay has elapsed, try again
//	})
//
// Loop style, for ordinary blocking callers:
//
//	retry := resilience.NewRetry(resilience.RetryConfig{MaxRetries: 5})
//	err := retry.Execute(ctx, func(ctx context.Context) error {
//	    return callExternalService(ctx)
//	})
package resilience
