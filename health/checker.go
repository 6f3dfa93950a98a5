package health

import "context"

// Checker is the boundary to a service's own health probes.
//
// Contract:
//   - Check is invoked exactly once per health-check request, on the
//     request's goroutine, and must return exactly once.
//   - A nil result means "all healthy, no sub-component detail".
//   - quick indicates the caller wants a fast go/no-go answer; a quick
//     check should skip expensive per-component probing.
//   - There is no cancellation beyond ctx; a Check that never returns
//     leaves the HTTP response pending.
type Checker interface {
	Check(ctx context.Context, quick bool) []Component
}

// CheckerFunc is an adapter to allow ordinary functions to be used as
// Checkers.
type CheckerFunc func(ctx context.Context, quick bool) []Component

// Check performs the health check.
func (f CheckerFunc) Check(ctx context.Context, quick bool) []Component {
	return f(ctx, quick)
}

// AlwaysHealthy is a checker for services with nothing to probe: it
// reports all-healthy with no detail in both quick and full mode.
var AlwaysHealthy Checker = CheckerFunc(func(context.Context, bool) []Component {
	return nil
})
