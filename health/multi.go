package health

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// MultiChecker fans a health-check request out to named sub-checkers and
// merges their component sets. In quick mode no sub-checker is invoked
// and the result is all-healthy with no detail.
type MultiChecker struct {
	mu       sync.RWMutex
	checkers map[string]Checker
	order    []string // Maintains registration order
}

// NewMultiChecker creates an empty MultiChecker.
func NewMultiChecker() *MultiChecker {
	return &MultiChecker{
		checkers: make(map[string]Checker),
	}
}

// Register adds a sub-checker. Registering an existing name replaces the
// previous checker.
func (m *MultiChecker) Register(name string, checker Checker) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.checkers[name]; !exists {
		m.order = append(m.order, name)
	}
	m.checkers[name] = checker
}

// Unregister removes a sub-checker.
func (m *MultiChecker) Unregister(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.checkers, name)

	for i, n := range m.order {
		if n == name {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Names returns the names of all registered sub-checkers in registration
// order.
func (m *MultiChecker) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, len(m.order))
	copy(names, m.order)
	return names
}

// Check runs all sub-checkers concurrently and merges their components
// in registration order. Quick mode short-circuits to nil.
func (m *MultiChecker) Check(ctx context.Context, quick bool) []Component {
	if quick {
		return nil
	}

	m.mu.RLock()
	order := make([]string, len(m.order))
	copy(order, m.order)
	checkers := make([]Checker, len(order))
	for i, name := range order {
		checkers[i] = m.checkers[name]
	}
	m.mu.RUnlock()

	if len(checkers) == 0 {
		return nil
	}

	results := make([][]Component, len(checkers))

	g, ctx := errgroup.WithContext(ctx)
	for i, checker := range checkers {
		g.Go(func() error {
			results[i] = checker.Check(ctx, false)
			return nil
		})
	}
	_ = g.Wait() // checkers report health, never errors

	var components []Component
	for _, result := range results {
		components = append(components, result...)
	}
	return components
}

var _ Checker = (*MultiChecker)(nil)
