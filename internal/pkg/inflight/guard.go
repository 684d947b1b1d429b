// Package inflight provides the duplicate-submission guard for order status
// mutations: at most one mutation request may be in flight per order id at a
// time, while mutations on different orders stay independent.
package inflight

import (
	"sync"

	"courierapp/internal/pkg/metrics"
)

// Guard tracks in-flight mutation keys. A second Acquire for the same key is
// rejected until the first holder releases it. Release is unconditional on
// completion regardless of request outcome or whether the initiating view is
// still mounted.
type Guard struct {
	mu      sync.Mutex
	pending map[string]struct{}
}

// NewGuard creates an empty guard.
func NewGuard() *Guard {
	return &Guard{pending: make(map[string]struct{})}
}

// Acquire marks the key as in flight. Returns false without side effects if
// a mutation for the key is already pending.
func (g *Guard) Acquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.pending[key]; exists {
		return false
	}
	g.pending[key] = struct{}{}
	metrics.PendingMutations.Inc()
	return true
}

// Release clears the key. Safe to call for keys that are not pending.
func (g *Guard) Release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.pending[key]; !exists {
		return
	}
	delete(g.pending, key)
	metrics.PendingMutations.Dec()
}

// IsPending reports whether a mutation for the key is in flight.
func (g *Guard) IsPending(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, exists := g.pending[key]
	return exists
}
