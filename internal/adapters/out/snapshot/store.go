// Package snapshot provides the in-memory store for last-fetched order
// snapshots. It is session-scoped local state, wiped in one step on session
// teardown.
package snapshot

import (
	"sync"

	"courierapp/internal/core/domain/model/kernel"
	"courierapp/internal/core/domain/model/order"
	"courierapp/internal/pkg/metrics"
)

// Store is a concurrency-safe map of order snapshots keyed by order id.
// Contents are hints for rendering, never authoritative state: the backend
// owns all orders and every mutation path overwrites entries with
// backend-confirmed snapshots.
type Store struct {
	mu    sync.RWMutex
	items map[string]order.Order
}

// NewStore creates an empty snapshot store.
func NewStore() *Store {
	return &Store{items: make(map[string]order.Order)}
}

// Put stores one snapshot, replacing any previous entry for the same order.
func (s *Store) Put(snapshot order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[snapshot.ID.String()] = snapshot
	metrics.SnapshotItems.Set(float64(len(s.items)))
}

// PutAll stores a batch of snapshots, typically a whole list fetch.
func (s *Store) PutAll(snapshots []order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, snapshot := range snapshots {
		s.items[snapshot.ID.String()] = snapshot
	}
	metrics.SnapshotItems.Set(float64(len(s.items)))
}

// Get returns the stored snapshot for the id, if any.
func (s *Store) Get(id kernel.UUID) (order.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot, ok := s.items[id.String()]
	return snapshot, ok
}

// Remove drops the snapshot for the id. Safe to call for absent ids.
func (s *Store) Remove(id kernel.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, id.String())
	metrics.SnapshotItems.Set(float64(len(s.items)))
}

// Clear wipes every snapshot. This is the session-teardown path.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string]order.Order)
	metrics.SnapshotItems.Set(0)
}

// Len returns the number of stored snapshots.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}
