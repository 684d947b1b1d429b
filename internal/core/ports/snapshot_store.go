package ports

import (
	"courierapp/internal/core/domain/model/kernel"
	"courierapp/internal/core/domain/model/order"
)

// SnapshotStore holds the last-fetched order snapshots. It belongs to the
// data layer: the workflow writes backend-confirmed snapshots through it and
// treats its contents as read-only hints, never as authoritative state.
//
// Clear implements the session-teardown event: logging out wipes every
// cached snapshot in one explicit step.
type SnapshotStore interface {
	Put(snapshot order.Order)
	PutAll(snapshots []order.Order)
	Get(id kernel.UUID) (order.Order, bool)
	Remove(id kernel.UUID)
	Clear()
}

// PendingTracker reports whether a status mutation is currently in flight
// for an order, keyed by the order id's string form. The rendering layer
// uses it for per-action pending/disabled flags.
type PendingTracker interface {
	IsPending(key string) bool
}
