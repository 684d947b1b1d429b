package ports

import (
	"context"

	"courierapp/internal/core/domain/model/kernel"
	"courierapp/internal/core/domain/model/order"
)

// StatusUpdate is a status-transition request for an order: the target
// status and, for courier-initiated transitions, the acting courier's
// identity.
type StatusUpdate struct {
	Status    order.Status
	CourierID *kernel.UUID
}

// Cancellation is a cancel request: the acting courier and an optional
// free-text reason.
type Cancellation struct {
	CourierID kernel.UUID
	Reason    string
}

// OrderClient is the outbound contract to the remote order backend, which
// owns all order state and is the final authority on transition legality.
// Every method returns backend-confirmed snapshots; the client never treats
// local state as authoritative after a call resolves.
type OrderClient interface {
	// GetOrders fetches a filtered order list plus the backend total count.
	GetOrders(ctx context.Context, filter order.Filter) (order.List, error)

	// GetOrder fetches a single order snapshot.
	// Returns an ObjectNotFoundError when the id has no backing record.
	GetOrder(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus requests a status transition and returns the updated
	// snapshot. Illegal transitions fail with a backend error surfaced as
	// RequestFailedError.
	UpdateStatus(ctx context.Context, id kernel.UUID, update StatusUpdate) (*order.Order, error)

	// Cancel requests cancellation and returns the updated snapshot.
	Cancel(ctx context.Context, id kernel.UUID, cancellation Cancellation) (*order.Order, error)
}
