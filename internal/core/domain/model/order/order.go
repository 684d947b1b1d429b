package order

import (
	"time"

	"courierapp/internal/core/domain/model/kernel"
	"courierapp/internal/core/domain/model/user"
)

// Order is a read-only snapshot of a backend order record.
//
// The backend owns the order lifecycle entirely: the client fetches
// snapshots, requests transitions, and re-renders from the updated snapshot
// the backend returns. Nothing here is created, mutated in place, or
// destroyed locally, which is why Order exposes plain fields instead of the
// encapsulated-aggregate shape used for locally owned entities.
type Order struct {
	ID             kernel.UUID
	Status         Status
	Customer       user.User
	Courier        *user.User
	Address        string
	AddressDetails *AddressDetails
	Description    string
	Price          kernel.Money
	ScheduledAt    time.Time
	Notes          string
	Coordinates    *kernel.Coordinates
	Payments       []Payment
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasCourier reports whether a courier is assigned.
func (o *Order) HasCourier() bool {
	return o.Courier != nil
}

// IsAssignedTo reports whether the given courier is the one assigned to this
// order. This is the guard condition for advancing past the assigned status.
func (o *Order) IsAssignedTo(courierID kernel.UUID) bool {
	return o.Courier != nil && o.Courier.ID.IsEqual(courierID)
}

// AddressDetails is the structured sub-address attached to the delivery
// address: building, block, entrance, floor, apartment, intercom code.
// All fields are optional.
type AddressDetails struct {
	Building  *int
	Block     *string
	Entrance  *string
	Floor     *int
	Apartment *int
	Intercom  *string
}

// Filter narrows a list fetch: optional status and optional assigned-courier
// identity. A zero Filter fetches everything. The backend owns filtering;
// the client passes the filter through and does not re-filter results.
type Filter struct {
	Status    *Status
	CourierID *kernel.UUID
}

// List is an ordered collection of order snapshots plus the backend's total
// count, which may exceed len(Orders) for paginated responses.
type List struct {
	Orders []Order
	Total  int
}
