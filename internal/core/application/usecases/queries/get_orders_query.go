package queries

import (
	"errors"

	"courierapp/internal/core/domain/model/kernel"
	"courierapp/internal/core/domain/model/order"
	"courierapp/internal/pkg/errs"
	"courierapp/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery fetches the order list for the list screen.
//
// status and courierID narrow the fetch; both are optional and passed through
// to the backend, which owns filtering. viewerID is the authenticated
// courier, optional, and only affects which actions each row offers.
//
// Example:
//
//	query, err := NewGetOrdersQuery(lo.ToPtr(order.StatusNew), nil, &viewerID)
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	status    *order.Status
	courierID *kernel.UUID
	viewerID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a validated list query. A provided status filter
// must belong to the known enumeration; a provided courier or viewer id must
// be constructed.
func NewGetOrdersQuery(status *order.Status, courierID, viewerID *kernel.UUID) (GetOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("status", err)
		}
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return GetOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("courierID", err)
		}
	}
	if viewerID != nil {
		if err := viewerID.Validate(); err != nil {
			return GetOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("viewerID", err)
		}
	}

	return GetOrdersQuery{
		status:    status,
		courierID: courierID,
		viewerID:  viewerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Status returns the optional status filter.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// CourierID returns the optional assigned-courier filter.
func (q GetOrdersQuery) CourierID() *kernel.UUID {
	return q.courierID
}

// ViewerID returns the optional authenticated viewer.
func (q GetOrdersQuery) ViewerID() *kernel.UUID {
	return q.viewerID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// GetOrdersQueryResponse is the list screen payload: row views plus the
// backend's total count, which may exceed len(Orders) for paginated fetches.
type GetOrdersQueryResponse struct {
	Orders []OrderSummary
	Total  int
}
