package queries

import (
	"errors"

	"courierapp/internal/core/domain/model/kernel"
	"courierapp/internal/pkg/errs"
	"courierapp/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery fetches one order for the detail screen.
type GetOrderQuery struct {
	orderID  kernel.UUID
	viewerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a validated detail query. viewerID is the
// authenticated courier, optional; it only affects which actions the detail
// view offers.
func NewGetOrderQuery(orderID kernel.UUID, viewerID *kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	if viewerID != nil {
		if err := viewerID.Validate(); err != nil {
			return GetOrderQuery{}, errs.NewValueIsInvalidErrorWithCause("viewerID", err)
		}
	}

	return GetOrderQuery{
		orderID:  orderID,
		viewerID: viewerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ViewerID returns the optional authenticated viewer.
func (q GetOrderQuery) ViewerID() *kernel.UUID {
	return q.viewerID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// AddressDetailsView is the structured sub-address for the detail screen.
// All fields are optional.
type AddressDetailsView struct {
	Building  *int
	Block     *string
	Entrance  *string
	Floor     *int
	Apartment *int
	Intercom  *string
}

// CoordinatesView is the delivery point for the detail screen's map block.
type CoordinatesView struct {
	Lat float64
	Lon float64
}

// PaymentView is one payment record attached to the order.
type PaymentView struct {
	ID        string
	Amount    string
	Status    string
	Method    string
	CreatedAt string
}

// GetOrderQueryResponse is the detail screen payload: the list-row view plus
// everything the detail screen adds on top of it.
type GetOrderQueryResponse struct {
	OrderSummary

	CourierName    string
	CourierPhone   string
	Notes          string
	AddressDetails *AddressDetailsView
	Coordinates    *CoordinatesView
	Payments       []PaymentView
	CreatedAt      string
}
