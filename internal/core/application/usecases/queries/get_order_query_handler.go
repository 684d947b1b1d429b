package queries

import (
	"context"

	"courierapp/internal/core/domain/model/order"
	"courierapp/internal/core/domain/services"
	"courierapp/internal/core/ports"
	"courierapp/internal/pkg/format"

	"github.com/samber/lo"
)

// GetOrderQueryHandler builds the detail screen view from a backend fetch.
type GetOrderQueryHandler struct {
	orderClient ports.OrderClient
	pending     ports.PendingTracker
	policy      services.ActionPolicy
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(
	orderClient ports.OrderClient,
	pending ports.PendingTracker,
	policy services.ActionPolicy,
) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		orderClient: orderClient,
		pending:     pending,
		policy:      policy,
	}
}

// Handle fetches the order and shapes the full detail view. A missing order
// surfaces as an ObjectNotFoundError; an unknown status renders display-only
// with no actions.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	o, err := h.orderClient.GetOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	summary, err := newOrderSummary(h.policy, h.pending.IsPending(o.ID.String()), *o, query.ViewerID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response := GetOrderQueryResponse{
		OrderSummary: summary,
		Notes:        o.Notes,
		CreatedAt:    format.DateFull(o.CreatedAt),
		Payments: lo.Map(o.Payments, func(p order.Payment, _ int) PaymentView {
			return PaymentView{
				ID:        p.ID.String(),
				Amount:    p.Amount.FormatGrouped(),
				Status:    p.Status,
				Method:    p.Method,
				CreatedAt: format.DateTime(p.CreatedAt),
			}
		}),
	}

	if o.Courier != nil {
		response.CourierName = o.Courier.Name
		response.CourierPhone = format.Phone(o.Courier.Phone)
	}
	if o.AddressDetails != nil {
		response.AddressDetails = &AddressDetailsView{
			Building:  o.AddressDetails.Building,
			Block:     o.AddressDetails.Block,
			Entrance:  o.AddressDetails.Entrance,
			Floor:     o.AddressDetails.Floor,
			Apartment: o.AddressDetails.Apartment,
			Intercom:  o.AddressDetails.Intercom,
		}
	}
	if o.Coordinates != nil {
		response.Coordinates = &CoordinatesView{
			Lat: o.Coordinates.Lat(),
			Lon: o.Coordinates.Lon(),
		}
	}

	return response, nil
}
