package queries

import (
	"context"

	"courierapp/internal/core/domain/model/order"
	"courierapp/internal/core/domain/services"
	"courierapp/internal/core/ports"
)

// GetOrdersQueryHandler builds the list screen view from a backend fetch.
//
// The filter is passed through verbatim: the backend owns filtering and the
// handler never re-filters the result, so rows cannot silently disagree with
// the backend's idea of the list.
type GetOrdersQueryHandler struct {
	orderClient ports.OrderClient
	pending     ports.PendingTracker
	policy      services.ActionPolicy
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
func NewGetOrdersQueryHandler(
	orderClient ports.OrderClient,
	pending ports.PendingTracker,
	policy services.ActionPolicy,
) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{
		orderClient: orderClient,
		pending:     pending,
		policy:      policy,
	}
}

// Handle fetches the filtered list and shapes each order into a row view with
// status presentation, per-viewer actions, and the in-flight mutation flag.
// Rows with an unknown status are kept, rendered display-only.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) (GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	list, err := h.orderClient.GetOrders(ctx, order.Filter{
		Status:    query.Status(),
		CourierID: query.CourierID(),
	})
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	summaries := make([]OrderSummary, 0, len(list.Orders))
	for _, o := range list.Orders {
		summary, err := newOrderSummary(h.policy, h.pending.IsPending(o.ID.String()), o, query.ViewerID())
		if err != nil {
			return GetOrdersQueryResponse{}, err
		}
		summaries = append(summaries, summary)
	}

	return GetOrdersQueryResponse{
		Orders: summaries,
		Total:  list.Total,
	}, nil
}
