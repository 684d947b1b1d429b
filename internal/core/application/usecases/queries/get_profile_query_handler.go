package queries

import (
	"context"

	"courierapp/internal/core/domain/model/order"
	"courierapp/internal/core/ports"
	"courierapp/internal/pkg/format"

	"github.com/samber/lo"
)

// GetProfileQueryHandler builds the profile screen view: the courier's own
// user record plus statistics over the orders assigned to them.
type GetProfileQueryHandler struct {
	profileClient ports.ProfileClient
	orderClient   ports.OrderClient
}

// NewGetProfileQueryHandler creates a handler for profile queries.
func NewGetProfileQueryHandler(
	profileClient ports.ProfileClient,
	orderClient ports.OrderClient,
) GetProfileQueryHandler {
	return GetProfileQueryHandler{
		profileClient: profileClient,
		orderClient:   orderClient,
	}
}

// Handle fetches the courier's record and their order list, and computes the
// totals the profile screen shows.
func (h GetProfileQueryHandler) Handle(
	ctx context.Context,
	query GetProfileQuery,
) (GetProfileQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProfileQueryResponse{}, err
	}

	me, err := h.profileClient.GetMe(ctx)
	if err != nil {
		return GetProfileQueryResponse{}, err
	}

	list, err := h.orderClient.GetOrders(ctx, order.Filter{CourierID: &me.ID})
	if err != nil {
		return GetProfileQueryResponse{}, err
	}

	completed := lo.CountBy(list.Orders, func(o order.Order) bool {
		return o.Status == order.StatusDone
	})

	return GetProfileQueryResponse{
		ID:              me.ID.String(),
		Name:            me.Name,
		Phone:           format.Phone(me.Phone),
		IsPhoneVerified: me.IsPhoneVerified,
		Email:           me.Email,
		IsEmailVerified: me.IsEmailVerified,
		Role:            me.Role,
		MemberSince:     format.MonthYear(&me.CreatedAt),
		TotalOrders:     list.Total,
		CompletedOrders: completed,
	}, nil
}
