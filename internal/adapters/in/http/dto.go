package http

import (
	"courierapp/internal/core/application/usecases/queries"

	"github.com/samber/lo"
)

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Action is one button the rendering layer should offer.
type Action struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Kind    string `json:"kind"`
	Confirm bool   `json:"confirm"`
}

// OrderSummary is one list row.
type OrderSummary struct {
	ID            string   `json:"id"`
	Status        string   `json:"status"`
	StatusLabel   string   `json:"statusLabel"`
	StatusColor   string   `json:"statusColor"`
	StatusUnknown bool     `json:"statusUnknown,omitempty"`
	Description   string   `json:"description"`
	Address       string   `json:"address"`
	CustomerName  string   `json:"customerName"`
	CustomerPhone string   `json:"customerPhone"`
	Price         string   `json:"price"`
	ScheduledAt   string   `json:"scheduledAt"`
	Actions       []Action `json:"actions"`
	Pending       bool     `json:"pending"`
}

// OrdersResponse is the list endpoint payload.
type OrdersResponse struct {
	Orders []OrderSummary `json:"orders"`
	Total  int            `json:"total"`
}

// AddressDetails is the structured sub-address on the detail payload.
type AddressDetails struct {
	Building  *int    `json:"building,omitempty"`
	Block     *string `json:"block,omitempty"`
	Entrance  *string `json:"entrance,omitempty"`
	Floor     *int    `json:"floor,omitempty"`
	Apartment *int    `json:"apartment,omitempty"`
	Intercom  *string `json:"intercom,omitempty"`
}

// Coordinates is the delivery point on the detail payload.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Payment is one payment record on the detail payload.
type Payment struct {
	ID        string `json:"id"`
	Amount    string `json:"amount"`
	Status    string `json:"status"`
	Method    string `json:"method"`
	CreatedAt string `json:"createdAt"`
}

// OrderDetail is the detail endpoint payload.
type OrderDetail struct {
	OrderSummary

	CourierName    string          `json:"courierName,omitempty"`
	CourierPhone   string          `json:"courierPhone,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	AddressDetails *AddressDetails `json:"addressDetails,omitempty"`
	Coordinates    *Coordinates    `json:"coordinates,omitempty"`
	Payments       []Payment       `json:"payments,omitempty"`
	CreatedAt      string          `json:"createdAt"`
}

// Profile is the profile endpoint payload.
type Profile struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	IsPhoneVerified bool    `json:"isPhoneVerified"`
	Email           *string `json:"email,omitempty"`
	IsEmailVerified bool    `json:"isEmailVerified"`
	Role            string  `json:"role"`
	MemberSince     string  `json:"memberSince"`
	TotalOrders     int     `json:"totalOrders"`
	CompletedOrders int     `json:"completedOrders"`
}

// Support is the support contacts payload.
type Support struct {
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Telegram string `json:"telegram"`
}

// DispatchActionRequest is the action dispatch request body.
type DispatchActionRequest struct {
	Action    string `json:"action"`
	Confirmed bool   `json:"confirmed"`
	Reason    string `json:"reason"`
}

func toActionDTOs(actions []queries.ActionView) []Action {
	return lo.Map(actions, func(a queries.ActionView, _ int) Action {
		return Action{Key: a.Key, Label: a.Label, Kind: a.Kind, Confirm: a.Confirm}
	})
}

func toOrderSummaryDTO(s queries.OrderSummary) OrderSummary {
	return OrderSummary{
		ID:            s.ID,
		Status:        s.Status,
		StatusLabel:   s.StatusLabel,
		StatusColor:   s.StatusColor,
		StatusUnknown: s.StatusUnknown,
		Description:   s.Description,
		Address:       s.Address,
		CustomerName:  s.CustomerName,
		CustomerPhone: s.CustomerPhone,
		Price:         s.Price,
		ScheduledAt:   s.ScheduledAt,
		Actions:       toActionDTOs(s.Actions),
		Pending:       s.Pending,
	}
}

func toOrderDetailDTO(d queries.GetOrderQueryResponse) OrderDetail {
	detail := OrderDetail{
		OrderSummary: toOrderSummaryDTO(d.OrderSummary),
		CourierName:  d.CourierName,
		CourierPhone: d.CourierPhone,
		Notes:        d.Notes,
		CreatedAt:    d.CreatedAt,
		Payments: lo.Map(d.Payments, func(p queries.PaymentView, _ int) Payment {
			return Payment{
				ID:        p.ID,
				Amount:    p.Amount,
				Status:    p.Status,
				Method:    p.Method,
				CreatedAt: p.CreatedAt,
			}
		}),
	}

	if d.AddressDetails != nil {
		detail.AddressDetails = &AddressDetails{
			Building:  d.AddressDetails.Building,
			Block:     d.AddressDetails.Block,
			Entrance:  d.AddressDetails.Entrance,
			Floor:     d.AddressDetails.Floor,
			Apartment: d.AddressDetails.Apartment,
			Intercom:  d.AddressDetails.Intercom,
		}
	}
	if d.Coordinates != nil {
		detail.Coordinates = &Coordinates{Lat: d.Coordinates.Lat, Lon: d.Coordinates.Lon}
	}

	return detail
}

func toProfileDTO(p queries.GetProfileQueryResponse) Profile {
	return Profile{
		ID:              p.ID,
		Name:            p.Name,
		Phone:           p.Phone,
		IsPhoneVerified: p.IsPhoneVerified,
		Email:           p.Email,
		IsEmailVerified: p.IsEmailVerified,
		Role:            p.Role,
		MemberSince:     p.MemberSince,
		TotalOrders:     p.TotalOrders,
		CompletedOrders: p.CompletedOrders,
	}
}
