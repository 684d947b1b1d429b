package backendhttp

import (
	"time"

	"courierapp/internal/core/domain/model/kernel"
	"courierapp/internal/core/domain/model/order"
	"courierapp/internal/core/domain/model/user"
	"courierapp/internal/pkg/errs"

	"github.com/samber/lo"
)

// Wire DTOs mirror the backend's JSON contract, including its "currier" field
// spelling for the assigned courier. Prices travel as decimal strings of
// kopecks.

type userDTO struct {
	ID              string     `json:"id"`
	Role            string     `json:"role"`
	Name            string     `json:"name"`
	Phone           string     `json:"phone"`
	IsPhoneVerified bool       `json:"isPhoneVerified"`
	Email           *string    `json:"email,omitempty"`
	IsEmailVerified bool       `json:"isEmailVerified"`
	LastLoginAt     *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// The backend names the block "buildingBlock" and the intercom code
// "domophone"; the domain model keeps the neutral names.
type addressDetailsDTO struct {
	Building  *int    `json:"building,omitempty"`
	Block     *string `json:"buildingBlock,omitempty"`
	Entrance  *string `json:"entrance,omitempty"`
	Floor     *int    `json:"floor,omitempty"`
	Apartment *int    `json:"apartment,omitempty"`
	Intercom  *string `json:"domophone,omitempty"`
}

type coordinatesDTO struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type paymentDTO struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	Amount    string    `json:"amount"`
	Status    string    `json:"status"`
	Method    string    `json:"method"`
	CreatedAt time.Time `json:"createdAt"`
}

type orderDTO struct {
	ID             string             `json:"id"`
	Status         string             `json:"status"`
	Customer       userDTO            `json:"customer"`
	Currier        *userDTO           `json:"currier,omitempty"`
	Address        string             `json:"address"`
	AddressDetails *addressDetailsDTO `json:"addressDetails,omitempty"`
	Description    string             `json:"description"`
	Price          string             `json:"price"`
	ScheduledAt    time.Time          `json:"scheduledAt"`
	Notes          string             `json:"notes"`
	Coordinates    *coordinatesDTO    `json:"coordinates,omitempty"`
	Payments       []paymentDTO       `json:"payments,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

type orderListDTO struct {
	Orders []orderDTO `json:"orders"`
	Total  int        `json:"total"`
}

type updateStatusRequestDTO struct {
	Status    string  `json:"status"`
	CurrierID *string `json:"currierId,omitempty"`
}

type cancelRequestDTO struct {
	CourierID string `json:"courierId"`
	Reason    string `json:"reason"`
}

func (d userDTO) toDomain() (user.User, error) {
	id, err := kernel.UUIDFromString(d.ID)
	if err != nil {
		return user.User{}, errs.NewValueIsInvalidErrorWithCause("user.id", err)
	}

	return user.User{
		ID:              id,
		Role:            d.Role,
		Name:            d.Name,
		Phone:           d.Phone,
		IsPhoneVerified: d.IsPhoneVerified,
		Email:           d.Email,
		IsEmailVerified: d.IsEmailVerified,
		LastLoginAt:     d.LastLoginAt,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}, nil
}

func (d paymentDTO) toDomain() (order.Payment, error) {
	id, err := kernel.UUIDFromString(d.ID)
	if err != nil {
		return order.Payment{}, errs.NewValueIsInvalidErrorWithCause("payment.id", err)
	}
	orderID, err := kernel.UUIDFromString(d.OrderID)
	if err != nil {
		return order.Payment{}, errs.NewValueIsInvalidErrorWithCause("payment.orderId", err)
	}
	amount, err := kernel.MoneyFromString(d.Amount)
	if err != nil {
		return order.Payment{}, err
	}

	return order.Payment{
		ID:        id,
		OrderID:   orderID,
		Amount:    amount,
		Status:    d.Status,
		Method:    d.Method,
		CreatedAt: d.CreatedAt,
	}, nil
}

// toDomain maps the wire order to the domain snapshot. The status is carried
// as-is, unknown values included: rendering decides how to present statuses
// this client does not know, parsing must not reject them.
func (d orderDTO) toDomain() (order.Order, error) {
	id, err := kernel.UUIDFromString(d.ID)
	if err != nil {
		return order.Order{}, errs.NewValueIsInvalidErrorWithCause("order.id", err)
	}
	customer, err := d.Customer.toDomain()
	if err != nil {
		return order.Order{}, err
	}
	price, err := kernel.MoneyFromString(d.Price)
	if err != nil {
		return order.Order{}, err
	}

	o := order.Order{
		ID:          id,
		Status:      order.Status(d.Status),
		Customer:    customer,
		Address:     d.Address,
		Description: d.Description,
		Price:       price,
		ScheduledAt: d.ScheduledAt,
		Notes:       d.Notes,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}

	if d.Currier != nil {
		courier, err := d.Currier.toDomain()
		if err != nil {
			return order.Order{}, err
		}
		o.Courier = &courier
	}

	if d.AddressDetails != nil {
		o.AddressDetails = &order.AddressDetails{
			Building:  d.AddressDetails.Building,
			Block:     d.AddressDetails.Block,
			Entrance:  d.AddressDetails.Entrance,
			Floor:     d.AddressDetails.Floor,
			Apartment: d.AddressDetails.Apartment,
			Intercom:  d.AddressDetails.Intercom,
		}
	}

	if d.Coordinates != nil {
		coordinates, err := kernel.NewCoordinates(d.Coordinates.Lat, d.Coordinates.Lon)
		if err != nil {
			return order.Order{}, err
		}
		o.Coordinates = &coordinates
	}

	for _, p := range d.Payments {
		payment, err := p.toDomain()
		if err != nil {
			return order.Order{}, err
		}
		o.Payments = append(o.Payments, payment)
	}

	return o, nil
}

func (d orderListDTO) toDomain() (order.List, error) {
	orders := make([]order.Order, 0, len(d.Orders))
	for _, dto := range d.Orders {
		o, err := dto.toDomain()
		if err != nil {
			return order.List{}, err
		}
		orders = append(orders, o)
	}
	return order.List{Orders: orders, Total: d.Total}, nil
}

func newUpdateStatusRequest(status order.Status, courierID *kernel.UUID) updateStatusRequestDTO {
	var currierID *string
	if courierID != nil {
		currierID = lo.ToPtr(courierID.String())
	}
	return updateStatusRequestDTO{
		Status:    status.String(),
		CurrierID: currierID,
	}
}
