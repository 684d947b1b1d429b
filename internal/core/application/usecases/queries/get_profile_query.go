package queries

import (
	"errors"

	"courierapp/internal/pkg/guard"
)

var ErrGetProfileQueryIsNotConstructed = errors.New(
	"GetProfileQuery must be created via NewGetProfileQuery constructor",
)

// GetProfileQuery fetches the authenticated courier's profile screen data.
// This is a parameterless query: the backend resolves identity from the
// request's session.
type GetProfileQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProfileQuery creates a profile query.
func NewGetProfileQuery() GetProfileQuery {
	return GetProfileQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProfileQueryIsNotConstructed if validation fails.
func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

// GetProfileQueryResponse is the profile screen payload: the courier's
// identity block plus the delivery statistics computed from their orders.
type GetProfileQueryResponse struct {
	ID              string
	Name            string
	Phone           string
	IsPhoneVerified bool
	Email           *string
	IsEmailVerified bool
	Role            string
	MemberSince     string
	TotalOrders     int
	CompletedOrders int
}
