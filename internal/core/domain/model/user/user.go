// Package user contains the read-only user reference attached to orders and
// the courier's own profile. User records are owned by the backend; the
// client never mutates them.
package user

import (
	"time"

	"courierapp/internal/core/domain/model/kernel"
)

// Roles known to the client.
const (
	RoleCustomer = "customer"
	RoleCourier  = "courier"
)

// User is a snapshot of a backend user record: the customer who placed an
// order, the courier assigned to it, or the authenticated viewer.
type User struct {
	ID              kernel.UUID
	Role            string
	Name            string
	Phone           string
	IsPhoneVerified bool
	Email           *string
	IsEmailVerified bool
	LastLoginAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsCourier reports whether the user acts in the courier role.
func (u User) IsCourier() bool {
	return u.Role == RoleCourier
}
