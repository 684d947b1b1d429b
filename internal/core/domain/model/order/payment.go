package order

import (
	"time"

	"courierapp/internal/core/domain/model/kernel"
)

// Payment is a read-only payment record attached to an order. Payment
// processing happens entirely in the backend; the client only displays the
// history on the detail screen.
type Payment struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	Amount    kernel.Money
	Status    string
	Method    string
	CreatedAt time.Time
}
