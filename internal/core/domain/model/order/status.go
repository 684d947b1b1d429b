package order

import (
	"fmt"

	"courierapp/internal/pkg/errs"
)

// Status represents the lifecycle state of an order as reported by the
// backend. The client never advances a status locally; it requests
// transitions and re-reads the backend-confirmed value.
//
// Lifecycle:
//
//	new ──> assigned ──> in_progress ──> done
//	 │          │             │
//	 └──────────┴─────────────┴──> canceled
//	paid ────────────────────────┘
//
// done and canceled are terminal: no further actions are offered.
//
// Status values carry the wire form used by the backend API. A Status may
// hold an unrecognized value when the backend introduces a state this client
// does not know; such orders render with the unknown label and offer no
// actions rather than being silently coerced to a valid-looking state.
type Status string

const (
	// StatusNew is the initial status: the order awaits a courier.
	StatusNew Status = "new"

	// StatusPaid marks a prepaid order not yet taken by a courier.
	StatusPaid Status = "paid"

	// StatusAssigned means a courier accepted the order.
	StatusAssigned Status = "assigned"

	// StatusInProgress means the assigned courier started the delivery.
	StatusInProgress Status = "in_progress"

	// StatusDone is the terminal success state.
	StatusDone Status = "done"

	// StatusCanceled is the terminal canceled state.
	StatusCanceled Status = "canceled"
)

// validStatuses is the closed enumeration; remember to extend Label and
// Color when adding a status here.
var validStatuses = map[Status]struct{}{
	StatusNew:        {},
	StatusPaid:       {},
	StatusAssigned:   {},
	StatusInProgress: {},
	StatusDone:       {},
	StatusCanceled:   {},
}

// statusLabels maps statuses to the display text shown on order cards and
// the detail header.
var statusLabels = map[Status]string{
	StatusNew:        "Новый",
	StatusPaid:       "Оплачен",
	StatusAssigned:   "Назначен",
	StatusInProgress: "В работе",
	StatusDone:       "Завершен",
	StatusCanceled:   "Отменен",
}

// statusColors maps statuses to the badge colors used by the rendering layer.
var statusColors = map[Status]string{
	StatusNew:        "#4CAF50",
	StatusPaid:       "#2196F3",
	StatusAssigned:   "#FF9800",
	StatusInProgress: "#9C27B0",
	StatusDone:       "#9E9E9E",
	StatusCanceled:   "#F44336",
}

const (
	unknownStatusLabel = "Неизвестно"
	unknownStatusColor = "#9E9E9E"
)

// ParseStatus converts a wire value into a Status.
// Unrecognized values fail with an InvalidStateError.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks the status against the closed enumeration.
func (s Status) Validate() error {
	if _, ok := validStatuses[s]; !ok {
		return errs.NewInvalidStateErrorWithCause(string(s),
			fmt.Errorf("%q is not a known order status", string(s)))
	}
	return nil
}

// String returns the wire form of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the order reached a final state.
// Terminal orders offer no actions.
func (s Status) IsTerminal() bool {
	return s == StatusDone || s == StatusCanceled
}

// CanCancel reports whether cancellation may be offered: any valid
// non-terminal status.
func (s Status) CanCancel() bool {
	return s.Validate() == nil && !s.IsTerminal()
}

// Label returns the display text for the status, or the unknown label for
// values outside the enumeration.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return unknownStatusLabel
}

// Color returns the badge color for the status, or the neutral grey for
// values outside the enumeration.
func (s Status) Color() string {
	if color, ok := statusColors[s]; ok {
		return color
	}
	return unknownStatusColor
}

// Statuses returns the closed enumeration in lifecycle order.
func Statuses() []Status {
	return []Status{StatusNew, StatusPaid, StatusAssigned, StatusInProgress, StatusDone, StatusCanceled}
}
