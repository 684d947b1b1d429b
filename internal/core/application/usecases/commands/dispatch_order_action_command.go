package commands

import (
	"errors"

	"courierapp/internal/core/domain/model/kernel"
	"courierapp/internal/pkg/errs"
	"courierapp/internal/pkg/guard"
)

var ErrDispatchOrderActionCommandIsNotConstructed = errors.New(
	"DispatchOrderActionCommand must be created via NewDispatchOrderActionCommand constructor",
)

// DispatchOrderActionCommand requests one status mutation on one order: an
// action key from the shared catalog (accept, start, complete, cancel), the
// acting courier, and the confirmation flag for destructive actions.
//
// Confirmed carries the user's answer to the confirmation dialog. For actions
// that require confirmation the handler refuses to proceed while Confirmed is
// false; declining therefore performs no request and leaves all state
// untouched.
//
// Example:
//
//	cmd, err := NewDispatchOrderActionCommand(orderID, services.ActionCancel, courierID, true, "")
//	if err != nil {
//	    return err
//	}
//	updated, err := handler.Handle(ctx, cmd)
type DispatchOrderActionCommand struct {
	orderID   kernel.UUID
	actionKey string
	courierID kernel.UUID
	confirmed bool
	reason    string

	guard guard.ConstructorGuard
}

// NewDispatchOrderActionCommand creates a validated dispatch command.
// reason is free text attached to cancellations and ignored for other
// actions; empty means the default cancellation reason.
func NewDispatchOrderActionCommand(
	orderID kernel.UUID,
	actionKey string,
	courierID kernel.UUID,
	confirmed bool,
	reason string,
) (DispatchOrderActionCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DispatchOrderActionCommand{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	if actionKey == "" {
		return DispatchOrderActionCommand{}, errs.NewValueIsRequiredError("actionKey")
	}
	if err := courierID.Validate(); err != nil {
		return DispatchOrderActionCommand{}, errs.NewValueIsRequiredErrorWithCause("courierID", err)
	}

	return DispatchOrderActionCommand{
		orderID:   orderID,
		actionKey: actionKey,
		courierID: courierID,
		confirmed: confirmed,
		reason:    reason,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the target order's identifier.
func (c DispatchOrderActionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActionKey returns the requested action key.
func (c DispatchOrderActionCommand) ActionKey() string {
	return c.actionKey
}

// CourierID returns the acting courier's identifier.
func (c DispatchOrderActionCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Confirmed reports whether the user confirmed the action.
func (c DispatchOrderActionCommand) Confirmed() bool {
	return c.confirmed
}

// Reason returns the free-text cancellation reason, possibly empty.
func (c DispatchOrderActionCommand) Reason() string {
	return c.reason
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchOrderActionCommandIsNotConstructed if validation fails.
func (c DispatchOrderActionCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrderActionCommandIsNotConstructed)
}
