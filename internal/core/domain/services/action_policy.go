package services

import (
	"courierapp/internal/core/domain/model/kernel"
	"courierapp/internal/core/domain/model/order"
)

// ActionKind tells the rendering layer how to style an action button.
type ActionKind string

const (
	// ActionKindPrimary marks the forward, status-advancing action.
	ActionKindPrimary ActionKind = "primary"

	// ActionKindDestructive marks cancellation.
	ActionKindDestructive ActionKind = "destructive"
)

// Action keys understood by the dispatcher.
const (
	ActionAccept   = "accept"
	ActionStart    = "start"
	ActionComplete = "complete"
	ActionCancel   = "cancel"
)

// Action is one permitted operation on an order for a given viewer.
//
// TargetStatus is the status the action requests from the backend.
// ConfirmRequired means the dispatcher refuses the action without an explicit
// confirmation; ConfirmHint means the rendering layer should ask before
// submitting, but the dispatcher accepts the action as-is.
type Action struct {
	Key             string
	Label           string
	Kind            ActionKind
	TargetStatus    order.Status
	ConfirmRequired bool
	ConfirmHint     bool
}

// actionCatalog is the single definition of every action's presentation and
// transition target. Button labels match the mobile app.
var actionCatalog = map[string]Action{
	ActionAccept: {
		Key:          ActionAccept,
		Label:        "Принять заказ",
		Kind:         ActionKindPrimary,
		TargetStatus: order.StatusAssigned,
	},
	ActionStart: {
		Key:          ActionStart,
		Label:        "Начать выполнение",
		Kind:         ActionKindPrimary,
		TargetStatus: order.StatusInProgress,
		ConfirmHint:  true,
	},
	ActionComplete: {
		Key:          ActionComplete,
		Label:        "Завершить заказ",
		Kind:         ActionKindPrimary,
		TargetStatus: order.StatusDone,
		ConfirmHint:  true,
	},
	ActionCancel: {
		Key:             ActionCancel,
		Label:           "Отменить",
		Kind:            ActionKindDestructive,
		TargetStatus:    order.StatusCanceled,
		ConfirmRequired: true,
	},
}

// ActionPolicy is the domain service that computes the ordered set of
// permitted actions for an order and a viewer. It is the one shared source
// both the list and detail surfaces consume, so the two can never disagree
// about which buttons an order gets.
//
// Transition table:
//
//	new          accept   (any courier)        -> assigned
//	assigned     start    (assigned courier)   -> in_progress
//	in_progress  complete (assigned courier)   -> done
//	new | paid | assigned | in_progress
//	             cancel   (anyone)             -> canceled
//	done | canceled      no actions
//
// The forward action is always listed before cancel so rendering biases
// toward it as primary. The backend remains the final authority on
// transition legality; this policy is the optimistic UI filter.
type ActionPolicy struct{}

// NewActionPolicy creates a new ActionPolicy instance.
func NewActionPolicy() ActionPolicy {
	return ActionPolicy{}
}

// ActionsFor returns the permitted actions for the order as seen by viewerID,
// forward action first, cancel last.
//
// viewerID is nil for an unauthenticated viewer: role-gated actions (start,
// complete) are withheld, role-independent ones (accept, cancel) still
// offered.
//
// An order whose status is outside the known enumeration yields an
// InvalidStateError and an empty list; callers render the unknown-status
// label and offer nothing.
func (p ActionPolicy) ActionsFor(o *order.Order, viewerID *kernel.UUID) ([]Action, error) {
	if err := o.Status.Validate(); err != nil {
		return nil, err
	}

	isAssignedCourier := viewerID != nil && o.IsAssignedTo(*viewerID)

	actions := make([]Action, 0, 2)
	switch o.Status {
	case order.StatusNew:
		actions = append(actions, actionCatalog[ActionAccept])
	case order.StatusAssigned:
		if isAssignedCourier {
			actions = append(actions, actionCatalog[ActionStart])
		}
	case order.StatusInProgress:
		if isAssignedCourier {
			actions = append(actions, actionCatalog[ActionComplete])
		}
	}

	if o.Status.CanCancel() {
		actions = append(actions, actionCatalog[ActionCancel])
	}

	return actions, nil
}

// Lookup resolves an action key against the catalog. The second return is
// false for keys the dispatcher does not understand.
func (p ActionPolicy) Lookup(key string) (Action, bool) {
	action, ok := actionCatalog[key]
	return action, ok
}

// IsAllowed reports whether the given action key is currently permitted for
// the order and viewer.
func (p ActionPolicy) IsAllowed(o *order.Order, viewerID *kernel.UUID, key string) (bool, error) {
	actions, err := p.ActionsFor(o, viewerID)
	if err != nil {
		return false, err
	}
	for _, action := range actions {
		if action.Key == key {
			return true, nil
		}
	}
	return false, nil
}
