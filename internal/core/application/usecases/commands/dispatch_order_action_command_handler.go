package commands

import (
	"context"
	"errors"

	"courierapp/internal/core/domain/model/order"
	"courierapp/internal/core/domain/services"
	"courierapp/internal/core/ports"
	"courierapp/internal/pkg/errs"
	"courierapp/internal/pkg/metrics"
)

var (
	// ErrUnknownAction is returned for action keys outside the shared catalog.
	ErrUnknownAction = errors.New("unknown order action")

	// ErrConfirmationRequired is returned when a destructive action is
	// dispatched without the user's explicit confirmation.
	ErrConfirmationRequired = errors.New("action requires explicit confirmation")

	// ErrMutationInFlight is returned when a status mutation for the same
	// order has not completed yet. The duplicate submission is dropped
	// without any backend request.
	ErrMutationInFlight = errors.New("status mutation for this order is already in flight")
)

// defaultCancelReason is attached to cancellations with no user-supplied
// reason. Matches the mobile app's wording.
const defaultCancelReason = "Отменен пользователем"

// DispatchOrderActionCommandHandler executes order actions against the remote
// backend. It is the single mutation path: both the list and detail surfaces
// submit their button taps here, so the guarding rules cannot drift between
// them.
//
// The dispatch sequence is: resolve the action, enforce confirmation, acquire
// the per-order mutation guard, re-check permission against a fresh snapshot,
// issue exactly one backend request, and store the backend-confirmed snapshot.
// The guard is released on every exit path.
//
// Example:
//
//	handler := NewDispatchOrderActionCommandHandler(client, store, guard, policy)
//	updated, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrMutationInFlight):
//	    // duplicate tap, ignore
//	case errors.Is(err, errs.ErrUnauthorized):
//	    // viewer is not the assigned courier
//	case err != nil:
//	    return err
//	}
type DispatchOrderActionCommandHandler struct {
	orderClient ports.OrderClient
	snapshots   ports.SnapshotStore
	mutations   MutationGuard
	policy      services.ActionPolicy
}

// NewDispatchOrderActionCommandHandler creates a handler for order action
// dispatch. Requires the backend order client, the snapshot store, the
// per-order mutation guard, and the shared action policy.
func NewDispatchOrderActionCommandHandler(
	orderClient ports.OrderClient,
	snapshots ports.SnapshotStore,
	mutations MutationGuard,
	policy services.ActionPolicy,
) DispatchOrderActionCommandHandler {
	return DispatchOrderActionCommandHandler{
		orderClient: orderClient,
		snapshots:   snapshots,
		mutations:   mutations,
		policy:      policy,
	}
}

// Handle processes the dispatch command and returns the backend-confirmed
// snapshot of the mutated order.
//
// Permission is evaluated against a freshly fetched snapshot, not the cached
// one: the backend state may have moved since the button was rendered. The
// backend remains the final authority either way; a transition it rejects
// surfaces as a RequestFailedError and local state stays untouched.
func (h DispatchOrderActionCommandHandler) Handle(
	ctx context.Context,
	command DispatchOrderActionCommand,
) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	action, ok := h.policy.Lookup(command.ActionKey())
	if !ok {
		metrics.ActionErrorsTotal.WithLabelValues(command.ActionKey(), "unknown_action").Inc()
		return nil, ErrUnknownAction
	}

	if action.ConfirmRequired && !command.Confirmed() {
		metrics.ActionErrorsTotal.WithLabelValues(action.Key, "confirmation_required").Inc()
		return nil, ErrConfirmationRequired
	}

	if !h.mutations.Acquire(command.OrderID().String()) {
		metrics.DuplicateSubmissionsTotal.Inc()
		return nil, ErrMutationInFlight
	}
	defer h.mutations.Release(command.OrderID().String())

	current, err := h.orderClient.GetOrder(ctx, command.OrderID())
	if err != nil {
		metrics.ActionErrorsTotal.WithLabelValues(action.Key, "fetch_failed").Inc()
		return nil, err
	}

	courierID := command.CourierID()
	allowed, err := h.policy.IsAllowed(current, &courierID, action.Key)
	if err != nil {
		metrics.ActionErrorsTotal.WithLabelValues(action.Key, "invalid_state").Inc()
		return nil, err
	}
	if !allowed {
		metrics.ActionErrorsTotal.WithLabelValues(action.Key, "unauthorized").Inc()
		return nil, errs.NewUnauthorizedError(action.Key)
	}

	updated, err := h.mutate(ctx, command, action)
	if err != nil {
		metrics.ActionErrorsTotal.WithLabelValues(action.Key, "backend").Inc()
		return nil, err
	}

	h.snapshots.Put(*updated)
	metrics.ActionsDispatchedTotal.WithLabelValues(action.Key).Inc()
	return updated, nil
}

// mutate issues the single backend request for the action: a cancellation for
// cancel, a status update for everything else.
func (h DispatchOrderActionCommandHandler) mutate(
	ctx context.Context,
	command DispatchOrderActionCommand,
	action services.Action,
) (*order.Order, error) {
	if action.Key == services.ActionCancel {
		reason := command.Reason()
		if reason == "" {
			reason = defaultCancelReason
		}
		return h.orderClient.Cancel(ctx, command.OrderID(), ports.Cancellation{
			CourierID: command.CourierID(),
			Reason:    reason,
		})
	}

	courierID := command.CourierID()
	return h.orderClient.UpdateStatus(ctx, command.OrderID(), ports.StatusUpdate{
		Status:    action.TargetStatus,
		CourierID: &courierID,
	})
}
