package commands

import (
	"context"

	"courierapp/internal/core/ports"
)

// TeardownSessionCommandHandler clears all session-scoped local state.
type TeardownSessionCommandHandler struct {
	snapshots ports.SnapshotStore
}

// NewTeardownSessionCommandHandler creates a handler for session teardown.
func NewTeardownSessionCommandHandler(snapshots ports.SnapshotStore) TeardownSessionCommandHandler {
	return TeardownSessionCommandHandler{snapshots: snapshots}
}

// Handle wipes the snapshot store. In-flight mutation guards are not touched:
// their holders release them when the pending requests resolve.
func (h TeardownSessionCommandHandler) Handle(ctx context.Context, command TeardownSessionCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	h.snapshots.Clear()
	return nil
}
