package commands_test

import (
	"testing"

	"courierapp/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/require"
)

func TestTeardownSessionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewTeardownSessionCommand()

	store := new(MockDispatchSnapshotStore)
	store.On("Clear").Once()

	handler := commands.NewTeardownSessionCommandHandler(store)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestTeardownSessionCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.TeardownSessionCommand{} // not constructed properly

	store := new(MockDispatchSnapshotStore)

	handler := commands.NewTeardownSessionCommandHandler(store)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrTeardownSessionCommandIsNotConstructed)
	store.AssertNotCalled(t, "Clear")
}
