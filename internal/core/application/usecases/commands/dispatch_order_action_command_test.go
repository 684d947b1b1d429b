package commands_test

import (
	"testing"

	"courierapp/internal/core/application/usecases/commands"
	"courierapp/internal/core/domain/model/kernel"
	"courierapp/internal/core/domain/services"
	"courierapp/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDispatchOrderActionCommand_ValidInput(t *testing.T) {
	// Arrange
	orderID := kernel.NewUUID()
	courierID := kernel.NewUUID()

	// Act
	cmd, err := commands.NewDispatchOrderActionCommand(
		orderID, services.ActionCancel, courierID, true, "клиент не отвечает")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, services.ActionCancel, cmd.ActionKey())
	assert.Equal(t, courierID, cmd.CourierID())
	assert.True(t, cmd.Confirmed())
	assert.Equal(t, "клиент не отвечает", cmd.Reason())
	assert.NoError(t, cmd.Validate())
}

func TestNewDispatchOrderActionCommand_InvalidInput(t *testing.T) {
	validID := kernel.NewUUID()

	testCases := []struct {
		name      string
		orderID   kernel.UUID
		actionKey string
		courierID kernel.UUID
	}{
		{"zero order id", kernel.UUID{}, services.ActionAccept, validID},
		{"empty action key", validID, "", validID},
		{"zero courier id", validID, services.ActionAccept, kernel.UUID{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewDispatchOrderActionCommand(
				tc.orderID, tc.actionKey, tc.courierID, false, "")

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		})
	}
}

func TestDispatchOrderActionCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.DispatchOrderActionCommand{}

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDispatchOrderActionCommandIsNotConstructed)
}
