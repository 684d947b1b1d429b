package services_test

import (
	"fmt"
	"testing"

	"courierapp/internal/core/domain/model/kernel"
	"courierapp/internal/core/domain/model/order"
	"courierapp/internal/core/domain/model/user"
	"courierapp/internal/core/domain/services"
	"courierapp/internal/pkg/errs"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderWith(status order.Status, courierID *kernel.UUID) *order.Order {
	o := &order.Order{
		ID:     kernel.NewUUID(),
		Status: status,
	}
	if courierID != nil {
		o.Courier = &user.User{ID: *courierID, Role: user.RoleCourier}
	}
	return o
}

func actionKeys(actions []services.Action) []string {
	return lo.Map(actions, func(a services.Action, _ int) string { return a.Key })
}

func TestActionPolicy_ActionsFor(t *testing.T) {
	policy := services.NewActionPolicy()
	viewer := kernel.NewUUID()
	other := kernel.NewUUID()

	t.Run("should offer accept then cancel for new orders to any courier", func(t *testing.T) {
		actions, err := policy.ActionsFor(orderWith(order.StatusNew, nil), &viewer)

		require.NoError(t, err)
		assert.Equal(t, []string{services.ActionAccept, services.ActionCancel}, actionKeys(actions))
	})

	t.Run("should offer only cancel for paid orders", func(t *testing.T) {
		actions, err := policy.ActionsFor(orderWith(order.StatusPaid, nil), &viewer)

		require.NoError(t, err)
		assert.Equal(t, []string{services.ActionCancel}, actionKeys(actions))
	})

	t.Run("should offer start then cancel to the assigned courier", func(t *testing.T) {
		actions, err := policy.ActionsFor(orderWith(order.StatusAssigned, &viewer), &viewer)

		require.NoError(t, err)
		assert.Equal(t, []string{services.ActionStart, services.ActionCancel}, actionKeys(actions))
	})

	t.Run("should offer only cancel on assigned orders to other couriers", func(t *testing.T) {
		actions, err := policy.ActionsFor(orderWith(order.StatusAssigned, &other), &viewer)

		require.NoError(t, err)
		assert.Equal(t, []string{services.ActionCancel}, actionKeys(actions))
	})

	t.Run("should offer complete then cancel to the assigned courier in progress", func(t *testing.T) {
		actions, err := policy.ActionsFor(orderWith(order.StatusInProgress, &viewer), &viewer)

		require.NoError(t, err)
		assert.Equal(t, []string{services.ActionComplete, services.ActionCancel}, actionKeys(actions))
	})

	t.Run("should not offer complete to other couriers in progress", func(t *testing.T) {
		actions, err := policy.ActionsFor(orderWith(order.StatusInProgress, &other), &viewer)

		require.NoError(t, err)
		assert.Equal(t, []string{services.ActionCancel}, actionKeys(actions))
	})

	t.Run("should offer no actions for terminal statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.StatusDone, order.StatusCanceled} {
			t.Run(string(status), func(t *testing.T) {
				actions, err := policy.ActionsFor(orderWith(status, &viewer), &viewer)

				require.NoError(t, err)
				assert.Empty(t, actions)
			})
		}
	})

	t.Run("should list cancel exactly once and last for non terminal statuses", func(t *testing.T) {
		for _, status := range []order.Status{
			order.StatusNew, order.StatusPaid, order.StatusAssigned, order.StatusInProgress,
		} {
			t.Run(string(status), func(t *testing.T) {
				actions, err := policy.ActionsFor(orderWith(status, &viewer), &viewer)
				require.NoError(t, err)

				keys := actionKeys(actions)
				assert.Equal(t, 1, lo.Count(keys, services.ActionCancel))
				assert.Equal(t, services.ActionCancel, keys[len(keys)-1])
			})
		}
	})

	t.Run("should withhold role gated actions from anonymous viewers", func(t *testing.T) {
		actions, err := policy.ActionsFor(orderWith(order.StatusAssigned, &other), nil)
		require.NoError(t, err)
		assert.Equal(t, []string{services.ActionCancel}, actionKeys(actions))

		actions, err = policy.ActionsFor(orderWith(order.StatusNew, nil), nil)
		require.NoError(t, err)
		assert.Equal(t, []string{services.ActionAccept, services.ActionCancel}, actionKeys(actions))
	})

	t.Run("should fail with InvalidState for unknown statuses", func(t *testing.T) {
		actions, err := policy.ActionsFor(orderWith(order.Status("refunded"), nil), &viewer)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Empty(t, actions)
	})
}

func TestActionPolicy_ActionMetadata(t *testing.T) {
	policy := services.NewActionPolicy()

	t.Run("should map actions to their target statuses", func(t *testing.T) {
		testCases := []struct {
			key    string
			target order.Status
		}{
			{services.ActionAccept, order.StatusAssigned},
			{services.ActionStart, order.StatusInProgress},
			{services.ActionComplete, order.StatusDone},
			{services.ActionCancel, order.StatusCanceled},
		}

		for _, tc := range testCases {
			t.Run(tc.key, func(t *testing.T) {
				action, ok := policy.Lookup(tc.key)
				require.True(t, ok)
				assert.Equal(t, tc.target, action.TargetStatus)
			})
		}
	})

	t.Run("should require confirmation only for cancel", func(t *testing.T) {
		for _, key := range []string{services.ActionAccept, services.ActionStart, services.ActionComplete} {
			action, ok := policy.Lookup(key)
			require.True(t, ok)
			assert.False(t, action.ConfirmRequired, "action %s", key)
			assert.Equal(t, services.ActionKindPrimary, action.Kind)
		}

		cancel, ok := policy.Lookup(services.ActionCancel)
		require.True(t, ok)
		assert.True(t, cancel.ConfirmRequired)
		assert.Equal(t, services.ActionKindDestructive, cancel.Kind)
	})

	t.Run("should hint confirmation for start and complete", func(t *testing.T) {
		for _, key := range []string{services.ActionStart, services.ActionComplete} {
			action, _ := policy.Lookup(key)
			assert.True(t, action.ConfirmHint, "action %s", key)
		}
	})

	t.Run("should not resolve unknown keys", func(t *testing.T) {
		_, ok := policy.Lookup("reassign")
		assert.False(t, ok)
	})
}

func TestActionPolicy_IsAllowed(t *testing.T) {
	policy := services.NewActionPolicy()
	viewer := kernel.NewUUID()
	other := kernel.NewUUID()

	testCases := []struct {
		name    string
		order   *order.Order
		key     string
		allowed bool
	}{
		{"accept allowed on new", orderWith(order.StatusNew, nil), services.ActionAccept, true},
		{"start denied on new", orderWith(order.StatusNew, nil), services.ActionStart, false},
		{"start allowed for assigned courier", orderWith(order.StatusAssigned, &viewer), services.ActionStart, true},
		{"start denied for other courier", orderWith(order.StatusAssigned, &other), services.ActionStart, false},
		{"cancel denied on done", orderWith(order.StatusDone, &viewer), services.ActionCancel, false},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("should report %s", tc.name), func(t *testing.T) {
			allowed, err := policy.IsAllowed(tc.order, &viewer, tc.key)
			require.NoError(t, err)
			assert.Equal(t, tc.allowed, allowed)
		})
	}

	t.Run("should propagate InvalidState", func(t *testing.T) {
		_, err := policy.IsAllowed(orderWith(order.Status("weird"), nil), &viewer, services.ActionAccept)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}
