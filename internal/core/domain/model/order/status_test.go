package order_test

import (
	"testing"

	"veggo/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Run("accepts_all_lifecycle_statuses", func(t *testing.T) {
		for _, s := range []string{
			"pending", "confirmed", "assigned", "picked_up", "in_transit", "delivered", "cancelled",
		} {
			status, err := order.ParseStatus(s)
			require.NoError(t, err, s)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		for _, s := range []string{"", "Pending", "shipped", "in transit"} {
			_, err := order.ParseStatus(s)
			require.Error(t, err, s)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.InTransit.IsTerminal())
}

func TestStatus_IsCancellable(t *testing.T) {
	assert.True(t, order.Pending.IsCancellable())
	assert.True(t, order.Confirmed.IsCancellable())
	assert.False(t, order.Assigned.IsCancellable())
	assert.False(t, order.Delivered.IsCancellable())
	assert.False(t, order.Cancelled.IsCancellable())
}

func TestStatus_ValidateChangeTo(t *testing.T) {
	t.Run("forward_transitions_allowed", func(t *testing.T) {
		require.NoError(t, order.Pending.ValidateChangeTo(order.Confirmed))
		require.NoError(t, order.Assigned.ValidateChangeTo(order.PickedUp))
		require.NoError(t, order.PickedUp.ValidateChangeTo(order.InTransit))
		require.NoError(t, order.InTransit.ValidateChangeTo(order.Delivered))
	})

	t.Run("terminal_statuses_cannot_change", func(t *testing.T) {
		require.Error(t, order.Delivered.ValidateChangeTo(order.Confirmed))
		require.Error(t, order.Cancelled.ValidateChangeTo(order.Confirmed))
	})

	t.Run("no_return_to_pending", func(t *testing.T) {
		require.Error(t, order.Confirmed.ValidateChangeTo(order.Pending))
	})

	t.Run("cancelled_is_not_a_status_update", func(t *testing.T) {
		require.Error(t, order.Pending.ValidateChangeTo(order.Cancelled))
	})

	t.Run("invalid_target_rejected", func(t *testing.T) {
		require.Error(t, order.Pending.ValidateChangeTo(order.Status("lost")))
	})
}

func TestStatus_ValidateAssign(t *testing.T) {
	require.NoError(t, order.Pending.ValidateAssign())
	require.NoError(t, order.Confirmed.ValidateAssign())
	require.NoError(t, order.Assigned.ValidateAssign()) // reassignment
	require.Error(t, order.InTransit.ValidateAssign())
	require.Error(t, order.Delivered.ValidateAssign())
	require.Error(t, order.Cancelled.ValidateAssign())
}
