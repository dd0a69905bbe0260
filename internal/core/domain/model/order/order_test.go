package order_test

import (
	"regexp"
	"testing"
	"time"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/domain/model/order"
	"veggo/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, qty float64, unit product.UnitKind, price float64) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Tomato", qty, unit, price)
	require.NoError(t, err)
	return item
}

func mustDestination(t *testing.T) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(28.7041, 77.1025)
	require.NoError(t, err)
	return p
}

func newTestOrder(t *testing.T, createdAt time.Time) *order.Order {
	t.Helper()
	items := []order.Item{
		mustItem(t, 2, product.UnitKg, 40),
		mustItem(t, 3, product.UnitPiece, 5),
	}
	o, err := order.NewOrder(
		kernel.NewUUID(), order.GenerateNumber(createdAt), kernel.NewUUID(),
		items, "12 Market Road", mustDestination(t), "+911234567890", "",
		3.2, 82.0, createdAt,
	)
	require.NoError(t, err)
	return o
}

func TestNewItem(t *testing.T) {
	t.Run("total_is_quantity_times_price", func(t *testing.T) {
		item := mustItem(t, 2.5, product.UnitKg, 40)
		assert.Equal(t, 100.0, item.Total())
	})

	t.Run("piece_quantity_must_be_whole", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "Cabbage", 1.5, product.UnitPiece, 10)
		require.Error(t, err)
	})

	t.Run("unit_both_rejected", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "Cabbage", 1, product.UnitBoth, 10)
		require.Error(t, err)
	})

	t.Run("zero_quantity_rejected", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "Cabbage", 0, product.UnitKg, 10)
		require.Error(t, err)
	})

	t.Run("restore_keeps_frozen_total", func(t *testing.T) {
		item, err := order.RestoreItem(kernel.NewUUID(), "Tomato", 2, product.UnitKg, 40, 79.99)
		require.NoError(t, err)
		assert.Equal(t, 79.99, item.Total())
	})
}

func TestGenerateNumber(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	number := order.GenerateNumber(now)

	assert.Regexp(t, regexp.MustCompile(`^VG20260314\d{6}$`), number)
}

func TestNewOrder_Totals(t *testing.T) {
	// Worked example: 2 Kg at 40 plus 3 pieces at 5 gives a 95.00 subtotal;
	// a 3.2 km trip against {base 50, per_km 10} gives an 82.00 fee.
	o := newTestOrder(t, time.Now().UTC())

	assert.Equal(t, 95.0, o.Subtotal())
	assert.Equal(t, 82.0, o.DeliveryFee())
	assert.Equal(t, 177.0, o.FinalPrice())
	assert.Equal(t, 3.2, o.DistanceKm())
	assert.Equal(t, order.Pending, o.Status())
	assert.Nil(t, o.Agent())
}

func TestNewOrder_FinalIsSumOfRoundedParts(t *testing.T) {
	items := []order.Item{mustItem(t, 2, product.UnitKg, 33.333)} // 66.666 raw
	o, err := order.NewOrder(
		kernel.NewUUID(), order.GenerateNumber(time.Now()), kernel.NewUUID(),
		items, "12 Market Road", mustDestination(t), "+911234567890", "",
		2.004, 70.046, time.Now().UTC(),
	)
	require.NoError(t, err)

	// Subtotal and fee are rounded independently; final is their exact sum.
	assert.Equal(t, 66.67, o.Subtotal())
	assert.Equal(t, 70.05, o.DeliveryFee())
	assert.Equal(t, o.Subtotal()+o.DeliveryFee(), o.FinalPrice())
	assert.Equal(t, 2.0, o.DistanceKm())
}

func TestNewOrder_Validation(t *testing.T) {
	t.Run("requires_items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "VG20260101000001", kernel.NewUUID(),
			nil, "addr", mustDestination(t), "123", "", 1, 10, time.Now().UTC(),
		)
		require.Error(t, err)
	})

	t.Run("requires_address_and_phone", func(t *testing.T) {
		items := []order.Item{mustItem(t, 1, product.UnitKg, 10)}
		_, err := order.NewOrder(
			kernel.NewUUID(), "VG20260101000001", kernel.NewUUID(),
			items, "", mustDestination(t), "123", "", 1, 10, time.Now().UTC(),
		)
		require.Error(t, err)

		_, err = order.NewOrder(
			kernel.NewUUID(), "VG20260101000001", kernel.NewUUID(),
			items, "addr", mustDestination(t), "", "", 1, 10, time.Now().UTC(),
		)
		require.Error(t, err)
	})
}

func TestOrder_CanCancel(t *testing.T) {
	window := 5 * time.Minute
	created := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	o := newTestOrder(t, created)

	t.Run("true_just_before_window_elapses", func(t *testing.T) {
		assert.True(t, o.CanCancel(window, created.Add(window-time.Second)))
		assert.True(t, o.CanCancel(window, created.Add(window)))
	})

	t.Run("false_once_window_elapsed", func(t *testing.T) {
		assert.False(t, o.CanCancel(window, created.Add(window+time.Second)))
	})

	t.Run("false_in_non_cancellable_status", func(t *testing.T) {
		assigned := newTestOrder(t, created)
		require.NoError(t, assigned.Assign(kernel.NewUUID(), created.Add(time.Minute)))
		assert.False(t, assigned.CanCancel(window, created.Add(time.Minute)))
	})
}

func TestOrder_Cancel(t *testing.T) {
	window := 5 * time.Minute
	created := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("cancels_within_window", func(t *testing.T) {
		o := newTestOrder(t, created)
		at := created.Add(2 * time.Minute)

		err := o.Cancel("user", window, at)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
		require.NotNil(t, o.CancelledAt())
		assert.Equal(t, at, *o.CancelledAt())
		assert.Equal(t, "user", o.CancelledBy())
	})

	t.Run("rejects_after_window", func(t *testing.T) {
		o := newTestOrder(t, created)

		err := o.Cancel("user", window, created.Add(6*time.Minute))

		require.ErrorIs(t, err, order.ErrCancelWindowElapsed)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("rejects_non_cancellable_status", func(t *testing.T) {
		o := newTestOrder(t, created)
		require.NoError(t, o.Assign(kernel.NewUUID(), created))

		err := o.Cancel("user", window, created.Add(time.Minute))

		require.ErrorIs(t, err, order.ErrNotCancellable)
	})
}

func TestOrder_Assign(t *testing.T) {
	created := time.Now().UTC()

	t.Run("assigns_agent_and_moves_to_assigned", func(t *testing.T) {
		o := newTestOrder(t, created)
		agentID := kernel.NewUUID()

		require.NoError(t, o.Assign(agentID, created.Add(time.Minute)))

		assert.Equal(t, order.Assigned, o.Status())
		require.NotNil(t, o.Agent())
		assert.True(t, o.Agent().IsEqual(agentID))
		assert.True(t, o.IsAssignedTo(agentID))
		assert.False(t, o.IsAssignedTo(kernel.NewUUID()))
	})

	t.Run("reassignment_allowed", func(t *testing.T) {
		o := newTestOrder(t, created)
		require.NoError(t, o.Assign(kernel.NewUUID(), created))

		other := kernel.NewUUID()
		require.NoError(t, o.Assign(other, created))
		assert.True(t, o.IsAssignedTo(other))
	})

	t.Run("rejects_once_in_transit", func(t *testing.T) {
		o := newTestOrder(t, created)
		require.NoError(t, o.Assign(kernel.NewUUID(), created))
		require.NoError(t, o.ChangeStatus(order.PickedUp, created))

		require.Error(t, o.Assign(kernel.NewUUID(), created))
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	created := time.Now().UTC()
	o := newTestOrder(t, created)

	require.NoError(t, o.ChangeStatus(order.Confirmed, created.Add(time.Minute)))
	assert.Equal(t, order.Confirmed, o.Status())
	assert.Equal(t, created.Add(time.Minute), o.UpdatedAt())

	require.Error(t, o.ChangeStatus(order.Cancelled, created))
	require.Error(t, o.ChangeStatus(order.Pending, created))
}

func TestRestoreOrder(t *testing.T) {
	created := time.Now().UTC()
	o := newTestOrder(t, created)

	restored, err := order.RestoreOrder(
		o.ID(), o.Number(), o.UserID(), o.Items(),
		o.Subtotal(), o.DeliveryFee(), o.DistanceKm(), o.FinalPrice(),
		o.Status(), o.DeliveryAddress(), o.Destination(), o.Phone(), o.Notes(),
		o.Agent(), o.CreatedAt(), o.UpdatedAt(), o.CancelledAt(), o.CancelledBy(),
	)

	require.NoError(t, err)
	assert.True(t, restored.IsEqual(o))
	assert.Equal(t, o.FinalPrice(), restored.FinalPrice())
	assert.Len(t, restored.Items(), 2)
}
