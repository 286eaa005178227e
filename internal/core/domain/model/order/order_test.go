package order_test

import (
	"testing"
	"time"

	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/core/domain/model/order"
	"bitebox/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLineItem(t *testing.T, name string, quantity int, lineTotal float64) order.LineItem {
	t.Helper()
	li, err := order.NewLineItem(name, quantity, lineTotal)
	require.NoError(t, err)
	return li
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"La Trattoria",
		[]order.LineItem{
			mustLineItem(t, "pencil", 2, 6),
			mustLineItem(t, "eraser", 1, 1),
		},
	)
	require.NoError(t, err)
	return o
}

func advanceTo(t *testing.T, o *order.Order, target order.Status) {
	t.Helper()
	if target == order.Created {
		return
	}
	require.NoError(t, o.Send())
	if target == order.Sent {
		return
	}
	require.NoError(t, o.Accept(kernel.NewUUID()))
	for o.Status() != target {
		_, err := o.AdvanceToNext()
		require.NoError(t, err)
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("creates order in Created status with derived total", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, order.Created, o.Status())
		assert.Nil(t, o.Courier())
		assert.Equal(t, "La Trattoria", o.RestaurantName())
		assert.InDelta(t, 7.0, o.Total(), 0.0001)
		assert.Len(t, o.LineItems(), 2)
		assert.False(t, o.IsDeleted())
		assert.WithinDuration(t, time.Now().UTC(), o.CreatedAt(), time.Minute)
	})

	t.Run("rejects empty line items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "La Trattoria", nil)

		require.ErrorIs(t, err, order.ErrNoLineItems)
	})

	t.Run("rejects missing restaurant reference", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "", []order.LineItem{
			mustLineItem(t, "pencil", 1, 3),
		})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value order is not constructed", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_TotalInvariant(t *testing.T) {
	t.Run("total tracks line items through amendments", func(t *testing.T) {
		o := newTestOrder(t)
		require.InDelta(t, 7.0, o.Total(), 0.0001)

		err := o.Amend("La Trattoria", []order.LineItem{
			mustLineItem(t, "pencil", 3, 9),
		})
		require.NoError(t, err)

		sum := 0.0
		for _, li := range o.LineItems() {
			sum += li.LineTotal()
		}
		assert.InDelta(t, sum, o.Total(), 0.0001)
		assert.InDelta(t, 9.0, o.Total(), 0.0001)
	})
}

func TestOrder_Send(t *testing.T) {
	t.Run("moves Created to Sent", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Send())
		assert.Equal(t, order.Sent, o.Status())
	})

	t.Run("rejects double send", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Send())

		err := o.Send()
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestOrder_Accept(t *testing.T) {
	t.Run("assigns courier and moves to Accepted", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Send())

		courierID := kernel.NewUUID()
		require.NoError(t, o.Accept(courierID))

		assert.Equal(t, order.Accepted, o.Status())
		require.NotNil(t, o.Courier())
		assert.True(t, courierID.IsEqual(*o.Courier()))
	})

	t.Run("rejects acceptance before send", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Accept(kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Nil(t, o.Courier())
	})

	t.Run("rejects invalid courier id", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Send())

		var zero kernel.UUID
		require.Error(t, o.Accept(zero))
	})
}

func TestOrder_AdvanceToNext(t *testing.T) {
	t.Run("walks Accepted through Finished in order", func(t *testing.T) {
		o := newTestOrder(t)
		advanceTo(t, o, order.Accepted)

		next, err := o.AdvanceToNext()
		require.NoError(t, err)
		assert.Equal(t, order.Received, next)

		next, err = o.AdvanceToNext()
		require.NoError(t, err)
		assert.Equal(t, order.Arrived, next)

		next, err = o.AdvanceToNext()
		require.NoError(t, err)
		assert.Equal(t, order.Finished, next)
	})

	t.Run("cannot bypass send or accept", func(t *testing.T) {
		created := newTestOrder(t)
		_, err := created.AdvanceToNext()
		require.ErrorIs(t, err, order.ErrStageRequiresDedicatedAction)

		sent := newTestOrder(t)
		require.NoError(t, sent.Send())
		_, err = sent.AdvanceToNext()
		require.ErrorIs(t, err, order.ErrStageRequiresDedicatedAction)
	})

	t.Run("finished orders reject every further transition", func(t *testing.T) {
		o := newTestOrder(t)
		advanceTo(t, o, order.Finished)

		_, err := o.AdvanceToNext()
		require.ErrorIs(t, err, order.ErrAlreadyFinished)
	})
}

func TestOrder_Amend(t *testing.T) {
	t.Run("allowed only while Created", func(t *testing.T) {
		o := newTestOrder(t)
		advanceTo(t, o, order.Sent)

		err := o.Amend("Other Place", []order.LineItem{mustLineItem(t, "soup", 1, 4)})
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, "La Trattoria", o.RestaurantName())
	})
}

func TestOrder_MarkDeleted(t *testing.T) {
	t.Run("tombstones the order", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.MarkDeleted())
		assert.True(t, o.IsDeleted())
	})

	t.Run("tombstoned orders refuse further mutation", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.MarkDeleted())

		require.ErrorIs(t, o.Send(), order.ErrOrderIsDeleted)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores a persisted order and recomputes the total", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		courierID := kernel.NewUUID()
		createdAt := time.Now().UTC().Add(-time.Hour)

		o, err := order.RestoreOrder(
			id, customerID, &courierID, "La Trattoria", order.Received,
			[]order.LineItem{mustLineItem(t, "pencil", 2, 6)},
			createdAt, false,
		)

		require.NoError(t, err)
		assert.Equal(t, order.Received, o.Status())
		assert.InDelta(t, 6.0, o.Total(), 0.0001)
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("rejects courier on a Created order", func(t *testing.T) {
		courierID := kernel.NewUUID()

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), &courierID, "La Trattoria", order.Created,
			[]order.LineItem{mustLineItem(t, "pencil", 2, 6)},
			time.Now().UTC(), false,
		)

		require.Error(t, err)
	})

	t.Run("rejects missing courier on an Accepted order", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), nil, "La Trattoria", order.Accepted,
			[]order.LineItem{mustLineItem(t, "pencil", 2, 6)},
			time.Now().UTC(), false,
		)

		require.Error(t, err)
	})
}
