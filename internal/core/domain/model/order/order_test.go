package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLineItem(t *testing.T, productID kernel.UUID, quantity int) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(productID, quantity)
	require.NoError(t, err)
	return item
}

func TestNewOrder(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()
		items := []order.LineItem{mustLineItem(t, kernel.NewUUID(), 2)}

		o, err := order.NewOrder(id, "Moscow, Arbat 1", items)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, "Moscow, Arbat 1", o.DeliveryAddress())
		assert.Equal(t, order.Created, o.Status())
		assert.Nil(t, o.Restaurant())
		assert.Len(t, o.Items(), 1)
	})

	t.Run("empty address rejected", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, kernel.NewUUID(), 1)}

		_, err := order.NewOrder(kernel.NewUUID(), "", items)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("no items rejected", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "Moscow, Arbat 1", nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value item rejected", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "Moscow, Arbat 1", []order.LineItem{{}})

		require.Error(t, err)
	})
}

func TestNewLineItem(t *testing.T) {
	t.Run("quantity below one rejected", func(t *testing.T) {
		_, err := order.NewLineItem(kernel.NewUUID(), 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid product rejected", func(t *testing.T) {
		var productID kernel.UUID
		_, err := order.NewLineItem(productID, 1)
		require.Error(t, err)
	})
}

func TestOrder_ProductIDs_Distinct(t *testing.T) {
	first := kernel.NewUUID()
	second := kernel.NewUUID()
	items := []order.LineItem{
		mustLineItem(t, first, 1),
		mustLineItem(t, second, 3),
		mustLineItem(t, first, 2), // same product twice
	}

	o, err := order.NewOrder(kernel.NewUUID(), "Moscow, Arbat 1", items)
	require.NoError(t, err)

	ids := o.ProductIDs()
	require.Len(t, ids, 2)
	assert.True(t, ids[0].IsEqual(first))
	assert.True(t, ids[1].IsEqual(second))
}

func TestOrder_Lifecycle(t *testing.T) {
	newCreatedOrder := func(t *testing.T) *order.Order {
		t.Helper()
		items := []order.LineItem{mustLineItem(t, kernel.NewUUID(), 1)}
		o, err := order.NewOrder(kernel.NewUUID(), "Moscow, Arbat 1", items)
		require.NoError(t, err)
		return o
	}

	t.Run("full lifecycle", func(t *testing.T) {
		o := newCreatedOrder(t)
		restaurantID := kernel.NewUUID()

		require.NoError(t, o.AssignRestaurant(restaurantID))
		assert.Equal(t, order.Assembling, o.Status())
		require.NotNil(t, o.Restaurant())
		assert.True(t, o.Restaurant().IsEqual(restaurantID))

		require.NoError(t, o.StartDelivery())
		assert.Equal(t, order.Delivering, o.Status())

		require.NoError(t, o.Complete())
		assert.Equal(t, order.Done, o.Status())
	})

	t.Run("cannot reassign after assembling started", func(t *testing.T) {
		o := newCreatedOrder(t)
		require.NoError(t, o.AssignRestaurant(kernel.NewUUID()))

		err := o.AssignRestaurant(kernel.NewUUID())
		require.Error(t, err)
	})

	t.Run("cannot deliver unassigned order", func(t *testing.T) {
		o := newCreatedOrder(t)

		require.Error(t, o.StartDelivery())
		require.Error(t, o.Complete())
	})

	t.Run("invalid restaurant id rejected", func(t *testing.T) {
		o := newCreatedOrder(t)
		var invalid kernel.UUID

		err := o.AssignRestaurant(invalid)
		require.Error(t, err)
		assert.Equal(t, order.Created, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	items := []order.LineItem{mustLineItem(t, kernel.NewUUID(), 1)}

	t.Run("restores assigned order", func(t *testing.T) {
		restaurantID := kernel.NewUUID()

		o, err := order.RestoreOrder(
			kernel.NewUUID(), "Moscow, Arbat 1", order.Delivering, &restaurantID, items)

		require.NoError(t, err)
		assert.Equal(t, order.Delivering, o.Status())
		assert.True(t, o.Restaurant().IsEqual(restaurantID))
	})

	t.Run("rejects created order with restaurant", func(t *testing.T) {
		restaurantID := kernel.NewUUID()

		_, err := order.RestoreOrder(
			kernel.NewUUID(), "Moscow, Arbat 1", order.Created, &restaurantID, items)

		require.Error(t, err)
	})

	t.Run("rejects assembling order without restaurant", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "Moscow, Arbat 1", order.Assembling, nil, items)

		require.Error(t, err)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "Moscow, Arbat 1", order.Unknown, nil, items)

		require.Error(t, err)
	})
}

func TestOrder_Validate_NotConstructed(t *testing.T) {
	var o order.Order

	err := o.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
}
