//go:build unit

package order_test

import (
	"testing"

	"github.com/philmade/gather-shop/internal/domain/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shopAddress = "bitcoincash:qr2z7dusk64k7sx0gq5xdexp3lmqnkpmc5nq0pyar"

func newProductOrder() *order.Order {
	return order.NewProductOrder(
		"t-shirt",
		map[string]string{"size": "m", "color": "white"},
		order.ShippingAddress{FirstName: "Alice", LastName: "Smith", AddressLine1: "123 Main St", City: "Portland", PostCode: "97201", Country: "US", Email: "alice@example.com"},
		decimal.RequireFromString("0.023150"),
		shopAddress,
		"https://placehold.co/4000x5000/png",
		"gelato-uid-1",
	)
}

func TestOrderLifecycle(t *testing.T) {
	t.Run("new orders await payment", func(t *testing.T) {
		o := newProductOrder()
		assert.Equal(t, order.StatusAwaitingPayment, o.Status())
		assert.False(t, o.Paid())
		assert.Nil(t, o.TxID())
	})

	t.Run("mark paid sets tx id once", func(t *testing.T) {
		o := newProductOrder()
		require.NoError(t, o.MarkPaid("aa11"))
		assert.Equal(t, order.StatusConfirmed, o.Status())
		assert.True(t, o.Paid())
		require.NotNil(t, o.TxID())
		assert.Equal(t, "aa11", *o.TxID())

		assert.ErrorIs(t, o.MarkPaid("bb22"), order.ErrAlreadyPaid)
		assert.Equal(t, "aa11", *o.TxID())
	})

	t.Run("fulfillment requires payment", func(t *testing.T) {
		o := newProductOrder()
		assert.ErrorIs(t, o.RecordFulfillment("gel-1"), order.ErrNotPaid)

		require.NoError(t, o.MarkPaid("aa11"))
		require.NoError(t, o.RecordFulfillment("gel-1"))
		assert.Equal(t, order.StatusFulfilling, o.Status())
		require.NotNil(t, o.GelatoOrderID())
		assert.Equal(t, "gel-1", *o.GelatoOrderID())
	})

	t.Run("shipped requires fulfillment reference", func(t *testing.T) {
		o := newProductOrder()
		require.NoError(t, o.MarkPaid("aa11"))
		assert.ErrorIs(t, o.MarkShipped("https://track"), order.ErrNotFulfilled)

		require.NoError(t, o.RecordFulfillment("gel-1"))
		require.NoError(t, o.MarkShipped("https://track"))
		assert.Equal(t, order.StatusShipped, o.Status())
	})

	t.Run("cake orders carry selections and stop at confirmed", func(t *testing.T) {
		o := order.NewCakeOrder("chocolate", "medium", []string{"sprinkles"}, "Happy Birthday!", decimal.RequireFromString("0.016"), shopAddress)
		assert.Equal(t, order.TypeCake, o.OrderType())
		require.NoError(t, o.MarkPaid("aa11"))
		assert.Equal(t, order.StatusConfirmed, o.Status())
	})

	t.Run("id is assigned exactly once", func(t *testing.T) {
		o := newProductOrder()
		require.NoError(t, o.AssignID("ORD-AAAAAA"))
		assert.Error(t, o.AssignID("ORD-BBBBBB"))
		assert.Equal(t, "ORD-AAAAAA", o.ID())
	})

	t.Run("clone is independent of the original", func(t *testing.T) {
		o := newProductOrder()
		require.NoError(t, o.AssignID("ORD-AAAAAA"))
		cp := o.Clone()

		require.NoError(t, o.MarkPaid("aa11"))
		assert.False(t, cp.Paid())
		cp.ProductOptions()["size"] = "xl"
		assert.Equal(t, "m", o.ProductOptions()["size"])
	})
}
