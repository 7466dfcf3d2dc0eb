package cart_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCart(t *testing.T) *cart.Cart {
	t.Helper()

	c, err := cart.NewCart(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	return c
}

func TestNewCart(t *testing.T) {
	t.Run("should create an empty cart without a restaurant", func(t *testing.T) {
		c := newTestCart(t)

		assert.True(t, c.IsEmpty())
		assert.Nil(t, c.Restaurant())
		assert.Empty(t, c.Lines())
	})
}

func TestCart_AddItem(t *testing.T) {
	t.Run("should pin the restaurant on first add", func(t *testing.T) {
		c := newTestCart(t)
		restaurantID := kernel.NewUUID()

		require.NoError(t, c.AddItem(kernel.NewUUID(), restaurantID, 2))

		require.NotNil(t, c.Restaurant())
		assert.True(t, c.Restaurant().IsEqual(restaurantID))
		require.Len(t, c.Lines(), 1)
		assert.Equal(t, 2, c.Lines()[0].Quantity)
	})

	t.Run("should merge quantities additively for a repeated item", func(t *testing.T) {
		c := newTestCart(t)
		restaurantID := kernel.NewUUID()
		itemID := kernel.NewUUID()

		require.NoError(t, c.AddItem(itemID, restaurantID, 2))
		require.NoError(t, c.AddItem(itemID, restaurantID, 3))

		require.Len(t, c.Lines(), 1)
		assert.Equal(t, 5, c.Lines()[0].Quantity)
	})

	t.Run("should reject items from a second restaurant", func(t *testing.T) {
		c := newTestCart(t)
		require.NoError(t, c.AddItem(kernel.NewUUID(), kernel.NewUUID(), 1))

		err := c.AddItem(kernel.NewUUID(), kernel.NewUUID(), 1)

		require.Error(t, err)
		require.ErrorIs(t, err, cart.ErrMixedRestaurant)
		assert.Len(t, c.Lines(), 1)
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		c := newTestCart(t)

		require.Error(t, c.AddItem(kernel.NewUUID(), kernel.NewUUID(), 0))
		require.Error(t, c.AddItem(kernel.NewUUID(), kernel.NewUUID(), -1))
		assert.True(t, c.IsEmpty())
	})

	t.Run("should keep lines in insertion order", func(t *testing.T) {
		c := newTestCart(t)
		restaurantID := kernel.NewUUID()
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		require.NoError(t, c.AddItem(first, restaurantID, 1))
		require.NoError(t, c.AddItem(second, restaurantID, 1))

		lines := c.Lines()
		require.Len(t, lines, 2)
		assert.True(t, lines[0].MenuItemID.IsEqual(first))
		assert.True(t, lines[1].MenuItemID.IsEqual(second))
	})
}

func TestCart_RemoveOne(t *testing.T) {
	t.Run("should decrement the quantity", func(t *testing.T) {
		c := newTestCart(t)
		restaurantID := kernel.NewUUID()
		itemID := kernel.NewUUID()
		require.NoError(t, c.AddItem(itemID, restaurantID, 3))

		require.NoError(t, c.RemoveOne(itemID))

		assert.Equal(t, 2, c.Lines()[0].Quantity)
	})

	t.Run("should drop the line at zero and release the restaurant", func(t *testing.T) {
		c := newTestCart(t)
		itemID := kernel.NewUUID()
		require.NoError(t, c.AddItem(itemID, kernel.NewUUID(), 1))

		require.NoError(t, c.RemoveOne(itemID))

		assert.True(t, c.IsEmpty())
		assert.Nil(t, c.Restaurant())

		// the emptied cart accepts any restaurant again
		require.NoError(t, c.AddItem(kernel.NewUUID(), kernel.NewUUID(), 1))
	})

	t.Run("should fail for an item that is not in the cart", func(t *testing.T) {
		c := newTestCart(t)

		err := c.RemoveOne(kernel.NewUUID())

		require.Error(t, err)
		require.ErrorIs(t, err, cart.ErrLineNotFound)
	})
}

func TestCart_RemoveAll(t *testing.T) {
	t.Run("should drop the whole line regardless of quantity", func(t *testing.T) {
		c := newTestCart(t)
		restaurantID := kernel.NewUUID()
		itemID := kernel.NewUUID()
		keptID := kernel.NewUUID()
		require.NoError(t, c.AddItem(itemID, restaurantID, 5))
		require.NoError(t, c.AddItem(keptID, restaurantID, 1))

		require.NoError(t, c.RemoveAll(itemID))

		require.Len(t, c.Lines(), 1)
		assert.True(t, c.Lines()[0].MenuItemID.IsEqual(keptID))
		assert.NotNil(t, c.Restaurant())
	})
}

func TestCart_Clear(t *testing.T) {
	t.Run("should empty the cart and release the restaurant", func(t *testing.T) {
		c := newTestCart(t)
		require.NoError(t, c.AddItem(kernel.NewUUID(), kernel.NewUUID(), 2))

		c.Clear()

		assert.True(t, c.IsEmpty())
		assert.Nil(t, c.Restaurant())
	})
}

func TestRestoreCart(t *testing.T) {
	t.Run("should restore lines and restaurant", func(t *testing.T) {
		restaurantID := kernel.NewUUID()
		lines := []cart.Line{{MenuItemID: kernel.NewUUID(), Quantity: 2}}

		c, err := cart.RestoreCart(kernel.NewUUID(), kernel.NewUUID(), &restaurantID, lines)

		require.NoError(t, err)
		assert.Len(t, c.Lines(), 1)
		assert.True(t, c.Restaurant().IsEqual(restaurantID))
	})

	t.Run("should reject non-empty lines without a restaurant", func(t *testing.T) {
		lines := []cart.Line{{MenuItemID: kernel.NewUUID(), Quantity: 2}}

		_, err := cart.RestoreCart(kernel.NewUUID(), kernel.NewUUID(), nil, lines)

		require.Error(t, err)
	})
}
