package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Balogunsamuel/grocery-shop-web/internal/models"
)

var (
	apples  = models.Product{ID: 1, Name: "Fresh Organic Apples", Price: 4.99, InStock: true, StockCount: 10}
	milk    = models.Product{ID: 2, Name: "Organic Milk", Price: 3.49, InStock: true, StockCount: 5}
	truffle = models.Product{ID: 5, Name: "Black Truffle", Price: 2, InStock: true, StockCount: 1}
)

func TestAddItem(t *testing.T) {
	c := New(nil)

	c.AddItem(apples, 2)
	c.AddItem(milk, 1)

	require.Len(t, c.Items(), 2)
	assert.Equal(t, 3, c.TotalItems())
	assert.InDelta(t, 13.47, c.TotalPrice(), 1e-9)
}

func TestAddItemMergesExistingLine(t *testing.T) {
	c := New(nil)

	c.AddItem(apples, 2)
	c.AddItem(apples, 3)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddItemCapsAtStock(t *testing.T) {
	c := New(nil)

	// Two adds of one each against a stock of one stays at one.
	c.AddItem(truffle, 1)
	c.AddItem(truffle, 1)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)

	// A single oversized add is also capped.
	c.AddItem(milk, 50)
	assert.Equal(t, 5, c.Items()[1].Quantity)
}

func TestAddItemOutOfStockCreatesNoLine(t *testing.T) {
	c := New(nil)
	c.AddItem(models.Product{ID: 9, Name: "Gone", StockCount: 0}, 1)
	assert.Empty(t, c.Items())
}

func TestRemoveItem(t *testing.T) {
	c := New(nil)
	c.AddItem(apples, 1)
	c.AddItem(milk, 1)

	c.RemoveItem(apples.ID)
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, milk.ID, items[0].ProductID)

	c.RemoveItem(42) // absent id is a no-op
	assert.Len(t, c.Items(), 1)
}

func TestUpdateQuantity(t *testing.T) {
	c := New(nil)
	c.AddItem(apples, 1)

	c.UpdateQuantity(apples.ID, 4)
	assert.Equal(t, 4, c.Items()[0].Quantity)

	// Capped at the recorded maximum.
	c.UpdateQuantity(apples.ID, 99)
	assert.Equal(t, 10, c.Items()[0].Quantity)
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	for _, qty := range []int{0, -1} {
		c := New(nil)
		c.AddItem(apples, 2)
		c.UpdateQuantity(apples.ID, qty)
		assert.Empty(t, c.Items())
	}
}

func TestClear(t *testing.T) {
	c := New(nil)
	c.AddItem(apples, 2)
	c.AddItem(milk, 1)

	c.Clear()
	assert.Empty(t, c.Items())
	assert.Equal(t, 0, c.TotalItems())
	assert.Equal(t, 0.0, c.TotalPrice())
}

func TestTotalsMatchSumsAfterMixedOperations(t *testing.T) {
	c := New(nil)
	c.AddItem(apples, 3)
	c.AddItem(milk, 2)
	c.AddItem(truffle, 1)
	c.UpdateQuantity(milk.ID, 4)
	c.RemoveItem(truffle.ID)
	c.AddItem(apples, 1)

	wantItems := 0
	wantPrice := 0.0
	for _, item := range c.Items() {
		wantItems += item.Quantity
		wantPrice += item.Price * float64(item.Quantity)
	}
	assert.Equal(t, wantItems, c.TotalItems())
	assert.InDelta(t, wantPrice, c.TotalPrice(), 1e-9)
}

func TestPersistence(t *testing.T) {
	p := &MemoryPersister{}

	c := New(p)
	c.AddItem(apples, 2)
	c.AddItem(milk, 1)

	// A fresh cart over the same persister restores the saved state.
	restored := New(p)
	require.NoError(t, restored.Restore())
	assert.Equal(t, c.Items(), restored.Items())
	assert.Equal(t, 3, restored.TotalItems())

	restored.Clear()
	again := New(p)
	require.NoError(t, again.Restore())
	assert.Empty(t, again.Items())
}
