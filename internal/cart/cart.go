// Package cart holds one shopper's line items together with their derived
// totals. A Cart is owned by a single session and is not safe for concurrent
// mutation.
package cart

import (
	"github.com/Balogunsamuel/grocery-shop-web/internal/models"
)

// fallbackMaxQuantity caps a line whose snapshot recorded no stock cap.
const fallbackMaxQuantity = 999

// Persister saves and restores cart contents across session boundaries.
// Every mutating Cart operation saves through it, so a reload sees the
// latest state.
type Persister interface {
	Save(items []models.CartItem) error
	Load() ([]models.CartItem, error)
}

// Cart is an ordered collection of line items, unique by product id.
type Cart struct {
	items     []models.CartItem
	persister Persister
}

// New returns an empty cart persisting through p. A nil p disables
// persistence.
func New(p Persister) *Cart {
	return &Cart{persister: p}
}

// Restore loads previously saved contents from the persister.
func (c *Cart) Restore() error {
	if c.persister == nil {
		return nil
	}
	items, err := c.persister.Load()
	if err != nil {
		return err
	}
	c.items = items
	return nil
}

// AddItem adds quantity of product to the cart, merging into an existing
// line when one exists. Quantities are capped at the product's stock count;
// a product with no stock never produces a line.
func (c *Cart) AddItem(product models.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i, item := range c.items {
		if item.ProductID == product.ID {
			c.items[i].Quantity = capQuantity(item.Quantity+quantity, product.StockCount)
			c.save()
			return
		}
	}
	qty := capQuantity(quantity, product.StockCount)
	if qty == 0 {
		return
	}
	c.items = append(c.items, models.CartItem{
		ProductID:   product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Quantity:    qty,
		Image:       product.Image,
		InStock:     product.InStock,
		MaxQuantity: product.StockCount,
	})
	c.save()
}

// RemoveItem deletes the line for productID. Removing an absent id is a
// no-op.
func (c *Cart) RemoveItem(productID int) {
	for i, item := range c.items {
		if item.ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.save()
			return
		}
	}
}

// UpdateQuantity sets the quantity on the line for productID, capped at the
// line's recorded maximum. A quantity of zero or less removes the line.
func (c *Cart) UpdateQuantity(productID, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i, item := range c.items {
		if item.ProductID == productID {
			max := item.MaxQuantity
			if max == 0 {
				max = fallbackMaxQuantity
			}
			c.items[i].Quantity = capQuantity(quantity, max)
			c.save()
			return
		}
	}
}

// Clear empties the cart. Called after successful order placement.
func (c *Cart) Clear() {
	c.items = nil
	c.save()
}

// Items returns a copy of the current line items.
func (c *Cart) Items() []models.CartItem {
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// TotalItems is the sum of quantities across all lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of price times quantity across all lines.
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (c *Cart) save() {
	if c.persister == nil {
		return
	}
	// Persistence failures do not invalidate the in-memory cart.
	_ = c.persister.Save(c.items)
}

func capQuantity(qty, max int) int {
	if qty > max {
		return max
	}
	return qty
}

// MemoryPersister keeps cart contents in process memory. Used by tests and
// the CLI; HTTP sessions use the session-backed persister in handlers.
type MemoryPersister struct {
	items []models.CartItem
}

func (m *MemoryPersister) Save(items []models.CartItem) error {
	m.items = make([]models.CartItem, len(items))
	copy(m.items, items)
	return nil
}

func (m *MemoryPersister) Load() ([]models.CartItem, error) {
	out := make([]models.CartItem, len(m.items))
	copy(out, m.items)
	return out, nil
}
