// Package cart is the in-memory shopping cart container. Contents are not
// persisted: a cart lives and dies with the app session.
package cart

import (
	"sync"

	"github.com/mohteeflair/storefront/internal/catalog"
)

// Line is one cart position. Identity is (ProductID, Variant): adding the
// same product in the same variant again bumps the quantity instead of
// appending a new line.
type Line struct {
	ProductID string
	Name      string
	Category  string
	Price     string
	UnitPrice float64
	Variant   string
	Quantity  int
}

// Cart accumulates order lines.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add puts one unit of the product in the given variant into the cart,
// merging with an existing line of the same identity.
func (c *Cart) Add(p catalog.Product, variant string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == p.ID && c.lines[i].Variant == variant {
			c.lines[i].Quantity++
			return
		}
	}

	c.lines = append(c.lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		UnitPrice: catalog.PriceValue(p.Price),
		Variant:   variant,
		Quantity:  1,
	})
}

// Remove drops every line carrying the product id, regardless of variant.
func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.lines[:0]
	for _, l := range c.lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	c.lines = kept
}

// UpdateQuantity applies delta to every line carrying the product id. The
// resulting quantity is clamped to a minimum of 1; removal is explicit via
// Remove, never a side effect of decrementing.
func (c *Cart) UpdateQuantity(productID string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			q := c.lines[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.lines[i].Quantity = q
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Items returns a copy of the current lines.
func (c *Cart) Items() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total is the sum of unit price × quantity over all lines.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var sum float64
	for _, l := range c.lines {
		sum += l.UnitPrice * float64(l.Quantity)
	}
	return sum
}
