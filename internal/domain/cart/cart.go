// Package cart holds the per-session shopping cart.
package cart

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/shop-kiosk/internal/domain/product"
)

// Sentinel errors for cart mutations.
var (
	ErrInvalidQuantity = errors.New("quantity must be greater than 0")
	ErrCartFull        = errors.New("shopping cart is full")
)

// Line is one (product, quantity) pair in the cart.
type Line struct {
	Product  product.Product
	Quantity int
}

// Subtotal returns quantity × unit price for this line.
func (l Line) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the mutable per-session collection of lines. At most one line
// exists per product ID; re-adding a product merges quantities.
type Cart struct {
	lines    []Line
	maxLines int
}

// New creates an empty cart bounded to maxLines distinct products.
func New(maxLines int) *Cart {
	return &Cart{maxLines: maxLines}
}

// Add puts qty units of p into the cart. A line for the same product ID
// (case-insensitive) is incremented in place; otherwise a new line is
// appended, subject to the line-count bound. On error the cart is unchanged.
func (c *Cart) Add(p product.Product, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	for i := range c.lines {
		if strings.EqualFold(c.lines[i].Product.ID, p.ID) {
			c.lines[i].Quantity += qty
			return nil
		}
	}
	if len(c.lines) >= c.maxLines {
		return ErrCartFull
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: qty})
	return nil
}

// Lines returns an ordered copy of the current entries.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total returns the sum of all line subtotals.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Clear resets the cart to zero lines. Callers invoke it only after a
// successful checkout so an aborted checkout preserves the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Len reports the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}
