// Package cart implements the shopping cart: an ordered list of lines, one
// per product, with a total derived from the lines on every call.
//
// Cart is a value type. Every mutating operation returns a new Cart and
// leaves the receiver untouched, which lets the storefront reducer keep the
// previous state intact when an action is rejected.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/twistedcolors/storefront/internal/catalog"
)

// Line is one product in the cart with its quantity. Quantity is always at
// least one; a line that would drop to zero is removed instead.
type Line struct {
	Product  catalog.Product
	Quantity int
}

// Subtotal returns price x quantity for the line.
func (l Line) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an ordered collection of lines keyed by product identifier.
// The zero value is an empty cart.
type Cart struct {
	lines []Line
}

// New returns an empty cart.
func New() Cart {
	return Cart{}
}

// Add puts one more unit of p in the cart, creating the line on first add.
func (c Cart) Add(p catalog.Product) Cart {
	next := c.clone()
	if i := next.find(p.ID); i >= 0 {
		next.lines[i].Quantity++
		return next
	}
	next.lines = append(next.lines, Line{Product: p, Quantity: 1})
	return next
}

// Remove deletes the line for id. Removing an absent product is a no-op.
func (c Cart) Remove(id int) Cart {
	i := c.find(id)
	if i < 0 {
		return c
	}
	next := Cart{lines: make([]Line, 0, len(c.lines)-1)}
	next.lines = append(next.lines, c.lines[:i]...)
	next.lines = append(next.lines, c.lines[i+1:]...)
	return next
}

// ChangeQuantity adds delta to the line for id. A resulting quantity of zero
// or less removes the line. Unknown ids are ignored.
func (c Cart) ChangeQuantity(id, delta int) Cart {
	i := c.find(id)
	if i < 0 {
		return c
	}
	if c.lines[i].Quantity+delta <= 0 {
		return c.Remove(id)
	}
	next := c.clone()
	next.lines[i].Quantity += delta
	return next
}

// Clear returns an empty cart.
func (c Cart) Clear() Cart {
	return Cart{}
}

// Total is the sum of price x quantity over all lines.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// ItemCount is the number of units across all lines.
func (c Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Len is the number of lines.
func (c Cart) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns the lines in insertion order.
func (c Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Line returns the line for id.
func (c Cart) Line(id int) (Line, bool) {
	if i := c.find(id); i >= 0 {
		return c.lines[i], true
	}
	return Line{}, false
}

// Quantity returns how many units of id are in the cart.
func (c Cart) Quantity(id int) int {
	if l, ok := c.Line(id); ok {
		return l.Quantity
	}
	return 0
}

func (c Cart) find(id int) int {
	for i, l := range c.lines {
		if l.Product.ID == id {
			return i
		}
	}
	return -1
}

func (c Cart) clone() Cart {
	lines := make([]Line, len(c.lines), len(c.lines)+1)
	copy(lines, c.lines)
	return Cart{lines: lines}
}
