package services

import (
	"food-storefront/models"
)

// Cart holds at most one line per item id, in the order items were first added.
type Cart struct {
	lines []models.CartLine
	index map[string]int
}

func NewCart() *Cart {
	return &Cart{index: make(map[string]int)}
}

// Add increments the line for item.ID, or appends a new line with qty 1.
// It returns the line's quantity after the add.
func (c *Cart) Add(item models.FoodItem) int {
	if i, ok := c.index[item.ID]; ok {
		c.lines[i].Qty++
		return c.lines[i].Qty
	}
	item.Reviews = nil // the cart never shows reviews
	c.index[item.ID] = len(c.lines)
	c.lines = append(c.lines, models.CartLine{FoodItem: item, Qty: 1})
	return 1
}

func (c *Cart) Clear() {
	c.lines = nil
	c.index = make(map[string]int)
}

// Total is the sum of price*qty over all lines; 0 for an empty cart.
func (c *Cart) Total() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

func (c *Cart) Lines() []models.CartLine {
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len is the number of distinct lines (shown as the cart badge).
func (c *Cart) Len() int {
	return len(c.lines)
}

// Quantity is the number of units across all lines.
func (c *Cart) Quantity() int {
	n := 0
	for _, l := range c.lines {
		n += l.Qty
	}
	return n
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}
