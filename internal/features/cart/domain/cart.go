package domain

import (
	catalog "uniform-storefront/internal/features/catalog/domain"
)

// LineKey is the identity of a cart line: the same product added with a
// different embroidery flag or name is a distinct line.
type LineKey struct {
	ProductID      string
	Embroidered    bool
	EmbroideryName string
}

// Line is one product+customization combination held in the cart.
// The product is captured as added; its stock and price are the values the
// store showed at the time of the mutation.
type Line struct {
	Product        catalog.Product `json:"product"`
	Quantity       int             `json:"quantity"`
	Embroidered    bool            `json:"isEmbroidered,omitempty"`
	EmbroideryName string          `json:"embroideryName,omitempty"`
}

// Key returns the line's identity.
func (l Line) Key() LineKey {
	return LineKey{
		ProductID:      l.Product.ID,
		Embroidered:    l.Embroidered,
		EmbroideryName: l.EmbroideryName,
	}
}

// Subtotal is the line's contribution to the cart total: unit price times
// quantity, plus the embroidery surcharge per unit when the line is
// embroidered and the product actually offers it.
func (l Line) Subtotal() int64 {
	subtotal := l.Product.Price * int64(l.Quantity)
	if l.Embroidered && l.Product.CanBeEmbroidered && l.Product.EmbroideryPrice > 0 {
		subtotal += l.Product.EmbroideryPrice * int64(l.Quantity)
	}
	return subtotal
}

// Cart is the ordered collection of lines for one session.
// All mutations keep the invariant that no line has quantity below 1.
type Cart struct {
	Lines []Line `json:"items"`
}

// AddResult describes what an Add did so callers can phrase feedback.
type AddResult struct {
	// Line is the resulting line. Zero when the addition was rejected.
	Line Line
	// Merged is true when an existing line absorbed the quantity.
	Merged bool
	// RejectedStock is true when the addition would exceed the product's
	// stock. The cart is unchanged in that case.
	RejectedStock bool
}

// Add merges qty units of the product into the line matching the full
// identity (product id, embroidery flag, embroidery name), appending a new
// line when none matches. Additions that would push the line past the
// product's stock are rejected without changing the cart.
func (c *Cart) Add(p catalog.Product, qty int, embroidered bool, embroideryName string) AddResult {
	if qty < 1 {
		qty = 1
	}

	key := LineKey{ProductID: p.ID, Embroidered: embroidered, EmbroideryName: embroideryName}
	for i := range c.Lines {
		if c.Lines[i].Key() != key {
			continue
		}

		newQty := c.Lines[i].Quantity + qty
		if newQty > p.Stock {
			return AddResult{RejectedStock: true}
		}
		c.Lines[i].Quantity = newQty
		return AddResult{Line: c.Lines[i], Merged: true}
	}

	if qty > p.Stock {
		return AddResult{RejectedStock: true}
	}

	line := Line{Product: p, Quantity: qty, Embroidered: embroidered, EmbroideryName: embroideryName}
	c.Lines = append(c.Lines, line)
	return AddResult{Line: line}
}

// Remove drops every line holding the product and returns the removed
// lines. Keying by product id alone (not the full identity) mirrors the
// store UI: removing a product takes all of its embroidery variants with it.
func (c *Cart) Remove(productID string) []Line {
	var removed []Line
	kept := c.Lines[:0]
	for _, line := range c.Lines {
		if line.Product.ID == productID {
			removed = append(removed, line)
			continue
		}
		kept = append(kept, line)
	}
	c.Lines = kept
	return removed
}

// UpdateResult describes what an UpdateQuantity did.
type UpdateResult struct {
	// Line is the first affected line.
	Line Line
	// Found is false when no line holds the product.
	Found bool
	// Changed is true when the stored quantity actually moved.
	Changed bool
	// RejectedStock is true when the requested quantity exceeds the
	// product's stock. The cart is unchanged in that case.
	RejectedStock bool
}

// UpdateQuantity sets the quantity of every line holding the product,
// checked against the stock captured on the line. Quantities below 1 are
// the caller's signal to remove instead; passing them here is a no-op.
func (c *Cart) UpdateQuantity(productID string, qty int) UpdateResult {
	if qty < 1 {
		return UpdateResult{}
	}

	idx := -1
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return UpdateResult{}
	}

	if qty > c.Lines[idx].Product.Stock {
		return UpdateResult{Line: c.Lines[idx], Found: true, RejectedStock: true}
	}

	changed := c.Lines[idx].Quantity != qty
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			c.Lines[i].Quantity = qty
		}
	}
	return UpdateResult{Line: c.Lines[idx], Found: true, Changed: changed}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = nil
}

// Total sums every line's subtotal, embroidery surcharges included.
func (c *Cart) Total() int64 {
	var total int64
	for _, line := range c.Lines {
		total += line.Subtotal()
	}
	return total
}

// ItemCount sums quantities across lines, not the number of lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
