package domain

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// Cart is an ordered list of lines in insertion order.
// It is not safe for concurrent use.
type Cart struct {
	entries []CartEntry
}

type CartEntry struct {
	MenuItem        MenuItem
	Quantity        int
	SelectedOptions []SelectedOption
}

type RestaurantGroup struct {
	RestaurantID string
	Entries      []CartEntry
}

func NewCart() *Cart {
	return &Cart{}
}

func (e CartEntry) UnitPrice() decimal.Decimal {
	return UnitPrice(e.MenuItem, e.SelectedOptions)
}

func (e CartEntry) LineTotal() decimal.Decimal {
	return PriceOf(e.MenuItem, e.Quantity, e.SelectedOptions)
}

// Matches applies the identity rule: same menu item id and the same selection.
func (e CartEntry) Matches(itemID string, selected []SelectedOption) bool {
	return e.MenuItem.ID == itemID && SameSelection(e.SelectedOptions, selected)
}

func (e CartEntry) clone() CartEntry {
	e.MenuItem = e.MenuItem.Clone()
	e.SelectedOptions = slices.Clone(e.SelectedOptions)
	return e
}

// AddItem merges quantity into the line with the same identity or appends a new line.
// It returns a copy of the resulting line.
func (c *Cart) AddItem(item MenuItem, quantity int, selected []SelectedOption) (CartEntry, error) {
	if quantity <= 0 {
		return CartEntry{}, fmt.Errorf("quantity[%d] for item[%s]: %w", quantity, item.ID, ErrInvalidQuantity)
	}

	for i := range c.entries {
		if c.entries[i].Matches(item.ID, selected) {
			c.entries[i].Quantity += quantity
			return c.entries[i].clone(), nil
		}
	}

	entry := CartEntry{
		MenuItem:        item.Clone(),
		Quantity:        quantity,
		SelectedOptions: slices.Clone(selected),
	}
	c.entries = append(c.entries, entry)

	return entry.clone(), nil
}

// RemoveItem drops every line of the item regardless of its selection and
// returns how many lines were removed.
func (c *Cart) RemoveItem(itemID string) int {
	before := len(c.entries)
	c.entries = slices.DeleteFunc(c.entries, func(e CartEntry) bool {
		return e.MenuItem.ID == itemID
	})
	return before - len(c.entries)
}

// UpdateQuantity sets quantity on every line of the item. A quantity of zero
// or less removes those lines instead. It returns the number of lines affected.
func (c *Cart) UpdateQuantity(itemID string, quantity int) int {
	if quantity <= 0 {
		return c.RemoveItem(itemID)
	}

	var n int
	for i := range c.entries {
		if c.entries[i].MenuItem.ID == itemID {
			c.entries[i].Quantity = quantity
			n++
		}
	}
	return n
}

// RemoveLine drops only the line matching the identity rule.
func (c *Cart) RemoveLine(itemID string, selected []SelectedOption) bool {
	idx := c.indexOf(itemID, selected)
	if idx < 0 {
		return false
	}
	c.entries = slices.Delete(c.entries, idx, idx+1)
	return true
}

// SetLineQuantity sets the quantity of the single line matching the identity rule.
func (c *Cart) SetLineQuantity(itemID string, selected []SelectedOption, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity[%d] for item[%s]: %w", quantity, itemID, ErrInvalidQuantity)
	}

	idx := c.indexOf(itemID, selected)
	if idx < 0 {
		return fmt.Errorf("line for item[%s]: %w", itemID, ErrNotFound)
	}
	c.entries[idx].Quantity = quantity

	return nil
}

func (c *Cart) Clear() {
	c.entries = nil
}

func (c *Cart) Entries() []CartEntry {
	if len(c.entries) == 0 {
		return nil
	}

	out := make([]CartEntry, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.clone()
	}
	return out
}

func (c *Cart) Len() int {
	return len(c.entries)
}

func (c *Cart) IsEmpty() bool {
	return len(c.entries) == 0
}

func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, e := range c.entries {
		total = total.Add(e.LineTotal())
	}
	return total
}

func (c *Cart) TotalItemCount() int {
	var n int
	for _, e := range c.entries {
		n += e.Quantity
	}
	return n
}

// GroupByRestaurant partitions lines by restaurant, keeping the order in which
// restaurants were first seen and the insertion order within each group.
func (c *Cart) GroupByRestaurant() []RestaurantGroup {
	var groups []RestaurantGroup
	index := make(map[string]int)

	for _, e := range c.entries {
		rid := e.MenuItem.RestaurantID

		i, ok := index[rid]
		if !ok {
			i = len(groups)
			index[rid] = i
			groups = append(groups, RestaurantGroup{RestaurantID: rid})
		}
		groups[i].Entries = append(groups[i].Entries, e.clone())
	}

	return groups
}

func (c *Cart) indexOf(itemID string, selected []SelectedOption) int {
	return slices.IndexFunc(c.entries, func(e CartEntry) bool {
		return e.Matches(itemID, selected)
	})
}
