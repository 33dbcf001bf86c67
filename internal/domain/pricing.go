package domain

import "github.com/shopspring/decimal"

// UnitPrice is the base price plus the price delta of every selected choice.
func UnitPrice(item MenuItem, selected []SelectedOption) decimal.Decimal {
	unit := item.Price
	for _, s := range selected {
		unit = unit.Add(s.Choice.Price)
	}
	return unit
}

// PriceOf returns (base + Σ choice deltas) × quantity.
func PriceOf(item MenuItem, quantity int, selected []SelectedOption) decimal.Decimal {
	return UnitPrice(item, selected).Mul(decimal.NewFromInt(int64(quantity)))
}
