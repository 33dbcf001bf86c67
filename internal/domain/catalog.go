package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

type Restaurant struct {
	ID           string
	Name         string
	Image        string
	Cuisine      string
	Rating       float64
	DeliveryTime string
	DeliveryFee  decimal.Decimal
	Featured     bool
}

type MenuItem struct {
	ID           string
	RestaurantID string
	Name         string
	Description  string
	Image        string
	Category     string
	Price        decimal.Decimal
	Popular      bool
	Options      []OptionGroup
}

// OptionGroup is a single-select set of choices, e.g. "Size".
type OptionGroup struct {
	Name    string
	Choices []Choice
}

type Choice struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

func (g OptionGroup) Choice(id string) (Choice, bool) {
	for _, c := range g.Choices {
		if c.ID == id {
			return c, true
		}
	}
	return Choice{}, false
}

// Clone returns a copy of the item that shares no slices with the receiver.
func (m MenuItem) Clone() MenuItem {
	if m.Options == nil {
		return m
	}

	options := make([]OptionGroup, len(m.Options))
	for i, g := range m.Options {
		options[i] = OptionGroup{Name: g.Name, Choices: slices.Clone(g.Choices)}
	}
	m.Options = options

	return m
}
