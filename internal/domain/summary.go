package domain

import "github.com/shopspring/decimal"

// Fees are charged once per order, not per restaurant.
type Fees struct {
	Delivery decimal.Decimal
	Service  decimal.Decimal
}

func DefaultFees() Fees {
	return Fees{
		Delivery: decimal.RequireFromString("3.99"),
		Service:  decimal.RequireFromString("1.99"),
	}
}

type OrderSummary struct {
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	ServiceFee  decimal.Decimal
	GrandTotal  decimal.Decimal
	ItemCount   int
	Groups      []RestaurantGroup
}

// Summarize composes the order totals. An empty cart carries no fees.
func Summarize(c *Cart, fees Fees) OrderSummary {
	s := OrderSummary{
		Subtotal:    c.Subtotal(),
		DeliveryFee: decimal.Zero,
		ServiceFee:  decimal.Zero,
		ItemCount:   c.TotalItemCount(),
		Groups:      c.GroupByRestaurant(),
	}

	if !c.IsEmpty() {
		s.DeliveryFee = fees.Delivery
		s.ServiceFee = fees.Service
	}

	s.GrandTotal = s.Subtotal.Add(s.DeliveryFee).Add(s.ServiceFee)

	return s
}
