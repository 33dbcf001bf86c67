package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentPayPal PaymentMethod = "paypal"
	PaymentCash   PaymentMethod = "cash"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCard, PaymentPayPal, PaymentCash:
		return true
	}
	return false
}

type DeliveryTime string

const (
	DeliveryASAP      DeliveryTime = "asap"
	DeliveryScheduled DeliveryTime = "scheduled"
)

func (d DeliveryTime) Valid() bool {
	return d == DeliveryASAP || d == DeliveryScheduled
}

type DeliveryDetails struct {
	FullName      string
	Phone         string
	StreetAddress string
	City          string
	State         string
	Zip           string
	DeliveryTime  DeliveryTime
	PaymentMethod PaymentMethod
}

// Validate requires every address field and known delivery time and payment method values.
func (d DeliveryDetails) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"fullName", d.FullName},
		{"phone", d.Phone},
		{"streetAddress", d.StreetAddress},
		{"city", d.City},
		{"state", d.State},
		{"zip", d.Zip},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("%s is empty: %w", f.name, ErrInvalidDetails)
		}
	}

	if !d.DeliveryTime.Valid() {
		return fmt.Errorf("deliveryTime[%s]: %w", d.DeliveryTime, ErrInvalidDetails)
	}
	if !d.PaymentMethod.Valid() {
		return fmt.Errorf("paymentMethod[%s]: %w", d.PaymentMethod, ErrInvalidDetails)
	}

	return nil
}

// Order is a placed order. Lines are snapshots of the cart at submit time.
type Order struct {
	ID          uuid.UUID
	Number      string
	SessionID   string
	Lines       []OrderLine
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	ServiceFee  decimal.Decimal
	GrandTotal  decimal.Decimal
	Currency    currency.Unit
	Delivery    DeliveryDetails
	PlacedAt    time.Time
}

type OrderLine struct {
	RestaurantID    string
	MenuItemID      string
	Name            string
	Quantity        int
	UnitPrice       decimal.Decimal
	LineTotal       decimal.Decimal
	SelectedOptions []SelectedOption
}

func NewOrderLine(e CartEntry) OrderLine {
	return OrderLine{
		RestaurantID:    e.MenuItem.RestaurantID,
		MenuItemID:      e.MenuItem.ID,
		Name:            e.MenuItem.Name,
		Quantity:        e.Quantity,
		UnitPrice:       e.UnitPrice(),
		LineTotal:       e.LineTotal(),
		SelectedOptions: e.SelectedOptions,
	}
}

func (o Order) Total() Money {
	return NewMoney(o.GrandTotal, o.Currency)
}
