package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal, unit currency.Unit) Money {
	return Money{Amount: amount, Currency: unit}
}

// Format renders the amount rounded to the cent with the currency symbol, e.g. "$15.98".
func (m Money) Format() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%v%s", currency.Symbol(m.Currency), m.Amount.StringFixed(2))
}

func (m Money) String() string {
	return m.Amount.StringFixed(2) + " " + m.Currency.String()
}
