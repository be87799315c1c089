package debtplan

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency used when none is configured.
const DefaultCurrency = "USD"

// Money is a currency amount for display.
//
// Calculations are done on float64 at full precision; Money only rounds to the
// currency fraction when formatted.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns value as a Money in the given currency ("" is DefaultCurrency).
func M(value float64, currency string) Money {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// Currency returns the ISO code of the money currency.
func (m Money) Currency() string { return m.cur }

// round returns the value rounded to the currency fraction.
func (m Money) round() decimal.Decimal { return m.value.Round(int32(m.currency().Fraction)) }

// String returns the value formatted in its currency, "$1,200.00".
func (m Money) String() string {
	cur := m.currency()
	minor := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// IsZero reports whether the money displays as zero.
func (m Money) IsZero() bool { return m.round().IsZero() }
