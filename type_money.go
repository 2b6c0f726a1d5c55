package papertrade

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Currency is the single reporting currency of the application.
// The simulator tracks NSE-listed symbols, all quoted in rupees.
const Currency = "INR"

// Money represents a monetary value in the reporting currency.
//
// It wraps an exact decimal so that ledger reconciliation stays exact
// no matter how many records are summed.
type Money struct {
	value decimal.Decimal
}

// M returns the Money for a float value.
func M(value float64) Money {
	return Money{value: decimal.NewFromFloat(value)}
}

// MoneyFromDecimal returns the Money for an exact decimal value.
func MoneyFromDecimal(value decimal.Decimal) Money {
	return Money{value: value}
}

// ParseMoney parses the decimal string representation of a monetary value.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return MoneyFromDecimal(d), nil
}

func (m Money) Equal(n Money) bool    { return m.value.Equal(n.value) }
func (m Money) IsZero() bool          { return m.value.IsZero() }
func (m Money) IsPositive() bool      { return m.value.IsPositive() }
func (m Money) IsNegative() bool      { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool { return m.value.LessThan(n.value) }
func (m Money) Neg() Money            { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money     { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money     { return Money{value: m.value.Sub(n.value)} }

// MulInt scales the value by a whole-share quantity.
func (m Money) MulInt(quantity int64) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(quantity))}
}

// Decimal returns the exact decimal value.
func (m Money) Decimal() decimal.Decimal { return m.value }

// currency returns the full currency metadata for formatting.
func (m Money) currency() money.Currency {
	// the Money constructor is the only way to get a never-nil currency.
	return *money.New(0, Currency).Currency()
}

// String formats the value with the currency symbol, e.g. "₹1,500.00".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// SignedString is like String but with an explicit sign, and "-" for zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

func (m *Money) UnmarshalJSON(b []byte) error {
	return m.value.UnmarshalJSON(b)
}
