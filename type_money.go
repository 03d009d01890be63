package khata

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// displayCurrency is the currency used to format amounts in reports.
// The book itself stores bare decimal quantities: an SHG ledger is
// single-currency by construction.
const displayCurrency = "INR"

// Money represents a monetary value as an exact decimal quantity.
type Money struct {
	value decimal.Decimal
}

// M builds a Money from any numeric value.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64](value T) Money {
	switch v := any(value).(type) {
	case float32:
		return Money{value: decimal.NewFromFloat32(v)}
	case float64:
		return Money{value: decimal.NewFromFloat(v)}
	case int:
		return Money{value: decimal.NewFromInt(int64(v))}
	case int32:
		return Money{value: decimal.NewFromInt32(v)}
	case int64:
		return Money{value: decimal.NewFromInt(v)}
	case uint:
		return Money{value: decimal.NewFromUint64(uint64(v))}
	case uint32:
		return Money{value: decimal.NewFromUint64(uint64(v))}
	case uint64:
		return Money{value: decimal.NewFromUint64(v)}
	}
	return Money{}
}

// MoneyFromDecimal builds a Money from an exact decimal value.
func MoneyFromDecimal(d decimal.Decimal) Money { return Money{value: d} }

// ParseMoney parses a decimal amount from its string form.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{value: d}, nil
}

func (m Money) Decimal() decimal.Decimal     { return m.value }
func (m Money) Equal(n Money) bool           { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                 { return m.value.IsZero() }
func (m Money) IsPositive() bool             { return m.value.IsPositive() }
func (m Money) IsNegative() bool             { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool        { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool     { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                   { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money            { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money            { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(d decimal.Decimal) Money  { return Money{value: m.value.Mul(d)} }
func (m Money) Div(d decimal.Decimal) Money  { return Money{value: m.value.Div(d)} }

// Round rounds to the nearest whole currency unit. The source system keeps
// no fractional currency in computed EMI and schedule figures.
func (m Money) Round() Money { return Money{value: m.value.Round(0)} }

// String returns the bare decimal representation.
func (m Money) String() string { return m.value.String() }

// Display formats the amount with the display currency symbol and grouping.
func (m Money) Display() string {
	cur := *money.New(0, displayCurrency).Currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the display representation with an explicit sign.
// Zero is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.Display()
	}
	return m.Display()
}

// MarshalJSON persists the exact decimal value.
func (m Money) MarshalJSON() ([]byte, error) { return m.value.MarshalJSON() }

// UnmarshalJSON accepts both quoted and bare JSON numbers.
func (m *Money) UnmarshalJSON(b []byte) error { return m.value.UnmarshalJSON(b) }
