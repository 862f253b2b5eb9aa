package folio

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a monetary value in a single currency. It only represents and
// formats amounts; there is no conversion between currencies anywhere in
// this tool.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M creates a money value in the given currency.
func M[T float32 | float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

func newDecimal(v any) decimal.Decimal {
	switch x := v.(type) {
	case float32:
		return decimal.NewFromFloat32(x)
	case float64:
		return decimal.NewFromFloat(x)
	case int:
		return decimal.NewFromInt(int64(x))
	case int64:
		return decimal.NewFromInt(x)
	case decimal.Decimal:
		return x
	default:
		return decimal.Decimal{}
	}
}

// Currency returns the money's currency code.
func (m Money) Currency() string { return m.cur }

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.value.IsZero() }

// Equal reports whether two values have the same amount and currency.
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }

// Mul scales the amount by a quantity.
func (m Money) Mul(q decimal.Decimal) Money {
	return Money{value: m.value.Mul(q), cur: m.cur}
}

// Add sums two values of the same currency. Mismatched currencies are a
// programming error and panic.
func (m Money) Add(n Money) Money {
	if m.cur == "" {
		m.cur = n.cur
	}
	if n.cur != "" && n.cur != m.cur {
		panic("currency mismatch " + m.cur + " != " + n.cur)
	}
	return Money{value: m.value.Add(n.value), cur: m.cur}
}

// currency resolves the full currency metadata, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String formats the amount with its currency symbol and grapheme placement.
func (m Money) String() string {
	cur := m.currency()
	minor := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}
