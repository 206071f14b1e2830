package stockmarket

import "github.com/shopspring/decimal"

// Percent is a decimal percentage, used for the fixed dividend of
// preferred securities. A Percent of 2 reads "2%".
type Percent struct {
	value decimal.Decimal
}

func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Percent {
	return Percent{value: newDecimal(value)}
}

func (p Percent) Equal(q Percent) bool { return p.value.Equal(q.value) }
func (p Percent) IsZero() bool         { return p.value.IsZero() }
func (p Percent) String() string       { return p.value.String() + "%" }

// Mul applies the percentage to a monetary value as a raw multiplier.
// The exchange's published preferred-dividend formula is
// fixedDividend * parValue, with the fixed dividend taken at face value
// (2, not 0.02), and this method keeps that convention.
func (p Percent) Mul(m Money) Money {
	return Money{value: p.value.Mul(m.value), cur: m.cur}
}

// MarshalJSON implements the json.Marshaler interface for Percent.
func (p Percent) MarshalJSON() ([]byte, error) {
	return p.value.MarshalJSON()
}

func (p *Percent) UnmarshalJSON(decimalBytes []byte) error {
	return p.value.UnmarshalJSON(decimalBytes)
}
