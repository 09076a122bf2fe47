package pnl

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Rate is a dimensionless scalar: a funding or interest rate, a greek
// sensitivity coefficient, or a price/volatility shift.
type Rate struct {
	value decimal.Decimal
}

func R[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Rate {
	return Rate{value: newDecimal(value)}
}

func (r Rate) Equal(s Rate) bool { return r.value.Equal(s.value) }
func (r Rate) Add(s Rate) Rate   { return Rate{value: r.value.Add(s.value)} }
func (r Rate) Mul(s Rate) Rate   { return Rate{value: r.value.Mul(s.value)} }
func (r Rate) Neg() Rate         { return Rate{value: r.value.Neg()} }
func (r Rate) IsZero() bool      { return r.value.IsZero() }
func (r Rate) String() string    { return r.value.String() }

// Percent returns the rate scaled to percentage points, e.g. "2%" for 0.02.
func (r Rate) Percent() string {
	return fmt.Sprintf("%s%%", r.value.Shift(2))
}

func (r Rate) MarshalJSON() ([]byte, error) {
	return r.value.MarshalJSON()
}
func (r *Rate) UnmarshalJSON(b []byte) error {
	return r.value.UnmarshalJSON(b)
}
