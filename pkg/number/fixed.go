package number

import (
	"math/big"

	"moneymarket/core"

	"github.com/shopspring/decimal"
)

// Precision fractional digits kept by intermediate results before they are
// truncated to a target scale
const Precision int32 = 40

const guardDigits int32 = 10

var (
	one  = decimal.New(1, 0)
	two  = decimal.New(2, 0)
	half = decimal.New(5, -1)

	// MaxMagnitude first value a scaled magnitude can not hold (2^128)
	MaxMagnitude = decimal.NewFromBigInt(new(big.Int).Lsh(big.NewInt(1), 128), 0)
)

// FromScaled reads the scaled integer raw as a value with decimals places
func FromScaled(raw decimal.Decimal, decimals int32) decimal.Decimal {
	return raw.Shift(-decimals)
}

// ToScaled truncates v to decimals places and returns the scaled magnitude.
// Fractions below the target resolution are dropped, never rounded up.
func ToScaled(v decimal.Decimal, decimals int32) (decimal.Decimal, error) {
	raw := v.Shift(decimals).Truncate(0)
	if err := checkMagnitude(raw); err != nil {
		return decimal.Zero, err
	}

	return raw, nil
}

// Scale converts a whole number of units into its scaled magnitude, e.g. Scale(5, 18) is 5e18
func Scale(units int64, decimals int32) decimal.Decimal {
	return decimal.New(units, decimals)
}

// Div divides two values keeping Precision digits
func Div(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, core.ErrDivisionByZero
	}

	return a.DivRound(b, Precision+guardDigits).Truncate(Precision), nil
}

// Quo integer division of scaled magnitudes, truncated
func Quo(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, core.ErrDivisionByZero
	}

	q, _ := a.QuoRem(b, 0)
	return q, nil
}

// Mul multiplies two scaled magnitudes and fails when the product leaves the magnitude range
func Mul(a, b decimal.Decimal) (decimal.Decimal, error) {
	p := a.Mul(b)
	if err := checkMagnitude(p); err != nil {
		return decimal.Zero, err
	}

	return p, nil
}

// MulDiv computes a * b / c on scaled magnitudes with integer truncation
func MulDiv(a, b, c decimal.Decimal) (decimal.Decimal, error) {
	p, err := Mul(a, b)
	if err != nil {
		return decimal.Zero, err
	}

	return Quo(p, c)
}

// Add adds two scaled magnitudes
func Add(a, b decimal.Decimal) (decimal.Decimal, error) {
	s := a.Add(b)
	if err := checkMagnitude(s); err != nil {
		return decimal.Zero, err
	}

	return s, nil
}

// Sub subtracts b from a, an unsigned underflow is ErrOverflow
func Sub(a, b decimal.Decimal) (decimal.Decimal, error) {
	d := a.Sub(b)
	if err := checkMagnitude(d); err != nil {
		return decimal.Zero, err
	}

	return d, nil
}

func checkMagnitude(raw decimal.Decimal) error {
	if raw.IsNegative() || raw.GreaterThanOrEqual(MaxMagnitude) {
		return core.ErrOverflow
	}

	return nil
}
