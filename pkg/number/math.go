package number

import (
	"moneymarket/core"

	"github.com/shopspring/decimal"
)

var ln2 = Decimal("0.6931471805599453094172321214581765680755001343602552541206800094933936")

// exp(x) leaves the magnitude range well before x reaches this bound
var expBound = decimal.New(100, 0)

const maxSeriesTerms = 400

// Ln natural logarithm of a positive value
func Ln(x decimal.Decimal) (decimal.Decimal, error) {
	if !x.IsPositive() {
		return decimal.Zero, core.ErrInvalidArgument
	}

	if x.Equal(one) {
		return decimal.Zero, nil
	}

	prec := Precision + guardDigits

	// x = y * 2^k with y in [0.5, 2)
	y, k := x, int64(0)
	for y.GreaterThanOrEqual(two) {
		y = y.Mul(half)
		k++
	}
	for y.LessThan(half) {
		y = y.Mul(two)
		k--
	}

	// ln(y) = 2 * atanh(z), z = (y-1)/(y+1), |z| <= 1/3
	z := y.Sub(one).DivRound(y.Add(one), prec)
	z2 := z.Mul(z).Truncate(prec)

	sum := z
	term := z
	for n := int64(1); n < maxSeriesTerms; n++ {
		term = term.Mul(z2).Truncate(prec)
		t := term.DivRound(decimal.NewFromInt(2*n+1), prec)
		if t.IsZero() {
			break
		}
		sum = sum.Add(t)
	}

	result := sum.Mul(two).Add(ln2.Mul(decimal.NewFromInt(k)))
	return result.Truncate(Precision), nil
}

// Exp e raised to x
func Exp(x decimal.Decimal) (decimal.Decimal, error) {
	if x.IsZero() {
		return one, nil
	}

	if x.GreaterThan(expBound) {
		return decimal.Zero, core.ErrOverflow
	}

	prec := Precision + guardDigits

	// exp(x) = exp(x / 2^k) ^ (2^k)
	r, k := x, 0
	for r.Abs().GreaterThan(half) {
		r = r.Mul(half)
		k++
	}

	sum := one
	term := one
	for n := int64(1); n < maxSeriesTerms; n++ {
		term = term.Mul(r).DivRound(decimal.NewFromInt(n), prec)
		if term.IsZero() {
			break
		}
		sum = sum.Add(term)
	}

	for ; k > 0; k-- {
		sum = sum.Mul(sum).Truncate(prec)
	}

	return sum.Truncate(Precision), nil
}

// Pow raises a positive base to a non-negative exponent. The whole part of
// the exponent is applied by repeated multiplication so integral powers are
// exact up to Precision, the fraction goes through exp(f * ln(base)).
func Pow(base, exponent decimal.Decimal) (decimal.Decimal, error) {
	if exponent.IsNegative() {
		return decimal.Zero, core.ErrInvalidArgument
	}

	if exponent.IsZero() {
		return one, nil
	}

	if !base.IsPositive() {
		if base.IsZero() {
			return decimal.Zero, nil
		}
		return decimal.Zero, core.ErrInvalidArgument
	}

	whole := exponent.Truncate(0)
	frac := exponent.Sub(whole)

	result, err := powInt(base, whole.BigInt().Uint64())
	if err != nil {
		return decimal.Zero, err
	}

	if !frac.IsZero() {
		l, err := Ln(base)
		if err != nil {
			return decimal.Zero, err
		}

		f, err := Exp(l.Mul(frac).Truncate(Precision + guardDigits))
		if err != nil {
			return decimal.Zero, err
		}

		result = result.Mul(f)
	}

	return result.Truncate(Precision), nil
}

func powInt(base decimal.Decimal, n uint64) (decimal.Decimal, error) {
	prec := Precision + guardDigits
	result := one
	b := base
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(b).Truncate(prec)
		}
		n >>= 1
		if n > 0 {
			b = b.Mul(b).Truncate(prec)
			if b.GreaterThanOrEqual(MaxMagnitude) {
				return decimal.Zero, core.ErrOverflow
			}
		}
	}

	if result.GreaterThanOrEqual(MaxMagnitude) {
		return decimal.Zero, core.ErrOverflow
	}

	return result, nil
}
