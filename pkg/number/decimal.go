package number

import (
	"github.com/shopspring/decimal"
)

// Decimal parses v and returns zero when it is not a number
func Decimal(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

// Min returns the smaller one
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// SubFloor returns a - b, or zero when b is greater than a
func SubFloor(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThanOrEqual(b) {
		return decimal.Zero
	}
	return a.Sub(b)
}
