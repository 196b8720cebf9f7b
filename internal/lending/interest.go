package lending

import (
	"moneymarket/core"
	"moneymarket/pkg/number"

	"github.com/shopspring/decimal"
)

// BorrowedWithInterest compounds amount at rate over elapsed seconds
//
//	owed = amount * (1 + rate/100) ^ (elapsed / year)
func BorrowedWithInterest(amount, rate decimal.Decimal, elapsed int64, decimals int32) (decimal.Decimal, error) {
	if amount.IsZero() {
		return decimal.Zero, nil
	}

	if elapsed < 0 {
		elapsed = 0
	}

	base, err := onePlusRate(rate)
	if err != nil {
		return decimal.Zero, err
	}

	expRaw, err := number.MulDiv(decimal.NewFromInt(elapsed), core.InterestRateMultiplier, yearInSeconds)
	if err != nil {
		return decimal.Zero, err
	}

	factor, err := number.Pow(base, number.FromScaled(expRaw, core.InterestRateDecimals))
	if err != nil {
		return decimal.Zero, err
	}

	return number.ToScaled(number.FromScaled(amount, decimals).Mul(factor), decimals)
}

// BlendRate value weighted rate of the owed amount and a new borrow at spot
//
//	rate' = (owed * rate + amount * spot) / (owed + amount)
func BlendRate(owed, rate, amount, spot decimal.Decimal, decimals int32) (decimal.Decimal, error) {
	total := number.FromScaled(owed, decimals).Add(number.FromScaled(amount, decimals))

	weighted := number.FromScaled(owed, decimals).Mul(number.FromScaled(rate, core.InterestRateDecimals)).
		Add(number.FromScaled(amount, decimals).Mul(number.FromScaled(spot, core.InterestRateDecimals)))

	v, err := number.Div(weighted, total)
	if err != nil {
		return decimal.Zero, err
	}

	return number.ToScaled(v, core.InterestRateDecimals)
}

// AnnualIncome yearly interest principal yields at rate, at InterestRateDecimals
func AnnualIncome(principal, rate decimal.Decimal, decimals int32) (decimal.Decimal, error) {
	fraction, err := number.Quo(rate, core.Hundred)
	if err != nil {
		return decimal.Zero, err
	}

	v := number.FromScaled(principal, decimals).Mul(number.FromScaled(fraction, core.InterestRateDecimals))
	return number.ToScaled(v, core.InterestRateDecimals)
}

// PoolAverageRate 100 * income / total, zero when nothing is borrowed
func PoolAverageRate(income, total decimal.Decimal, decimals int32) (decimal.Decimal, error) {
	if total.IsZero() {
		return decimal.Zero, nil
	}

	v, err := number.Div(number.FromScaled(income, core.InterestRateDecimals), number.FromScaled(total, decimals))
	if err != nil {
		return decimal.Zero, err
	}

	raw, err := number.ToScaled(v, core.InterestRateDecimals)
	if err != nil {
		return decimal.Zero, err
	}

	return number.Mul(raw, core.Hundred)
}
