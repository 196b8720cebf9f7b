package lending

import (
	"moneymarket/core"
	"moneymarket/pkg/number"

	"github.com/shopspring/decimal"
)

var yearInSeconds = decimal.NewFromInt(core.YearInSeconds)

// LiquidityRate yearly deposit yield at InterestRateDecimals
// rate = income * 100 / reserves, zero without reserves
func LiquidityRate(income, reserves decimal.Decimal, decimals int32) (decimal.Decimal, error) {
	if reserves.IsZero() {
		return decimal.Zero, nil
	}

	v, err := number.Div(number.FromScaled(income, core.InterestRateDecimals).Mul(core.Hundred), number.FromScaled(reserves, decimals))
	if err != nil {
		return decimal.Zero, err
	}

	return number.ToScaled(v, core.InterestRateDecimals)
}

// NextIndex accrues the liquidity rate over elapsed seconds
// index' = index + elapsed * ln(1 + rate/100) / year
func NextIndex(index, liquidityRate decimal.Decimal, elapsed int64) (decimal.Decimal, error) {
	if elapsed <= 0 {
		return index, nil
	}

	growth, err := onePlusRate(liquidityRate)
	if err != nil {
		return decimal.Zero, err
	}

	ln, err := number.Ln(growth)
	if err != nil {
		return decimal.Zero, err
	}

	lnRaw, err := number.ToScaled(ln, core.InterestRateDecimals)
	if err != nil {
		return decimal.Zero, err
	}

	delta, err := number.MulDiv(decimal.NewFromInt(elapsed), lnRaw, yearInSeconds)
	if err != nil {
		return decimal.Zero, err
	}

	return number.Add(delta, index)
}

// SharePrice tokens per pool share, exp(index) at the asset decimals
func SharePrice(index decimal.Decimal, decimals int32) (decimal.Decimal, error) {
	price, err := number.Exp(number.FromScaled(index, core.InterestRateDecimals))
	if err != nil {
		return decimal.Zero, err
	}

	return number.ToScaled(price, decimals)
}

// SharesFor pool shares worth amount tokens
func SharesFor(amount, sharePrice decimal.Decimal, decimals int32) (decimal.Decimal, error) {
	v, err := number.Div(number.FromScaled(amount, decimals), number.FromScaled(sharePrice, decimals))
	if err != nil {
		return decimal.Zero, err
	}

	return number.ToScaled(v, decimals)
}

// TokensFor tokens that shares are worth
func TokensFor(shares, sharePrice decimal.Decimal, decimals int32) (decimal.Decimal, error) {
	v := number.FromScaled(shares, decimals).Mul(number.FromScaled(sharePrice, decimals))
	return number.ToScaled(v, decimals)
}

// onePlusRate 1 + rate/100 where rate is a percent at InterestRateDecimals
func onePlusRate(rate decimal.Decimal) (decimal.Decimal, error) {
	fraction, err := number.Quo(rate, core.Hundred)
	if err != nil {
		return decimal.Zero, err
	}

	raw, err := number.Add(fraction, core.InterestRateMultiplier)
	if err != nil {
		return decimal.Zero, err
	}

	return number.FromScaled(raw, core.InterestRateDecimals), nil
}
