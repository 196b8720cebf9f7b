package lending

import (
	"moneymarket/core"
	"moneymarket/pkg/number"

	"github.com/shopspring/decimal"
)

// UtilizationRate pool utilization at PercentDecimals
// utilization = borrowed * 100% / reserves, zero without reserves
func UtilizationRate(borrowed, reserves decimal.Decimal) (decimal.Decimal, error) {
	if reserves.IsZero() {
		return decimal.Zero, nil
	}

	return number.MulDiv(borrowed, core.HundredPercent, reserves)
}

// InterestRate borrow rate of the curve at utilization u
//
//	u <= optimal: min + u * (safe - min) / optimal
//	u > optimal:  safe + growth * (u - optimal) / (100% - optimal)
func InterestRate(model *core.InterestRateModel, u decimal.Decimal) (decimal.Decimal, error) {
	optimal := model.OptimalUtilizationRatio

	if u.LessThanOrEqual(optimal) {
		spread, err := number.Sub(model.SafeBorrowMaxRate, model.MinRate)
		if err != nil {
			return decimal.Zero, err
		}

		slope, err := number.MulDiv(u, spread, optimal)
		if err != nil {
			return decimal.Zero, err
		}

		return number.Add(model.MinRate, slope)
	}

	excess, err := number.Sub(u, optimal)
	if err != nil {
		return decimal.Zero, err
	}

	rest, err := number.Sub(core.HundredPercent, optimal)
	if err != nil {
		return decimal.Zero, err
	}

	jump, err := number.MulDiv(model.RateGrowthFactor, excess, rest)
	if err != nil {
		return decimal.Zero, err
	}

	return number.Add(model.SafeBorrowMaxRate, jump)
}

// TotalReserves liquidity plus everything lent out with interest
func TotalReserves(liquidity, borrowedWithInterest decimal.Decimal) (decimal.Decimal, error) {
	return number.Add(liquidity, borrowedWithInterest)
}
