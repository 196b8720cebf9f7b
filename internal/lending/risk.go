package lending

import (
	"moneymarket/core"
	"moneymarket/pkg/number"

	"github.com/shopspring/decimal"
)

// Holding a user's position in one asset as the risk engine sees it
type Holding struct {
	AssetID              string
	Decimals             int32
	Price                decimal.Decimal
	Deposit              decimal.Decimal
	Borrowed             decimal.Decimal
	IsCollateral         bool
	LoanToValueRatio     decimal.Decimal
	LiquidationThreshold decimal.Decimal
}

// USDValue amount of an asset in usd at USDDecimals
func USDValue(amount, price decimal.Decimal, decimals int32) (decimal.Decimal, error) {
	v := number.FromScaled(amount, decimals).Mul(number.FromScaled(price, core.USDDecimals))
	return number.ToScaled(v, core.USDDecimals)
}

// Account every holding of one user
type Account []*Holding

// Find holding of asset
func (a Account) Find(assetID string) (*Holding, bool) {
	for _, h := range a {
		if h.AssetID == assetID {
			return h, true
		}
	}

	return nil, false
}

func (a Account) sum(pick func(h *Holding) (decimal.Decimal, bool, error)) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, h := range a {
		v, ok, err := pick(h)
		if err != nil {
			return decimal.Zero, err
		}
		if !ok {
			continue
		}

		if total, err = number.Add(total, v); err != nil {
			return decimal.Zero, err
		}
	}

	return total, nil
}

// DepositedUsd usd value of every deposit
func (a Account) DepositedUsd() (decimal.Decimal, error) {
	return a.sum(func(h *Holding) (decimal.Decimal, bool, error) {
		v, err := USDValue(h.Deposit, h.Price, h.Decimals)
		return v, true, err
	})
}

// CollateralUsd usd value of deposits flagged as collateral
func (a Account) CollateralUsd() (decimal.Decimal, error) {
	return a.sum(func(h *Holding) (decimal.Decimal, bool, error) {
		if !h.IsCollateral {
			return decimal.Zero, false, nil
		}

		v, err := USDValue(h.Deposit, h.Price, h.Decimals)
		return v, true, err
	})
}

// BorrowedUsd usd value of every borrow with interest
func (a Account) BorrowedUsd() (decimal.Decimal, error) {
	return a.sum(func(h *Holding) (decimal.Decimal, bool, error) {
		v, err := USDValue(h.Borrowed, h.Price, h.Decimals)
		return v, true, err
	})
}

// MaxAllowedBorrowUsd sum of collateral usd * ltv / 100%
func (a Account) MaxAllowedBorrowUsd() (decimal.Decimal, error) {
	return a.sum(func(h *Holding) (decimal.Decimal, bool, error) {
		if !h.IsCollateral {
			return decimal.Zero, false, nil
		}

		usd, err := USDValue(h.Deposit, h.Price, h.Decimals)
		if err != nil {
			return decimal.Zero, false, err
		}

		v, err := number.MulDiv(usd, h.LoanToValueRatio, core.HundredPercent)
		return v, true, err
	})
}

// LiquidationThreshold usd weighted liquidation threshold of the collateral.
// Fails with ErrNoCollateral when nothing is flagged or the collateral is worth nothing.
func (a Account) LiquidationThreshold() (decimal.Decimal, error) {
	weighted, err := a.sum(func(h *Holding) (decimal.Decimal, bool, error) {
		if !h.IsCollateral {
			return decimal.Zero, false, nil
		}

		usd, err := USDValue(h.Deposit, h.Price, h.Decimals)
		if err != nil {
			return decimal.Zero, false, err
		}

		v, err := number.MulDiv(usd, h.LiquidationThreshold, core.HundredPercent)
		return v, true, err
	})
	if err != nil {
		return decimal.Zero, err
	}

	collateral, err := a.CollateralUsd()
	if err != nil {
		return decimal.Zero, err
	}

	if collateral.IsZero() {
		return decimal.Zero, core.ErrNoCollateral
	}

	return number.MulDiv(weighted, core.HundredPercent, collateral)
}

// UtilizationRate borrowed usd * 100% / collateral usd, zero without collateral
func (a Account) UtilizationRate() (decimal.Decimal, error) {
	collateral, err := a.CollateralUsd()
	if err != nil {
		return decimal.Zero, err
	}

	if collateral.IsZero() {
		return decimal.Zero, nil
	}

	borrowed, err := a.BorrowedUsd()
	if err != nil {
		return decimal.Zero, err
	}

	return number.MulDiv(borrowed, core.HundredPercent, collateral)
}

// AvailableToBorrow tokens of h that can still be borrowed, capped by liquidity
func (a Account) AvailableToBorrow(h *Holding, liquidity decimal.Decimal) (decimal.Decimal, error) {
	max, err := a.MaxAllowedBorrowUsd()
	if err != nil {
		return decimal.Zero, err
	}

	borrowed, err := a.BorrowedUsd()
	if err != nil {
		return decimal.Zero, err
	}

	if max.LessThanOrEqual(borrowed) {
		return decimal.Zero, nil
	}

	available, err := usdToTokens(max.Sub(borrowed), h.Price, h.Decimals)
	if err != nil {
		return decimal.Zero, err
	}

	return number.Min(available, liquidity), nil
}

// AvailableToRedeem tokens of h that can be withdrawn while the remaining
// collateral still covers the borrows at the liquidation threshold
func (a Account) AvailableToRedeem(h *Holding, liquidity decimal.Decimal) (decimal.Decimal, error) {
	if !h.IsCollateral {
		return h.Deposit, nil
	}

	if h.Deposit.IsZero() {
		return decimal.Zero, nil
	}

	collateral, err := a.CollateralUsd()
	if err != nil {
		return decimal.Zero, err
	}

	required, err := a.RequiredCollateralUsd()
	if err == core.ErrNoCollateral {
		return decimal.Zero, nil
	} else if err != nil {
		return decimal.Zero, err
	}

	if collateral.LessThanOrEqual(required) {
		return decimal.Zero, nil
	}

	available, err := usdToTokens(collateral.Sub(required), h.Price, h.Decimals)
	if err != nil {
		return decimal.Zero, err
	}

	return number.Min(number.Min(available, h.Deposit), liquidity), nil
}

// RequiredCollateralUsd collateral needed to keep borrows under the liquidation threshold.
// Fails with ErrNoCollateral when there are borrows and the collateral backs none of them.
func (a Account) RequiredCollateralUsd() (decimal.Decimal, error) {
	borrowed, err := a.BorrowedUsd()
	if err != nil || borrowed.IsZero() {
		return decimal.Zero, err
	}

	threshold, err := a.LiquidationThreshold()
	if err != nil {
		return decimal.Zero, err
	}

	if threshold.IsZero() {
		return decimal.Zero, core.ErrNoCollateral
	}

	return number.MulDiv(borrowed, core.HundredPercent, threshold)
}

func usdToTokens(usd, price decimal.Decimal, decimals int32) (decimal.Decimal, error) {
	v, err := number.Div(number.FromScaled(usd, core.USDDecimals), number.FromScaled(price, core.USDDecimals))
	if err != nil {
		return decimal.Zero, err
	}

	return number.ToScaled(v, decimals)
}
