package views

import (
	"context"

	"moneymarket/core"

	"github.com/shopspring/decimal"
)

// Account risk summary of a user
type Account struct {
	User                 string              `json:"user"`
	DepositedUsd         decimal.Decimal     `json:"deposited_usd"`
	CollateralUsd        decimal.Decimal     `json:"collateral_usd"`
	BorrowedUsd          decimal.Decimal     `json:"borrowed_usd"`
	MaxAllowedBorrowUsd  decimal.Decimal     `json:"max_allowed_borrow_usd"`
	UtilizationRate      decimal.Decimal     `json:"utilization_rate"`
	LiquidationThreshold decimal.Decimal     `json:"liquidation_threshold"`
	Balances             []*core.UserBalance `json:"balances"`
}

// Asset position of a user in one market
type Asset struct {
	core.UserBalance
	BorrowRate        decimal.Decimal `json:"borrow_rate"`
	AvailableToBorrow decimal.Decimal `json:"available_to_borrow"`
	AvailableToRedeem decimal.Decimal `json:"available_to_redeem"`
}

// BuildAccount risk summary of user. The liquidation threshold is zero without collateral.
func BuildAccount(ctx context.Context, lending core.ILendingService, user string) (*Account, error) {
	view := &Account{User: user}

	var err error
	for _, f := range []struct {
		dst *decimal.Decimal
		get func(context.Context, string) (decimal.Decimal, error)
	}{
		{&view.DepositedUsd, lending.GetUserDepositedUsd},
		{&view.CollateralUsd, lending.GetUserCollateralUsd},
		{&view.BorrowedUsd, lending.GetUserBorrowedUsd},
		{&view.MaxAllowedBorrowUsd, lending.GetUserMaxAllowedBorrowUsd},
		{&view.UtilizationRate, lending.GetUserUtilizationRate},
	} {
		if *f.dst, err = f.get(ctx, user); err != nil {
			return nil, err
		}
	}

	view.LiquidationThreshold, err = lending.GetUserLiquidationThreshold(ctx, user)
	if err != nil && err != core.ErrNoCollateral {
		return nil, err
	}

	if view.Balances, err = lending.GetUserBalances(ctx, user); err != nil {
		return nil, err
	}

	return view, nil
}

// BuildAsset position of user in the market of assetID
func BuildAsset(ctx context.Context, lending core.ILendingService, user, assetID string) (*Asset, error) {
	balances, err := lending.GetUserBalances(ctx, user)
	if err != nil {
		return nil, err
	}

	view := &Asset{}
	found := false
	for _, b := range balances {
		if b.AssetID == assetID {
			view.UserBalance = *b
			found = true
		}
	}

	if !found {
		return nil, core.ErrUnsupportedToken
	}

	info, err := lending.GetUserBorrowingInfo(ctx, user, assetID)
	if err != nil {
		return nil, err
	}
	view.BorrowRate = info.AverageInterestRate

	if view.AvailableToBorrow, err = lending.GetAvailableToBorrow(ctx, user, assetID); err != nil {
		return nil, err
	}

	if view.AvailableToRedeem, err = lending.GetAvailableToRedeem(ctx, user, assetID); err != nil {
		return nil, err
	}

	return view, nil
}
