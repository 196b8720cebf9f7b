package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// ILendingService money market operations and queries.
// Amounts are raw scaled integers at the asset decimals, prices and usd
// values at USDDecimals, ratios at PercentDecimals and rates at InterestRateDecimals.
type ILendingService interface {
	Initialize(ctx context.Context, admin string) error
	SetAdmin(ctx context.Context, admin string) error
	SetPaused(ctx context.Context, paused bool) error
	AddMarket(ctx context.Context, market *Market, reserve *ReserveConfig, model *InterestRateModel) error
	EditTokenInfo(ctx context.Context, assetID, name, symbol string) error
	UpdatePrice(ctx context.Context, assetID string, price decimal.Decimal) error
	SetReserveConfiguration(ctx context.Context, reserve *ReserveConfig) error
	SetInterestRateModel(ctx context.Context, model *InterestRateModel) error

	Deposit(ctx context.Context, user, assetID string, amount decimal.Decimal) error
	Redeem(ctx context.Context, user, assetID string, amount decimal.Decimal) error
	Borrow(ctx context.Context, user, assetID string, amount decimal.Decimal) error
	Repay(ctx context.Context, user, assetID string, amount decimal.Decimal) error
	Liquidate(ctx context.Context, user, liquidator string) error
	ToggleCollateral(ctx context.Context, user, assetID string) error

	GetAdmin(ctx context.Context) (string, error)
	IsPaused(ctx context.Context) (bool, error)
	SupportedAssets(ctx context.Context) ([]string, error)
	GetMarket(ctx context.Context, assetID string) (*Market, error)
	GetPrice(ctx context.Context, assetID string) (decimal.Decimal, error)
	GetReserveConfiguration(ctx context.Context, assetID string) (*ReserveConfig, error)
	GetInterestRateModel(ctx context.Context, assetID string) (*InterestRateModel, error)
	GetLiquidityIndex(ctx context.Context, assetID string) (*LiquidityIndex, error)
	GetTotalBorrowData(ctx context.Context, assetID string) (*TotalBorrowSnapshot, error)
	GetTotalBorrowed(ctx context.Context, assetID string) (decimal.Decimal, error)
	GetTotalReserves(ctx context.Context, assetID string) (decimal.Decimal, error)
	GetAvailableLiquidity(ctx context.Context, assetID string) (decimal.Decimal, error)
	GetPoolUtilizationRate(ctx context.Context, assetID string) (decimal.Decimal, error)
	GetInterestRate(ctx context.Context, assetID string) (decimal.Decimal, error)
	GetLiquidityRate(ctx context.Context, assetID string) (decimal.Decimal, error)
	GetMMTokenPrice(ctx context.Context, assetID string) (decimal.Decimal, error)
	GetTVL(ctx context.Context) (decimal.Decimal, error)
	GetBorrowers(ctx context.Context) ([]string, error)

	GetDeposit(ctx context.Context, user, assetID string) (decimal.Decimal, error)
	GetUserBorrowWithInterest(ctx context.Context, user, assetID string) (decimal.Decimal, error)
	GetUserBorrowingInfo(ctx context.Context, user, assetID string) (*UserBorrowPosition, error)
	IsCollateral(ctx context.Context, user, assetID string) (bool, error)
	GetUserBalances(ctx context.Context, user string) ([]*UserBalance, error)
	GetUserDepositedUsd(ctx context.Context, user string) (decimal.Decimal, error)
	GetUserCollateralUsd(ctx context.Context, user string) (decimal.Decimal, error)
	GetUserBorrowedUsd(ctx context.Context, user string) (decimal.Decimal, error)
	GetUserMaxAllowedBorrowUsd(ctx context.Context, user string) (decimal.Decimal, error)
	GetUserLiquidationThreshold(ctx context.Context, user string) (decimal.Decimal, error)
	GetUserUtilizationRate(ctx context.Context, user string) (decimal.Decimal, error)
	GetAvailableToBorrow(ctx context.Context, user, assetID string) (decimal.Decimal, error)
	GetAvailableToRedeem(ctx context.Context, user, assetID string) (decimal.Decimal, error)
}
