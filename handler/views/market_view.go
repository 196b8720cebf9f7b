package views

import (
	"context"

	"moneymarket/core"

	"github.com/shopspring/decimal"
)

// Market market view
type Market struct {
	AssetID              string          `json:"asset_id"`
	TokenAddress         string          `json:"token_address"`
	Name                 string          `json:"name"`
	Symbol               string          `json:"symbol"`
	Decimals             int32           `json:"decimals"`
	Price                decimal.Decimal `json:"price"`
	LoanToValueRatio     decimal.Decimal `json:"loan_to_value_ratio"`
	LiquidationThreshold decimal.Decimal `json:"liquidation_threshold"`
	TotalBorrowed        decimal.Decimal `json:"total_borrowed"`
	TotalReserves        decimal.Decimal `json:"total_reserves"`
	AvailableLiquidity   decimal.Decimal `json:"available_liquidity"`
	UtilizationRate      decimal.Decimal `json:"utilization_rate"`
	BorrowRate           decimal.Decimal `json:"borrow_rate"`
	SupplyRate           decimal.Decimal `json:"supply_rate"`
	MMTokenPrice         decimal.Decimal `json:"mm_token_price"`
}

// BuildMarket live view of the market of assetID
func BuildMarket(ctx context.Context, lending core.ILendingService, assetID string) (*Market, error) {
	m, err := lending.GetMarket(ctx, assetID)
	if err != nil {
		return nil, err
	}

	reserve, err := lending.GetReserveConfiguration(ctx, assetID)
	if err != nil {
		return nil, err
	}

	view := &Market{
		AssetID:              m.AssetID,
		TokenAddress:         m.TokenAddress,
		Name:                 m.Name,
		Symbol:               m.Symbol,
		Decimals:             m.Decimals,
		LoanToValueRatio:     reserve.LoanToValueRatio,
		LiquidationThreshold: reserve.LiquidationThreshold,
	}

	for _, f := range []struct {
		dst *decimal.Decimal
		get func(context.Context, string) (decimal.Decimal, error)
	}{
		{&view.Price, lending.GetPrice},
		{&view.TotalBorrowed, lending.GetTotalBorrowed},
		{&view.TotalReserves, lending.GetTotalReserves},
		{&view.AvailableLiquidity, lending.GetAvailableLiquidity},
		{&view.UtilizationRate, lending.GetPoolUtilizationRate},
		{&view.BorrowRate, lending.GetInterestRate},
		{&view.SupplyRate, lending.GetLiquidityRate},
		{&view.MMTokenPrice, lending.GetMMTokenPrice},
	} {
		if *f.dst, err = f.get(ctx, assetID); err != nil {
			return nil, err
		}
	}

	return view, nil
}
