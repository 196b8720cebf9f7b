package ledger

import (
	"context"

	"moneymarket/core"

	"github.com/shopspring/decimal"
)

// Market fails with ErrUnsupportedToken for unknown assets
func (l *Ledger) Market(ctx context.Context, assetID string) (*core.Market, error) {
	var m core.Market
	if ok, err := l.get(ctx, assetKey("market", assetID), &m); err != nil {
		return nil, err
	} else if !ok {
		return nil, core.ErrUnsupportedToken
	}

	return &m, nil
}

func (l *Ledger) SaveMarket(ctx context.Context, m *core.Market) error {
	return l.put(ctx, assetKey("market", m.AssetID), m)
}

func (l *Ledger) ReserveConfig(ctx context.Context, assetID string) (*core.ReserveConfig, error) {
	var c core.ReserveConfig
	if ok, err := l.get(ctx, assetKey("reserve", assetID), &c); err != nil {
		return nil, err
	} else if !ok {
		return nil, core.ErrUnsupportedToken
	}

	return &c, nil
}

func (l *Ledger) SaveReserveConfig(ctx context.Context, c *core.ReserveConfig) error {
	return l.put(ctx, assetKey("reserve", c.AssetID), c)
}

func (l *Ledger) InterestRateModel(ctx context.Context, assetID string) (*core.InterestRateModel, error) {
	var m core.InterestRateModel
	if ok, err := l.get(ctx, assetKey("rate_model", assetID), &m); err != nil {
		return nil, err
	} else if !ok {
		return nil, core.ErrUnsupportedToken
	}

	return &m, nil
}

func (l *Ledger) SaveInterestRateModel(ctx context.Context, m *core.InterestRateModel) error {
	return l.put(ctx, assetKey("rate_model", m.AssetID), m)
}

func (l *Ledger) LiquidityIndex(ctx context.Context, assetID string) (*core.LiquidityIndex, error) {
	var idx core.LiquidityIndex
	if ok, err := l.get(ctx, assetKey("index", assetID), &idx); err != nil {
		return nil, err
	} else if !ok {
		return nil, core.ErrUnsupportedToken
	}

	return &idx, nil
}

func (l *Ledger) SaveLiquidityIndex(ctx context.Context, idx *core.LiquidityIndex) error {
	return l.put(ctx, assetKey("index", idx.AssetID), idx)
}

func (l *Ledger) TotalBorrow(ctx context.Context, assetID string) (*core.TotalBorrowSnapshot, error) {
	var s core.TotalBorrowSnapshot
	if ok, err := l.get(ctx, assetKey("total_borrow", assetID), &s); err != nil {
		return nil, err
	} else if !ok {
		return nil, core.ErrUnsupportedToken
	}

	return &s, nil
}

func (l *Ledger) SaveTotalBorrow(ctx context.Context, s *core.TotalBorrowSnapshot) error {
	return l.put(ctx, assetKey("total_borrow", s.AssetID), s)
}

// Price zero until the first update
func (l *Ledger) Price(ctx context.Context, assetID string) (decimal.Decimal, error) {
	price := decimal.Zero
	_, err := l.get(ctx, assetKey("price", assetID), &price)
	return price, err
}

func (l *Ledger) SavePrice(ctx context.Context, assetID string, price decimal.Decimal) error {
	return l.put(ctx, assetKey("price", assetID), price)
}
