package lending

import (
	"context"

	"moneymarket/core"

	"github.com/shopspring/decimal"
)

func (s *service) Initialize(ctx context.Context, admin string) error {
	return s.run(ctx, "initialize", func(u *unit) error {
		if !core.ValidIdentifier(admin) {
			return core.ErrInvalidArgument
		}

		if _, ok, err := u.ledger.Admin(ctx); err != nil {
			return err
		} else if ok {
			return core.ErrAlreadyInitialized
		}

		if err := s.auth.Require(ctx, admin); err != nil {
			return err
		}

		if err := u.ledger.SetAdmin(ctx, admin); err != nil {
			return err
		}

		u.emit(core.ActionAdmin, "", admin, "", decimal.Zero)
		return nil
	})
}

func (s *service) SetAdmin(ctx context.Context, admin string) error {
	return s.run(ctx, "set_admin", func(u *unit) error {
		if !core.ValidIdentifier(admin) {
			return core.ErrInvalidArgument
		}

		if err := u.requireAdmin(ctx); err != nil {
			return err
		}

		if err := u.ledger.SetAdmin(ctx, admin); err != nil {
			return err
		}

		u.emit(core.ActionAdmin, "", admin, "", decimal.Zero)
		return nil
	})
}

func (s *service) SetPaused(ctx context.Context, paused bool) error {
	return s.run(ctx, "set_paused", func(u *unit) error {
		if err := u.requireAdmin(ctx); err != nil {
			return err
		}

		if err := u.ledger.SetPaused(ctx, paused); err != nil {
			return err
		}

		flag := decimal.Zero
		if paused {
			flag = decimal.New(1, 0)
		}

		u.emit(core.ActionPause, "", "", "", flag)
		return nil
	})
}

// AddMarket registers a market with its reserve config and rate model. The
// pool starts with an empty borrow snapshot and a zero index.
func (s *service) AddMarket(ctx context.Context, market *core.Market, reserve *core.ReserveConfig, model *core.InterestRateModel) error {
	return s.run(ctx, "add_market", func(u *unit) error {
		if err := u.requireAdmin(ctx); err != nil {
			return err
		}

		if err := market.Validate(); err != nil {
			return err
		}

		if reserve == nil || model == nil {
			return core.ErrInvalidArgument
		}

		config, rates := *reserve, *model
		config.AssetID = market.AssetID
		rates.AssetID = market.AssetID
		if err := config.Validate(); err != nil {
			return err
		}

		if err := rates.Validate(); err != nil {
			return err
		}

		if ok, err := u.ledger.IsSupported(ctx, market.AssetID); err != nil {
			return err
		} else if ok {
			return core.ErrAlreadySupportedToken
		}

		if err := u.ledger.AddSupportedAsset(ctx, market.AssetID); err != nil {
			return err
		}

		if err := u.ledger.SaveMarket(ctx, market); err != nil {
			return err
		}

		if err := u.ledger.SaveReserveConfig(ctx, &config); err != nil {
			return err
		}

		if err := u.ledger.SaveInterestRateModel(ctx, &rates); err != nil {
			return err
		}

		if err := u.ledger.SaveTotalBorrow(ctx, &core.TotalBorrowSnapshot{
			AssetID:              market.AssetID,
			TotalBorrowed:        decimal.Zero,
			ExpectedAnnualIncome: decimal.Zero,
			AverageInterestRate:  decimal.Zero,
			Timestamp:            u.now,
		}); err != nil {
			return err
		}

		if err := u.ledger.SaveLiquidityIndex(ctx, &core.LiquidityIndex{
			AssetID:   market.AssetID,
			Value:     decimal.Zero,
			Timestamp: u.now,
		}); err != nil {
			return err
		}

		u.emit(core.ActionMarket, "", "", market.AssetID, decimal.Zero)
		return nil
	})
}

// EditTokenInfo changes the display name and symbol, address and decimals stay
func (s *service) EditTokenInfo(ctx context.Context, assetID, name, symbol string) error {
	return s.run(ctx, "edit_token_info", func(u *unit) error {
		if err := u.requireAdmin(ctx); err != nil {
			return err
		}

		m, err := u.market(ctx, assetID)
		if err != nil {
			return err
		}

		m.Name = name
		m.Symbol = symbol
		if err := u.ledger.SaveMarket(ctx, m); err != nil {
			return err
		}

		u.emit(core.ActionMarket, "", "", assetID, decimal.Zero)
		return nil
	})
}

func (s *service) UpdatePrice(ctx context.Context, assetID string, price decimal.Decimal) error {
	return s.run(ctx, "update_price", func(u *unit) error {
		if err := u.requireAdmin(ctx); err != nil {
			return err
		}

		if !core.IsAmount(price) {
			return core.ErrInvalidArgument
		}

		if _, err := u.market(ctx, assetID); err != nil {
			return err
		}

		if err := u.ledger.SavePrice(ctx, assetID, price); err != nil {
			return err
		}

		u.emit(core.ActionPrice, "", "", assetID, price)
		return nil
	})
}

func (s *service) SetReserveConfiguration(ctx context.Context, reserve *core.ReserveConfig) error {
	return s.run(ctx, "set_reserve_configuration", func(u *unit) error {
		if err := u.requireAdmin(ctx); err != nil {
			return err
		}

		if err := reserve.Validate(); err != nil {
			return err
		}

		if _, err := u.market(ctx, reserve.AssetID); err != nil {
			return err
		}

		if err := u.ledger.SaveReserveConfig(ctx, reserve); err != nil {
			return err
		}

		u.emit(core.ActionMarket, "", "", reserve.AssetID, decimal.Zero)
		return nil
	})
}

func (s *service) SetInterestRateModel(ctx context.Context, model *core.InterestRateModel) error {
	return s.run(ctx, "set_interest_rate_model", func(u *unit) error {
		if err := u.requireAdmin(ctx); err != nil {
			return err
		}

		if err := model.Validate(); err != nil {
			return err
		}

		if _, err := u.market(ctx, model.AssetID); err != nil {
			return err
		}

		if err := u.ledger.SaveInterestRateModel(ctx, model); err != nil {
			return err
		}

		u.emit(core.ActionMarket, "", "", model.AssetID, decimal.Zero)
		return nil
	})
}
