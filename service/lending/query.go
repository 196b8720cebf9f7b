package lending

import (
	"context"

	"moneymarket/core"
	calc "moneymarket/internal/lending"

	"github.com/shopspring/decimal"
)

// marketValue evaluates fn against a registered market in a read only unit
func (s *service) marketValue(ctx context.Context, assetID string, fn func(u *unit, m *core.Market) (decimal.Decimal, error)) (decimal.Decimal, error) {
	var v decimal.Decimal
	err := s.view(ctx, func(u *unit) error {
		m, err := u.market(ctx, assetID)
		if err != nil {
			return err
		}

		v, err = fn(u, m)
		return err
	})

	return v, err
}

// accountValue evaluates fn against the user's account in a read only unit
func (s *service) accountValue(ctx context.Context, user string, fn func(a calc.Account) (decimal.Decimal, error)) (decimal.Decimal, error) {
	var v decimal.Decimal
	err := s.view(ctx, func(u *unit) error {
		account, err := u.account(ctx, user)
		if err != nil {
			return err
		}

		v, err = fn(account)
		return err
	})

	return v, err
}

func (s *service) GetAdmin(ctx context.Context) (admin string, err error) {
	err = s.view(ctx, func(u *unit) error {
		var ok bool
		if admin, ok, err = u.ledger.Admin(ctx); err == nil && !ok {
			err = core.ErrUninitialized
		}

		return err
	})

	return
}

func (s *service) IsPaused(ctx context.Context) (paused bool, err error) {
	err = s.view(ctx, func(u *unit) error {
		paused, err = u.ledger.Paused(ctx)
		return err
	})

	return
}

func (s *service) SupportedAssets(ctx context.Context) (assets []string, err error) {
	err = s.view(ctx, func(u *unit) error {
		assets, err = u.ledger.SupportedAssets(ctx)
		return err
	})

	return
}

func (s *service) GetMarket(ctx context.Context, assetID string) (m *core.Market, err error) {
	err = s.view(ctx, func(u *unit) error {
		m, err = u.market(ctx, assetID)
		return err
	})

	return
}

func (s *service) GetPrice(ctx context.Context, assetID string) (decimal.Decimal, error) {
	return s.marketValue(ctx, assetID, func(u *unit, m *core.Market) (decimal.Decimal, error) {
		return u.ledger.Price(ctx, m.AssetID)
	})
}

func (s *service) GetReserveConfiguration(ctx context.Context, assetID string) (c *core.ReserveConfig, err error) {
	err = s.view(ctx, func(u *unit) error {
		c, err = u.ledger.ReserveConfig(ctx, assetID)
		return err
	})

	return
}

func (s *service) GetInterestRateModel(ctx context.Context, assetID string) (model *core.InterestRateModel, err error) {
	err = s.view(ctx, func(u *unit) error {
		model, err = u.ledger.InterestRateModel(ctx, assetID)
		return err
	})

	return
}

// GetLiquidityIndex index accrued up to now
func (s *service) GetLiquidityIndex(ctx context.Context, assetID string) (idx *core.LiquidityIndex, err error) {
	err = s.view(ctx, func(u *unit) error {
		m, err := u.market(ctx, assetID)
		if err != nil {
			return err
		}

		v, err := u.currentIndex(ctx, m)
		if err != nil {
			return err
		}

		idx = &core.LiquidityIndex{AssetID: assetID, Value: v, Timestamp: u.now}
		return nil
	})

	return
}

// GetTotalBorrowData stored pool checkpoint
func (s *service) GetTotalBorrowData(ctx context.Context, assetID string) (snapshot *core.TotalBorrowSnapshot, err error) {
	err = s.view(ctx, func(u *unit) error {
		snapshot, err = u.ledger.TotalBorrow(ctx, assetID)
		return err
	})

	return
}

func (s *service) GetTotalBorrowed(ctx context.Context, assetID string) (decimal.Decimal, error) {
	return s.marketValue(ctx, assetID, func(u *unit, m *core.Market) (decimal.Decimal, error) {
		return u.totalBorrowed(ctx, m)
	})
}

func (s *service) GetTotalReserves(ctx context.Context, assetID string) (decimal.Decimal, error) {
	return s.marketValue(ctx, assetID, func(u *unit, m *core.Market) (decimal.Decimal, error) {
		return u.totalReserves(ctx, m)
	})
}

func (s *service) GetAvailableLiquidity(ctx context.Context, assetID string) (decimal.Decimal, error) {
	return s.marketValue(ctx, assetID, func(u *unit, m *core.Market) (decimal.Decimal, error) {
		return u.liquidity(ctx, m)
	})
}

func (s *service) GetPoolUtilizationRate(ctx context.Context, assetID string) (decimal.Decimal, error) {
	return s.marketValue(ctx, assetID, func(u *unit, m *core.Market) (decimal.Decimal, error) {
		return u.utilization(ctx, m)
	})
}

func (s *service) GetInterestRate(ctx context.Context, assetID string) (decimal.Decimal, error) {
	return s.marketValue(ctx, assetID, func(u *unit, m *core.Market) (decimal.Decimal, error) {
		return u.interestRate(ctx, m)
	})
}

func (s *service) GetLiquidityRate(ctx context.Context, assetID string) (decimal.Decimal, error) {
	return s.marketValue(ctx, assetID, func(u *unit, m *core.Market) (decimal.Decimal, error) {
		return u.liquidityRate(ctx, m)
	})
}

// GetMMTokenPrice tokens one pool share is worth, at the asset decimals
func (s *service) GetMMTokenPrice(ctx context.Context, assetID string) (decimal.Decimal, error) {
	return s.marketValue(ctx, assetID, func(u *unit, m *core.Market) (decimal.Decimal, error) {
		return u.sharePrice(ctx, m)
	})
}

// GetTVL usd value of the tokens held by the pool
func (s *service) GetTVL(ctx context.Context) (tvl decimal.Decimal, err error) {
	err = s.view(ctx, func(u *unit) error {
		tvl, err = u.tvl(ctx)
		return err
	})

	return
}

func (s *service) GetBorrowers(ctx context.Context) (users []string, err error) {
	err = s.view(ctx, func(u *unit) error {
		users, err = u.ledger.Borrowers(ctx)
		return err
	})

	return
}

func (s *service) GetDeposit(ctx context.Context, user, assetID string) (decimal.Decimal, error) {
	return s.marketValue(ctx, assetID, func(u *unit, m *core.Market) (decimal.Decimal, error) {
		return u.deposit(ctx, user, m)
	})
}

func (s *service) GetUserBorrowWithInterest(ctx context.Context, user, assetID string) (decimal.Decimal, error) {
	return s.marketValue(ctx, assetID, func(u *unit, m *core.Market) (decimal.Decimal, error) {
		return u.borrowWithInterest(ctx, user, m)
	})
}

// GetUserBorrowingInfo position as it compounds, a fresh one for zero principal
func (s *service) GetUserBorrowingInfo(ctx context.Context, user, assetID string) (p *core.UserBorrowPosition, err error) {
	err = s.view(ctx, func(u *unit) error {
		m, err := u.market(ctx, assetID)
		if err != nil {
			return err
		}

		p, err = u.borrowInfo(ctx, user, m)
		return err
	})

	return
}

func (s *service) IsCollateral(ctx context.Context, user, assetID string) (flag bool, err error) {
	err = s.view(ctx, func(u *unit) error {
		if _, err := u.market(ctx, assetID); err != nil {
			return err
		}

		flag, err = u.ledger.IsCollateral(ctx, user, assetID)
		return err
	})

	return
}

// GetUserBalances position of user in every registered asset
func (s *service) GetUserBalances(ctx context.Context, user string) (balances []*core.UserBalance, err error) {
	err = s.view(ctx, func(u *unit) error {
		account, err := u.account(ctx, user)
		if err != nil {
			return err
		}

		balances = make([]*core.UserBalance, 0, len(account))
		for _, h := range account {
			shares, err := u.ledger.Shares(ctx, user, h.AssetID)
			if err != nil {
				return err
			}

			balances = append(balances, &core.UserBalance{
				AssetID:      h.AssetID,
				Deposit:      h.Deposit,
				Shares:       shares,
				Borrowed:     h.Borrowed,
				IsCollateral: h.IsCollateral,
			})
		}

		return nil
	})

	return
}

func (s *service) GetUserDepositedUsd(ctx context.Context, user string) (decimal.Decimal, error) {
	return s.accountValue(ctx, user, calc.Account.DepositedUsd)
}

func (s *service) GetUserCollateralUsd(ctx context.Context, user string) (decimal.Decimal, error) {
	return s.accountValue(ctx, user, calc.Account.CollateralUsd)
}

func (s *service) GetUserBorrowedUsd(ctx context.Context, user string) (decimal.Decimal, error) {
	return s.accountValue(ctx, user, calc.Account.BorrowedUsd)
}

func (s *service) GetUserMaxAllowedBorrowUsd(ctx context.Context, user string) (decimal.Decimal, error) {
	return s.accountValue(ctx, user, calc.Account.MaxAllowedBorrowUsd)
}

// GetUserLiquidationThreshold fails with ErrNoCollateral when nothing is flagged
func (s *service) GetUserLiquidationThreshold(ctx context.Context, user string) (decimal.Decimal, error) {
	return s.accountValue(ctx, user, calc.Account.LiquidationThreshold)
}

func (s *service) GetUserUtilizationRate(ctx context.Context, user string) (decimal.Decimal, error) {
	return s.accountValue(ctx, user, calc.Account.UtilizationRate)
}

func (s *service) GetAvailableToBorrow(ctx context.Context, user, assetID string) (decimal.Decimal, error) {
	return s.marketValue(ctx, assetID, func(u *unit, m *core.Market) (decimal.Decimal, error) {
		return u.availableToBorrow(ctx, user, m)
	})
}

func (s *service) GetAvailableToRedeem(ctx context.Context, user, assetID string) (decimal.Decimal, error) {
	return s.marketValue(ctx, assetID, func(u *unit, m *core.Market) (decimal.Decimal, error) {
		account, err := u.account(ctx, user)
		if err != nil {
			return decimal.Zero, err
		}

		h, _ := account.Find(m.AssetID)

		liquidity, err := u.liquidity(ctx, m)
		if err != nil {
			return decimal.Zero, err
		}

		return account.AvailableToRedeem(h, liquidity)
	})
}
