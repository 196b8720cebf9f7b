package lending

import (
	"context"

	"moneymarket/core"
	calc "moneymarket/internal/lending"
	"moneymarket/pkg/number"

	"github.com/shopspring/decimal"
)

func (u *unit) requireAdmin(ctx context.Context) error {
	admin, ok, err := u.ledger.Admin(ctx)
	if err != nil {
		return err
	}

	if !ok {
		return core.ErrUninitialized
	}

	return u.s.auth.Require(ctx, admin)
}

func (u *unit) requireActive(ctx context.Context) error {
	paused, err := u.ledger.Paused(ctx)
	if err != nil {
		return err
	}

	if paused {
		return core.ErrPaused
	}

	return nil
}

// liquidity tokens of the asset held by the pool
func (u *unit) liquidity(ctx context.Context, m *core.Market) (decimal.Decimal, error) {
	return u.balanceOf(ctx, m.TokenAddress, u.s.pool)
}

// totalBorrowed pool borrows compounded at the pool average rate
func (u *unit) totalBorrowed(ctx context.Context, m *core.Market) (decimal.Decimal, error) {
	snapshot, err := u.ledger.TotalBorrow(ctx, m.AssetID)
	if err != nil {
		return decimal.Zero, err
	}

	return calc.BorrowedWithInterest(
		snapshot.TotalBorrowed,
		snapshot.AverageInterestRate,
		u.now-snapshot.Timestamp,
		m.Decimals,
	)
}

func (u *unit) totalReserves(ctx context.Context, m *core.Market) (decimal.Decimal, error) {
	liquidity, err := u.liquidity(ctx, m)
	if err != nil {
		return decimal.Zero, err
	}

	borrowed, err := u.totalBorrowed(ctx, m)
	if err != nil {
		return decimal.Zero, err
	}

	return calc.TotalReserves(liquidity, borrowed)
}

func (u *unit) utilization(ctx context.Context, m *core.Market) (decimal.Decimal, error) {
	reserves, err := u.totalReserves(ctx, m)
	if err != nil {
		return decimal.Zero, err
	}

	borrowed, err := u.totalBorrowed(ctx, m)
	if err != nil {
		return decimal.Zero, err
	}

	return calc.UtilizationRate(borrowed, reserves)
}

func (u *unit) interestRate(ctx context.Context, m *core.Market) (decimal.Decimal, error) {
	model, err := u.ledger.InterestRateModel(ctx, m.AssetID)
	if err != nil {
		return decimal.Zero, err
	}

	utilization, err := u.utilization(ctx, m)
	if err != nil {
		return decimal.Zero, err
	}

	return calc.InterestRate(model, utilization)
}

func (u *unit) liquidityRate(ctx context.Context, m *core.Market) (decimal.Decimal, error) {
	snapshot, err := u.ledger.TotalBorrow(ctx, m.AssetID)
	if err != nil {
		return decimal.Zero, err
	}

	reserves, err := u.totalReserves(ctx, m)
	if err != nil {
		return decimal.Zero, err
	}

	return calc.LiquidityRate(snapshot.ExpectedAnnualIncome, reserves, m.Decimals)
}

// currentIndex stored index accrued up to now
func (u *unit) currentIndex(ctx context.Context, m *core.Market) (decimal.Decimal, error) {
	idx, err := u.ledger.LiquidityIndex(ctx, m.AssetID)
	if err != nil {
		return decimal.Zero, err
	}

	rate, err := u.liquidityRate(ctx, m)
	if err != nil {
		return decimal.Zero, err
	}

	return calc.NextIndex(idx.Value, rate, u.now-idx.Timestamp)
}

// refreshIndex checkpoints the index at now
func (u *unit) refreshIndex(ctx context.Context, m *core.Market) error {
	v, err := u.currentIndex(ctx, m)
	if err != nil {
		return err
	}

	return u.ledger.SaveLiquidityIndex(ctx, &core.LiquidityIndex{
		AssetID:   m.AssetID,
		Value:     v,
		Timestamp: u.now,
	})
}

func (u *unit) sharePrice(ctx context.Context, m *core.Market) (decimal.Decimal, error) {
	idx, err := u.currentIndex(ctx, m)
	if err != nil {
		return decimal.Zero, err
	}

	return calc.SharePrice(idx, m.Decimals)
}

// deposit tokens the user's pool shares are worth
func (u *unit) deposit(ctx context.Context, user string, m *core.Market) (decimal.Decimal, error) {
	shares, err := u.ledger.Shares(ctx, user, m.AssetID)
	if err != nil || shares.IsZero() {
		return decimal.Zero, err
	}

	price, err := u.sharePrice(ctx, m)
	if err != nil {
		return decimal.Zero, err
	}

	return calc.TokensFor(shares, price, m.Decimals)
}

// saveDeposit stores the shares worth amount tokens at the current price
func (u *unit) saveDeposit(ctx context.Context, user string, m *core.Market, amount decimal.Decimal) error {
	price, err := u.sharePrice(ctx, m)
	if err != nil {
		return err
	}

	shares, err := calc.SharesFor(amount, price, m.Decimals)
	if err != nil {
		return err
	}

	return u.ledger.SaveShares(ctx, user, m.AssetID, shares)
}

// borrowInfo stored position. A position without principal compounds from now
// at the live market rate.
func (u *unit) borrowInfo(ctx context.Context, user string, m *core.Market) (*core.UserBorrowPosition, error) {
	p, err := u.ledger.BorrowPosition(ctx, user, m.AssetID)
	if err != nil {
		return nil, err
	}

	if !p.IsZero() {
		return p, nil
	}

	rate, err := u.interestRate(ctx, m)
	if err != nil {
		return nil, err
	}

	p.AverageInterestRate = rate
	p.Timestamp = u.now
	return p, nil
}

func (u *unit) borrowWithInterest(ctx context.Context, user string, m *core.Market) (decimal.Decimal, error) {
	p, err := u.borrowInfo(ctx, user, m)
	if err != nil {
		return decimal.Zero, err
	}

	return calc.BorrowedWithInterest(p.BorrowedAmount, p.AverageInterestRate, u.now-p.Timestamp, m.Decimals)
}

// market registered market, ErrUnsupportedToken otherwise
func (u *unit) market(ctx context.Context, assetID string) (*core.Market, error) {
	return u.ledger.Market(ctx, assetID)
}

func (u *unit) markets(ctx context.Context) ([]*core.Market, error) {
	assets, err := u.ledger.SupportedAssets(ctx)
	if err != nil {
		return nil, err
	}

	markets := make([]*core.Market, 0, len(assets))
	for _, assetID := range assets {
		m, err := u.market(ctx, assetID)
		if err != nil {
			return nil, err
		}

		markets = append(markets, m)
	}

	return markets, nil
}

// account every holding of user as of now
func (u *unit) account(ctx context.Context, user string) (calc.Account, error) {
	markets, err := u.markets(ctx)
	if err != nil {
		return nil, err
	}

	account := make(calc.Account, 0, len(markets))
	for _, m := range markets {
		h, err := u.holding(ctx, user, m)
		if err != nil {
			return nil, err
		}

		account = append(account, h)
	}

	return account, nil
}

func (u *unit) holding(ctx context.Context, user string, m *core.Market) (*calc.Holding, error) {
	price, err := u.ledger.Price(ctx, m.AssetID)
	if err != nil {
		return nil, err
	}

	reserve, err := u.ledger.ReserveConfig(ctx, m.AssetID)
	if err != nil {
		return nil, err
	}

	collateral, err := u.ledger.IsCollateral(ctx, user, m.AssetID)
	if err != nil {
		return nil, err
	}

	deposit, err := u.deposit(ctx, user, m)
	if err != nil {
		return nil, err
	}

	borrowed, err := u.borrowWithInterest(ctx, user, m)
	if err != nil {
		return nil, err
	}

	return &calc.Holding{
		AssetID:              m.AssetID,
		Decimals:             m.Decimals,
		Price:                price,
		Deposit:              deposit,
		Borrowed:             borrowed,
		IsCollateral:         collateral,
		LoanToValueRatio:     reserve.LoanToValueRatio,
		LiquidationThreshold: reserve.LiquidationThreshold,
	}, nil
}

// hasBorrow any principal left in any asset
func (u *unit) hasBorrow(ctx context.Context, user string) (bool, error) {
	assets, err := u.ledger.SupportedAssets(ctx)
	if err != nil {
		return false, err
	}

	for _, assetID := range assets {
		p, err := u.ledger.BorrowPosition(ctx, user, assetID)
		if err != nil {
			return false, err
		}

		if !p.IsZero() {
			return true, nil
		}
	}

	return false, nil
}

func (u *unit) availableToBorrow(ctx context.Context, user string, m *core.Market) (decimal.Decimal, error) {
	account, err := u.account(ctx, user)
	if err != nil {
		return decimal.Zero, err
	}

	h, _ := account.Find(m.AssetID)

	liquidity, err := u.liquidity(ctx, m)
	if err != nil {
		return decimal.Zero, err
	}

	return account.AvailableToBorrow(h, liquidity)
}

func (u *unit) tvl(ctx context.Context) (decimal.Decimal, error) {
	markets, err := u.markets(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	tvl := decimal.Zero
	for _, m := range markets {
		price, err := u.ledger.Price(ctx, m.AssetID)
		if err != nil {
			return decimal.Zero, err
		}

		liquidity, err := u.liquidity(ctx, m)
		if err != nil {
			return decimal.Zero, err
		}

		v, err := calc.USDValue(liquidity, price, m.Decimals)
		if err != nil {
			return decimal.Zero, err
		}

		if tvl, err = number.Add(tvl, v); err != nil {
			return decimal.Zero, err
		}
	}

	return tvl, nil
}
