package lending

import (
	"context"

	"moneymarket/core"
	calc "moneymarket/internal/lending"

	"github.com/shopspring/decimal"
)

// Liquidate hands every position of an unhealthy user to the liquidator: the
// collateral deposits move to the liquidator's deposits and the debts are paid
// out of them. Positions are zeroed, never partially reduced.
func (s *service) Liquidate(ctx context.Context, user, liquidator string) error {
	return s.run(ctx, "liquidate", func(u *unit) error {
		if err := s.auth.Require(ctx, liquidator); err != nil {
			return err
		}

		if err := u.requireActive(ctx); err != nil {
			return err
		}

		if user == liquidator {
			return core.ErrInvalidArgument
		}

		if err := u.checkLiquidation(ctx, user, liquidator); err != nil {
			return err
		}

		markets, err := u.markets(ctx)
		if err != nil {
			return err
		}

		for _, m := range markets {
			if err := u.liquidateMarket(ctx, user, liquidator, m); err != nil {
				return err
			}
		}

		if err := u.ledger.MarkBorrower(ctx, user, false); err != nil {
			return err
		}

		u.emit(core.ActionLiquidate, user, liquidator, "", decimal.Zero)
		return nil
	})
}

func (u *unit) checkLiquidation(ctx context.Context, user, liquidator string) error {
	// any principal counts, a dust debt is worth zero once priced
	borrowing, err := u.hasBorrow(ctx, liquidator)
	if err != nil {
		return err
	}

	if borrowing {
		return core.ErrMustNotHaveBorrow
	}

	account, err := u.account(ctx, user)
	if err != nil {
		return err
	}

	utilization, err := account.UtilizationRate()
	if err != nil {
		return err
	}

	threshold, err := account.LiquidationThreshold()
	if err != nil {
		return err
	}

	if utilization.LessThan(threshold) {
		return core.ErrNotOverLiquidationThreshold
	}

	return nil
}

func (u *unit) liquidateMarket(ctx context.Context, user, liquidator string, m *core.Market) error {
	if err := u.refreshIndex(ctx, m); err != nil {
		return err
	}

	seized := decimal.Zero
	collateral, err := u.ledger.IsCollateral(ctx, user, m.AssetID)
	if err != nil {
		return err
	}

	if collateral {
		if seized, err = u.deposit(ctx, user, m); err != nil {
			return err
		}

		if err := u.ledger.SaveShares(ctx, user, m.AssetID, decimal.Zero); err != nil {
			return err
		}
	}

	owed, err := u.borrowWithInterest(ctx, user, m)
	if err != nil {
		return err
	}

	if owed.IsZero() && seized.IsZero() {
		return nil
	}

	balance, err := u.deposit(ctx, liquidator, m)
	if err != nil {
		return err
	}

	if owed.IsPositive() {
		if balance.LessThan(owed) {
			return core.ErrNotEnoughBalance
		}

		info, err := u.ledger.BorrowPosition(ctx, user, m.AssetID)
		if err != nil {
			return err
		}

		if err := u.ledger.SaveBorrowPosition(ctx, user, m.AssetID, &core.UserBorrowPosition{
			BorrowedAmount:      decimal.Zero,
			AverageInterestRate: decimal.Zero,
			Timestamp:           u.now,
		}); err != nil {
			return err
		}

		snapshot, err := u.ledger.TotalBorrow(ctx, m.AssetID)
		if err != nil {
			return err
		}

		snapshot, err = calc.ApplyLiquidation(snapshot, info.BorrowedAmount, info.AverageInterestRate, m.Decimals, u.now)
		if err != nil {
			return err
		}

		if err := u.ledger.SaveTotalBorrow(ctx, snapshot); err != nil {
			return err
		}
	}

	return u.saveDeposit(ctx, liquidator, m, balance.Add(seized).Sub(owed))
}
