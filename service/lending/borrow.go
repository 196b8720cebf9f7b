package lending

import (
	"context"

	"moneymarket/core"
	calc "moneymarket/internal/lending"
	"moneymarket/pkg/number"

	"github.com/shopspring/decimal"
)

// Borrow lends amount tokens against the user's collateral. The owed amount
// is rolled into a new principal at the blend of its rate and the spot rate.
func (s *service) Borrow(ctx context.Context, user, assetID string, amount decimal.Decimal) error {
	return s.run(ctx, "borrow", func(u *unit) error {
		if err := s.auth.Require(ctx, user); err != nil {
			return err
		}

		if !core.IsAmount(amount) || amount.IsZero() {
			return core.ErrInvalidArgument
		}

		if err := u.requireActive(ctx); err != nil {
			return err
		}

		m, err := u.market(ctx, assetID)
		if err != nil {
			return err
		}

		available, err := u.availableToBorrow(ctx, user, m)
		if err != nil {
			return err
		}

		if amount.GreaterThan(available) {
			return core.ErrNotEnoughCollateral
		}

		liquidity, err := u.liquidity(ctx, m)
		if err != nil {
			return err
		}

		if amount.GreaterThan(liquidity) {
			return core.ErrNotEnoughLiquidity
		}

		if err := u.refreshIndex(ctx, m); err != nil {
			return err
		}

		info, err := u.borrowInfo(ctx, user, m)
		if err != nil {
			return err
		}

		owed, err := calc.BorrowedWithInterest(info.BorrowedAmount, info.AverageInterestRate, u.now-info.Timestamp, m.Decimals)
		if err != nil {
			return err
		}

		principal, err := number.Add(owed, amount)
		if err != nil {
			return err
		}

		spot, err := u.interestRate(ctx, m)
		if err != nil {
			return err
		}

		rate, err := calc.BlendRate(owed, info.AverageInterestRate, amount, spot, m.Decimals)
		if err != nil {
			return err
		}

		snapshot, err := u.ledger.TotalBorrow(ctx, assetID)
		if err != nil {
			return err
		}

		snapshot, err = calc.ApplyBorrow(snapshot, info.BorrowedAmount, info.AverageInterestRate, principal, rate, m.Decimals, u.now)
		if err != nil {
			return err
		}

		if err := u.ledger.SaveBorrowPosition(ctx, user, assetID, &core.UserBorrowPosition{
			BorrowedAmount:      principal,
			AverageInterestRate: rate,
			Timestamp:           u.now,
		}); err != nil {
			return err
		}

		if err := u.ledger.SaveTotalBorrow(ctx, snapshot); err != nil {
			return err
		}

		if err := u.ledger.MarkBorrower(ctx, user, true); err != nil {
			return err
		}

		if err := u.transfer(ctx, m.TokenAddress, s.pool, user, amount); err != nil {
			return err
		}

		u.emit(core.ActionBorrow, user, "", assetID, amount)
		return nil
	})
}

// Repay pays back up to the owed amount and refunds the excess, a zero
// amount repays everything owed. A position with nothing owed is left untouched.
func (s *service) Repay(ctx context.Context, user, assetID string, amount decimal.Decimal) error {
	return s.run(ctx, "repay", func(u *unit) error {
		if err := s.auth.Require(ctx, user); err != nil {
			return err
		}

		if !core.IsAmount(amount) {
			return core.ErrInvalidArgument
		}

		m, err := u.market(ctx, assetID)
		if err != nil {
			return err
		}

		info, err := u.borrowInfo(ctx, user, m)
		if err != nil {
			return err
		}

		owed, err := calc.BorrowedWithInterest(info.BorrowedAmount, info.AverageInterestRate, u.now-info.Timestamp, m.Decimals)
		if err != nil {
			return err
		}

		if owed.IsZero() {
			return nil
		}

		paid := amount
		if paid.IsZero() {
			paid = owed
		}

		if err := u.transfer(ctx, m.TokenAddress, user, s.pool, paid); err != nil {
			return err
		}

		if err := u.refreshIndex(ctx, m); err != nil {
			return err
		}

		rate := info.AverageInterestRate
		if paid.GreaterThanOrEqual(owed) {
			refund := paid.Sub(owed)
			if err := u.transfer(ctx, m.TokenAddress, s.pool, user, refund); err != nil {
				return err
			}

			paid = owed
			rate = core.RepaidInterestRate
		}

		snapshot, err := u.ledger.TotalBorrow(ctx, assetID)
		if err != nil {
			return err
		}

		snapshot, err = calc.ApplyRepay(snapshot, info.BorrowedAmount, owed, info.AverageInterestRate, paid, m.Decimals, u.now)
		if err != nil {
			return err
		}

		remaining := owed.Sub(paid)
		if err := u.ledger.SaveBorrowPosition(ctx, user, assetID, &core.UserBorrowPosition{
			BorrowedAmount:      remaining,
			AverageInterestRate: rate,
			Timestamp:           u.now,
		}); err != nil {
			return err
		}

		if err := u.ledger.SaveTotalBorrow(ctx, snapshot); err != nil {
			return err
		}

		borrowing, err := u.hasBorrow(ctx, user)
		if err != nil {
			return err
		}

		if err := u.ledger.MarkBorrower(ctx, user, borrowing); err != nil {
			return err
		}

		u.emit(core.ActionRepay, user, "", assetID, paid)
		return nil
	})
}
