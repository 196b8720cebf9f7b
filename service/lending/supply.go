package lending

import (
	"context"

	"moneymarket/core"
	calc "moneymarket/internal/lending"
	"moneymarket/pkg/number"

	"github.com/shopspring/decimal"
)

// Deposit pulls amount tokens into the pool and mints pool shares at the
// refreshed share price
func (s *service) Deposit(ctx context.Context, user, assetID string, amount decimal.Decimal) error {
	return s.run(ctx, "deposit", func(u *unit) error {
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

		if err := u.transfer(ctx, m.TokenAddress, user, s.pool, amount); err != nil {
			return err
		}

		if err := u.refreshIndex(ctx, m); err != nil {
			return err
		}

		price, err := u.sharePrice(ctx, m)
		if err != nil {
			return err
		}

		minted, err := calc.SharesFor(amount, price, m.Decimals)
		if err != nil {
			return err
		}

		shares, err := u.ledger.Shares(ctx, user, assetID)
		if err != nil {
			return err
		}

		if shares, err = number.Add(shares, minted); err != nil {
			return err
		}

		if err := u.ledger.SaveShares(ctx, user, assetID, shares); err != nil {
			return err
		}

		u.emit(core.ActionDeposit, user, "", assetID, amount)
		return nil
	})
}

// Redeem burns the shares worth amount tokens and pays them out, a zero
// amount redeems the whole deposit
func (s *service) Redeem(ctx context.Context, user, assetID string, amount decimal.Decimal) error {
	return s.run(ctx, "redeem", func(u *unit) error {
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

		if err := u.refreshIndex(ctx, m); err != nil {
			return err
		}

		current, err := u.deposit(ctx, user, m)
		if err != nil {
			return err
		}

		if amount.GreaterThan(current) {
			return core.ErrNotEnoughBalance
		}

		redeemed := amount
		if redeemed.IsZero() {
			redeemed = current
		}

		liquidity, err := u.liquidity(ctx, m)
		if err != nil {
			return err
		}

		if redeemed.GreaterThan(liquidity) {
			return core.ErrNotEnoughLiquidity
		}

		if err := u.saveDeposit(ctx, user, m, current.Sub(redeemed)); err != nil {
			return err
		}

		if err := u.transfer(ctx, m.TokenAddress, s.pool, user, redeemed); err != nil {
			return err
		}

		u.emit(core.ActionRedeem, user, "", assetID, redeemed)
		return nil
	})
}
