package lending

import (
	"context"

	"moneymarket/core"
	calc "moneymarket/internal/lending"
	"moneymarket/pkg/number"

	"github.com/shopspring/decimal"
)

// ToggleCollateral flips whether the user's deposit in asset counts as
// collateral. Switching off fails when the collateral left would not cover
// the borrows at the liquidation threshold.
func (s *service) ToggleCollateral(ctx context.Context, user, assetID string) error {
	return s.run(ctx, "toggle_collateral", func(u *unit) error {
		if err := s.auth.Require(ctx, user); err != nil {
			return err
		}

		m, err := u.market(ctx, assetID)
		if err != nil {
			return err
		}

		flag, err := u.ledger.IsCollateral(ctx, user, assetID)
		if err != nil {
			return err
		}

		if flag {
			if err := u.checkRelease(ctx, user, m); err != nil {
				return err
			}
		}

		if err := u.ledger.SetCollateral(ctx, user, assetID, !flag); err != nil {
			return err
		}

		state := decimal.Zero
		if !flag {
			state = decimal.New(1, 0)
		}

		u.emit(core.ActionCollateral, user, "", assetID, state)
		return nil
	})
}

// checkRelease the collateral required by the borrows must stay below the
// collateral left once the asset is released
func (u *unit) checkRelease(ctx context.Context, user string, m *core.Market) error {
	account, err := u.account(ctx, user)
	if err != nil {
		return err
	}

	h, _ := account.Find(m.AssetID)
	if h == nil || h.Deposit.IsZero() {
		return nil
	}

	borrowed, err := account.BorrowedUsd()
	if err != nil || borrowed.IsZero() {
		return err
	}

	released, err := calc.USDValue(h.Deposit, h.Price, h.Decimals)
	if err != nil {
		return err
	}

	collateral, err := account.CollateralUsd()
	if err != nil {
		return err
	}

	required, err := account.RequiredCollateralUsd()
	if err == core.ErrNoCollateral {
		return core.ErrRemainingCollateralNotEnough
	} else if err != nil {
		return err
	}

	if required.GreaterThanOrEqual(number.SubFloor(collateral, released)) {
		return core.ErrRemainingCollateralNotEnough
	}

	return nil
}
