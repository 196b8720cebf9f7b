package lending

import (
	"context"
	"fmt"

	"moneymarket/core"
	"moneymarket/store/kv"
	"moneymarket/store/ledger"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

type move struct {
	token  string
	from   string
	to     string
	amount decimal.Decimal
}

// unit one operation in flight: staged writes plus journalled token moves
type unit struct {
	s      *service
	now    int64
	batch  *kv.Batch
	ledger *ledger.Ledger
	moves  []*move
	events []*core.Event
}

func (s *service) newUnit(ctx context.Context) *unit {
	now := s.clock.Now()
	batch := kv.NewBatch(s.kv, now)

	return &unit{
		s:      s,
		now:    now.Unix(),
		batch:  batch,
		ledger: ledger.New(batch),
	}
}

// balanceOf token balance with the pending moves of this unit applied
func (u *unit) balanceOf(ctx context.Context, token, holder string) (decimal.Decimal, error) {
	balance, err := u.s.tokens.BalanceOf(ctx, token, holder)
	if err != nil {
		return decimal.Zero, fmt.Errorf("balance of %s: %w", holder, err)
	}

	for _, m := range u.moves {
		if m.token != token {
			continue
		}

		if m.from == holder {
			balance = balance.Sub(m.amount)
		}
		if m.to == holder {
			balance = balance.Add(m.amount)
		}
	}

	return balance, nil
}

// transfer journals a token move, executed on commit. Zero moves are dropped.
func (u *unit) transfer(ctx context.Context, token, from, to string, amount decimal.Decimal) error {
	if amount.IsZero() {
		return nil
	}

	balance, err := u.balanceOf(ctx, token, from)
	if err != nil {
		return err
	}

	if balance.LessThan(amount) {
		return core.ErrNotEnoughBalance
	}

	u.moves = append(u.moves, &move{
		token:  token,
		from:   from,
		to:     to,
		amount: amount,
	})
	return nil
}

func (u *unit) emit(action, user, counterparty, assetID string, amount decimal.Decimal) {
	u.events = append(u.events, &core.Event{
		Action:       action,
		User:         user,
		Counterparty: counterparty,
		AssetID:      assetID,
		Amount:       amount,
	})
}

// commit executes the journal then writes the batch. Executed moves are
// reversed when a later move or the batch write fails.
func (u *unit) commit(ctx context.Context) error {
	for idx, m := range u.moves {
		if err := u.s.tokens.Transfer(ctx, m.token, m.from, m.to, m.amount); err != nil {
			u.revert(ctx, u.moves[:idx])
			return fmt.Errorf("transfer %s: %w", m.token, err)
		}
	}

	if err := u.batch.Commit(ctx); err != nil {
		u.revert(ctx, u.moves)
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

func (u *unit) revert(ctx context.Context, moves []*move) {
	log := logger.FromContext(ctx)

	for idx := len(moves) - 1; idx >= 0; idx-- {
		m := moves[idx]
		if err := u.s.tokens.Transfer(ctx, m.token, m.to, m.from, m.amount); err != nil {
			log.WithError(err).WithField("token", m.token).Errorln("revert transfer")
		}
	}
}
