package token

import (
	"context"
	"sync"

	"moneymarket/core"

	"github.com/shopspring/decimal"
)

type memoryLedger struct {
	mux      sync.Mutex
	balances map[string]decimal.Decimal
}

// Memory in process token ledger
func Memory() core.ITokenLedger {
	return &memoryLedger{balances: map[string]decimal.Decimal{}}
}

func balanceKey(token, holder string) string {
	return token + "/" + holder
}

func (l *memoryLedger) Transfer(ctx context.Context, token, from, to string, amount decimal.Decimal) error {
	if err := validAmount(amount); err != nil {
		return err
	}

	l.mux.Lock()
	defer l.mux.Unlock()

	src := l.balances[balanceKey(token, from)]
	if src.LessThan(amount) {
		return core.ErrNotEnoughBalance
	}

	l.balances[balanceKey(token, from)] = src.Sub(amount)
	l.balances[balanceKey(token, to)] = l.balances[balanceKey(token, to)].Add(amount)
	return nil
}

func (l *memoryLedger) BalanceOf(ctx context.Context, token, holder string) (decimal.Decimal, error) {
	l.mux.Lock()
	defer l.mux.Unlock()

	return l.balances[balanceKey(token, holder)], nil
}

func (l *memoryLedger) Mint(ctx context.Context, token, holder string, amount decimal.Decimal) error {
	if err := validAmount(amount); err != nil {
		return err
	}

	l.mux.Lock()
	defer l.mux.Unlock()

	l.balances[balanceKey(token, holder)] = l.balances[balanceKey(token, holder)].Add(amount)
	return nil
}
