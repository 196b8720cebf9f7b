package liquidator

import (
	"context"
	"testing"
	"time"

	"moneymarket/core"
	"moneymarket/service/auth"
	"moneymarket/service/lending"
	"moneymarket/service/token"
	"moneymarket/store/event"
	"moneymarket/store/kv"

	"github.com/facebookgo/clock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func as(principal string) context.Context {
	return auth.WithPrincipal(context.Background(), principal)
}

func tokens(v int64) decimal.Decimal {
	return decimal.New(v, 18)
}

func TestLiquidator(t *testing.T) {
	mock := clock.NewMock()
	mock.Add(1700000000 * time.Second)

	ledger := token.Memory()
	srv := lending.New(kv.Memory(), ledger, auth.New(), event.Memory(), mock, "pool")
	require.Nil(t, srv.Initialize(as("admin"), "admin"))

	for _, m := range []struct {
		asset, ltv, threshold, price string
	}{
		{"eth", "8500000", "9000000", "200000000000"},
		{"xlm", "7500000", "8000000", "1000000000"},
	} {
		require.Nil(t, srv.AddMarket(as("admin"), &core.Market{
			AssetID:      m.asset,
			TokenAddress: m.asset + "_token",
			Decimals:     18,
		}, &core.ReserveConfig{
			LoanToValueRatio:     decimal.RequireFromString(m.ltv),
			LiquidationThreshold: decimal.RequireFromString(m.threshold),
		}, &core.InterestRateModel{
			MinRate:                 tokens(5),
			SafeBorrowMaxRate:       tokens(30),
			RateGrowthFactor:        tokens(70),
			OptimalUtilizationRatio: decimal.New(80, 5),
		}))
		require.Nil(t, srv.UpdatePrice(as("admin"), m.asset, decimal.RequireFromString(m.price)))
	}

	deposit := func(user, asset string, v decimal.Decimal) {
		require.Nil(t, ledger.Mint(context.Background(), asset+"_token", user, v))
		require.Nil(t, srv.Deposit(as(user), user, asset, v))
	}

	deposit("admin", "eth", tokens(1000))
	deposit("alice", "xlm", tokens(1000))
	require.Nil(t, srv.ToggleCollateral(as("alice"), "alice", "xlm"))
	require.Nil(t, srv.Borrow(as("alice"), "alice", "eth", tokens(3)))

	deposit("carol", "eth", tokens(10))

	w := New(core.Liquidator{Principal: "carol"}, srv)
	ctx := context.Background()

	require.Nil(t, w.onWork(ctx))
	borrowers, err := srv.GetBorrowers(ctx)
	require.Nil(t, err)
	assert.Equal(t, []string{"alice"}, borrowers)

	require.Nil(t, srv.UpdatePrice(as("admin"), "eth", decimal.New(2700, 8)))
	require.Nil(t, w.onWork(ctx))

	borrowers, err = srv.GetBorrowers(ctx)
	require.Nil(t, err)
	assert.Empty(t, borrowers)

	balance, err := srv.GetDeposit(ctx, "carol", "eth")
	require.Nil(t, err)
	assert.Equal(t, tokens(7).String(), balance.String())

	balance, err = srv.GetDeposit(ctx, "carol", "xlm")
	require.Nil(t, err)
	assert.Equal(t, tokens(1000).String(), balance.String())
}
