package token

import (
	"context"
	"testing"

	"moneymarket/core"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLedger(t *testing.T) {
	ctx := context.Background()
	l := Memory()

	require.Nil(t, l.Mint(ctx, "eth", "alice", decimal.NewFromInt(100)))
	require.Nil(t, l.Transfer(ctx, "eth", "alice", "pool", decimal.NewFromInt(40)))

	b, err := l.BalanceOf(ctx, "eth", "alice")
	require.Nil(t, err)
	assert.Equal(t, "60", b.String())

	b, _ = l.BalanceOf(ctx, "eth", "pool")
	assert.Equal(t, "40", b.String())

	b, _ = l.BalanceOf(ctx, "xlm", "pool")
	assert.True(t, b.IsZero())

	assert.Equal(t, core.ErrNotEnoughBalance, l.Transfer(ctx, "eth", "alice", "pool", decimal.NewFromInt(61)))
	assert.Equal(t, core.ErrInvalidArgument, l.Transfer(ctx, "eth", "alice", "pool", decimal.NewFromInt(-1)))
	assert.Equal(t, core.ErrInvalidArgument, l.Mint(ctx, "eth", "alice", decimal.RequireFromString("0.5")))

	assert.Nil(t, l.Transfer(ctx, "eth", "bob", "pool", decimal.Zero), "zero transfers always pass")
}

func TestNew(t *testing.T) {
	l, err := New(core.Token{}, nil)
	require.Nil(t, err)
	assert.NotNil(t, l)

	_, err = New(core.Token{Driver: core.DriverDB}, nil)
	assert.NotNil(t, err)
}
