package event

import (
	"context"
	"testing"
	"time"

	"moneymarket/core"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := Memory()
	now := time.Now()

	for i, trace := range []string{"a", "b", "c", "a"} {
		err := s.Create(ctx, &core.Event{
			TraceID:   trace,
			Action:    core.ActionDeposit,
			User:      "alice",
			AssetID:   "eth",
			Amount:    decimal.NewFromInt(int64(i)),
			CreatedAt: now.Add(time.Duration(i) * time.Hour),
		})
		require.Nil(t, err)
	}

	events, err := s.List(ctx, 0, 10)
	require.Nil(t, err)
	require.Len(t, events, 3, "trace ids are unique")
	assert.Equal(t, int64(1), events[0].ID)

	events, err = s.List(ctx, 1, 1)
	require.Nil(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "b", events[0].TraceID)

	n, err := s.DeleteByTime(ctx, now.Add(90*time.Minute))
	require.Nil(t, err)
	assert.Equal(t, int64(2), n)

	events, _ = s.List(ctx, 0, 10)
	require.Len(t, events, 1)
	assert.Equal(t, "c", events[0].TraceID)
}
