package pricefeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"moneymarket/core"
	"moneymarket/service/auth"
	"moneymarket/service/lending"
	"moneymarket/service/token"
	"moneymarket/store/event"
	"moneymarket/store/kv"

	"github.com/facebookgo/clock"
	"github.com/fox-one/pkg/property"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCheckpoints struct {
	saved map[string]interface{}
}

func (m *memoryCheckpoints) Get(ctx context.Context, key string) (property.Value, error) {
	var v property.Value
	return v, nil
}

func (m *memoryCheckpoints) Save(ctx context.Context, key string, value interface{}) error {
	m.saved[key] = value
	return nil
}

func newLending(t *testing.T, clk clock.Clock, assets ...string) core.ILendingService {
	srv := lending.New(kv.Memory(), token.Memory(), auth.New(), event.Memory(), clk, "pool")
	ctx := auth.WithPrincipal(context.Background(), "admin")
	require.Nil(t, srv.Initialize(ctx, "admin"))

	for _, assetID := range assets {
		require.Nil(t, srv.AddMarket(ctx, &core.Market{
			AssetID:      assetID,
			TokenAddress: assetID + "_token",
			Decimals:     18,
		}, &core.ReserveConfig{
			LoanToValueRatio:     decimal.New(75, 5),
			LiquidationThreshold: decimal.New(80, 5),
		}, &core.InterestRateModel{
			MinRate:                 decimal.New(5, 18),
			SafeBorrowMaxRate:       decimal.New(30, 18),
			RateGrowthFactor:        decimal.New(70, 18),
			OptimalUtilizationRatio: decimal.New(80, 5),
		}))
	}

	return srv
}

func TestPriceFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ETH":
			w.Write([]byte(`{"price":"2000.123456789"}`))
		case "/XLM":
			w.Write([]byte(`{"price":"0.1"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	mock := clock.NewMock()
	mock.Add(time.Hour)

	lend := newLending(t, mock, "eth", "xlm")
	checkpoints := &memoryCheckpoints{saved: map[string]interface{}{}}

	w := New(core.PriceFeed{
		Endpoint: srv.URL + "/",
		Interval: time.Minute,
		Assets: []core.PriceFeedItem{
			{AssetID: "eth", Symbol: "ETH"},
			{AssetID: "xlm", Symbol: "XLM"},
		},
	}, "admin", lend, checkpoints, mock)

	ctx := context.Background()
	require.Nil(t, w.onWork(ctx))

	price, err := lend.GetPrice(ctx, "eth")
	require.Nil(t, err)
	assert.Equal(t, "200012345678", price.String())

	price, err = lend.GetPrice(ctx, "xlm")
	require.Nil(t, err)
	assert.Equal(t, "10000000", price.String())

	assert.Equal(t, mock.Now(), checkpoints.saved[checkpointKey])
}

func TestPriceFeedPartialFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ETH" {
			w.Write([]byte(`{"price":"1800"}`))
			return
		}

		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	mock := clock.NewMock()
	lend := newLending(t, mock, "eth", "btc")
	checkpoints := &memoryCheckpoints{saved: map[string]interface{}{}}

	w := New(core.PriceFeed{
		Endpoint: srv.URL,
		Assets: []core.PriceFeedItem{
			{AssetID: "eth", Symbol: "ETH"},
			{AssetID: "btc", Symbol: "BTC"},
		},
	}, "admin", lend, checkpoints, mock)

	ctx := context.Background()
	assert.Error(t, w.onWork(ctx))

	price, err := lend.GetPrice(ctx, "eth")
	require.Nil(t, err)
	assert.Equal(t, "180000000000", price.String())

	_, saved := checkpoints.saved[checkpointKey]
	assert.False(t, saved)
}

func TestPriceFeedNotAdmin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"price":"1"}`))
	}))
	defer srv.Close()

	mock := clock.NewMock()
	lend := newLending(t, mock, "eth")

	w := New(core.PriceFeed{
		Endpoint: srv.URL,
		Assets:   []core.PriceFeedItem{{AssetID: "eth", Symbol: "ETH"}},
	}, "mallory", lend, &memoryCheckpoints{saved: map[string]interface{}{}}, mock)

	assert.Error(t, w.onWork(context.Background()))
}
