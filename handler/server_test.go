package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
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

type response struct {
	Data json.RawMessage `json:"data"`
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
}

func newServer(t *testing.T) (http.Handler, core.ITokenLedger) {
	mock := clock.NewMock()
	mock.Add(1700000000 * time.Second)

	tokens := token.Memory()
	events := event.Memory()
	srv := lending.New(kv.Memory(), tokens, auth.New(), events, mock, "pool")

	ctx := auth.WithPrincipal(context.Background(), "admin")
	require.Nil(t, srv.Initialize(ctx, "admin"))
	require.Nil(t, srv.AddMarket(ctx, &core.Market{
		AssetID:      "eth",
		TokenAddress: "eth_token",
		Name:         "Ether",
		Symbol:       "ETH",
		Decimals:     18,
	}, &core.ReserveConfig{
		LoanToValueRatio:     decimal.NewFromInt(8500000),
		LiquidationThreshold: decimal.NewFromInt(9000000),
	}, &core.InterestRateModel{
		MinRate:                 decimal.New(5, 18),
		SafeBorrowMaxRate:       decimal.New(30, 18),
		RateGrowthFactor:        decimal.New(70, 18),
		OptimalUtilizationRatio: decimal.NewFromInt(8000000),
	}))
	require.Nil(t, srv.UpdatePrice(ctx, "eth", decimal.NewFromInt(200000000000)))

	session := auth.NewSession(core.Auth{
		Tokens: []core.AuthToken{{Token: "alice-token", Principal: "alice"}},
	})

	return New(srv, events, session).HandleRestAPI(), tokens
}

func do(t *testing.T, h http.Handler, method, path, token, body string) (int, *response) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var resp response
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w.Code, &resp
}

func TestMarkets(t *testing.T) {
	h, _ := newServer(t)

	status, resp := do(t, h, http.MethodGet, "/markets", "", "")
	require.Equal(t, http.StatusOK, status)

	var markets []map[string]interface{}
	require.Nil(t, json.Unmarshal(resp.Data, &markets))
	require.Len(t, markets, 1)
	assert.Equal(t, "eth", markets[0]["asset_id"])
	assert.Equal(t, "200000000000", markets[0]["price"])

	status, resp = do(t, h, http.MethodGet, "/markets/btc", "", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, int(core.ErrUnsupportedToken), resp.Code)
}

func TestDeposit(t *testing.T) {
	h, tokens := newServer(t)
	require.Nil(t, tokens.Mint(context.Background(), "eth_token", "alice", decimal.New(10, 18)))

	body := `{"asset":"eth","amount":"10000000000000000000"}`
	status, resp := do(t, h, http.MethodPost, "/deposit", "", body)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, int(core.ErrUnauthorized), resp.Code)

	status, _ = do(t, h, http.MethodPost, "/deposit", "alice-token", body)
	require.Equal(t, http.StatusOK, status)

	status, resp = do(t, h, http.MethodPost, "/redeem", "alice-token", `{"asset":"eth","amount":"20000000000000000000"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, int(core.ErrNotEnoughBalance), resp.Code)

	status, resp = do(t, h, http.MethodGet, "/users/alice/assets/eth", "", "")
	require.Equal(t, http.StatusOK, status)

	var asset map[string]interface{}
	require.Nil(t, json.Unmarshal(resp.Data, &asset))
	assert.Equal(t, "10000000000000000000", asset["deposit"])

	status, resp = do(t, h, http.MethodGet, "/tvl", "", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"tvl":"2000000000000"}`, string(resp.Data))

	status, resp = do(t, h, http.MethodGet, "/events?from=0&limit=10", "", "")
	require.Equal(t, http.StatusOK, status)

	var events []*core.Event
	require.Nil(t, json.Unmarshal(resp.Data, &events))
	assert.Equal(t, core.ActionDeposit, events[len(events)-1].Action)
}
