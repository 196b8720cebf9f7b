package rest

import (
	"context"
	"errors"
	"net/http"

	"moneymarket/core"
	"moneymarket/handler/param"
	"moneymarket/handler/render"
	"moneymarket/handler/views"
	"moneymarket/service/auth"

	"github.com/shopspring/decimal"
)

type amountOperation func(ctx context.Context, user, assetID string, amount decimal.Decimal) error

// amountHandler runs op for the authenticated principal
func amountHandler(action string, op amountOperation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		user, _ := auth.PrincipalFrom(ctx)

		var params struct {
			Asset  string          `json:"asset"`
			Amount decimal.Decimal `json:"amount"`
		}

		if e := param.Binding(r, &params); e != nil {
			render.BadRequest(w, e)
			return
		}

		if params.Asset == "" {
			render.BadRequest(w, errors.New("asset required"))
			return
		}

		if e := op(ctx, user, params.Asset, params.Amount); e != nil {
			render.Error(w, e)
			return
		}

		render.JSON(w, views.Done(action, params.Asset))
	}
}

func collateralHandler(lending core.ILendingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		user, _ := auth.PrincipalFrom(ctx)

		var params struct {
			Asset string `json:"asset"`
		}

		if e := param.Binding(r, &params); e != nil {
			render.BadRequest(w, e)
			return
		}

		if e := lending.ToggleCollateral(ctx, user, params.Asset); e != nil {
			render.Error(w, e)
			return
		}

		render.JSON(w, views.Done(core.ActionCollateral, params.Asset))
	}
}

func liquidateHandler(lending core.ILendingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		liquidator, _ := auth.PrincipalFrom(ctx)

		var params struct {
			User string `json:"user"`
		}

		if e := param.Binding(r, &params); e != nil {
			render.BadRequest(w, e)
			return
		}

		if e := lending.Liquidate(ctx, params.User, liquidator); e != nil {
			render.Error(w, e)
			return
		}

		render.JSON(w, views.Done(core.ActionLiquidate, ""))
	}
}
