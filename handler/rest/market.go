package rest

import (
	"net/http"

	"moneymarket/core"
	"moneymarket/handler/render"
	"moneymarket/handler/views"

	"github.com/go-chi/chi"
)

func allMarketsHandler(lending core.ILendingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		assets, err := lending.SupportedAssets(ctx)
		if err != nil {
			render.Error(w, err)
			return
		}

		marketViews := make([]*views.Market, 0, len(assets))
		for _, assetID := range assets {
			view, err := views.BuildMarket(ctx, lending, assetID)
			if err != nil {
				render.Error(w, err)
				return
			}

			marketViews = append(marketViews, view)
		}

		render.JSON(w, marketViews)
	}
}

func marketHandler(lending core.ILendingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := views.BuildMarket(r.Context(), lending, chi.URLParam(r, "asset"))
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, view)
	}
}

func tvlHandler(lending core.ILendingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tvl, err := lending.GetTVL(r.Context())
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, render.H{"tvl": tvl})
	}
}
