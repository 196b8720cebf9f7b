package rest

import (
	"net/http"

	"moneymarket/core"
	"moneymarket/handler/render"
	"moneymarket/handler/views"

	"github.com/go-chi/chi"
)

func userHandler(lending core.ILendingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := views.BuildAccount(r.Context(), lending, chi.URLParam(r, "principal"))
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, view)
	}
}

func userAssetHandler(lending core.ILendingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := views.BuildAsset(r.Context(), lending, chi.URLParam(r, "principal"), chi.URLParam(r, "asset"))
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, view)
	}
}
