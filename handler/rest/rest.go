package rest

import (
	"errors"
	"net/http"

	"moneymarket/core"
	"moneymarket/handler/auth"
	"moneymarket/handler/render"

	"github.com/go-chi/chi"
)

// Handle handle rest api request
func Handle(lending core.ILendingService, events core.IEventStore) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/markets", allMarketsHandler(lending))
	router.Get("/markets/{asset}", marketHandler(lending))
	router.Get("/tvl", tvlHandler(lending))
	router.Get("/users/{principal}", userHandler(lending))
	router.Get("/users/{principal}/assets/{asset}", userAssetHandler(lending))
	router.Get("/events", eventsHandler(events))

	router.Group(func(r chi.Router) {
		r.Use(auth.LoginRequired)

		r.Post("/deposit", amountHandler(core.ActionDeposit, lending.Deposit))
		r.Post("/redeem", amountHandler(core.ActionRedeem, lending.Redeem))
		r.Post("/borrow", amountHandler(core.ActionBorrow, lending.Borrow))
		r.Post("/repay", amountHandler(core.ActionRepay, lending.Repay))
		r.Post("/collateral", collateralHandler(lending))
		r.Post("/liquidate", liquidateHandler(lending))
	})

	return router
}
