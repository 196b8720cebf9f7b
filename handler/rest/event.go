package rest

import (
	"net/http"

	"moneymarket/core"
	"moneymarket/handler/param"
	"moneymarket/handler/render"
)

// response committed events after the id from
func eventsHandler(events core.IEventStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			From  int64 `json:"from"`
			Limit int   `json:"limit"`
		}

		if e := param.Binding(r, &params); e != nil {
			render.BadRequest(w, e)
			return
		}

		limit := params.Limit
		if limit <= 0 || limit > 500 {
			limit = 500
		}

		list, e := events.List(ctx, params.From, limit)
		if e != nil {
			render.Error(w, e)
			return
		}

		if list == nil {
			list = []*core.Event{}
		}

		render.JSON(w, list)
	}
}
