package handler

import (
	"net/http"

	"moneymarket/core"
	"moneymarket/handler/auth"
	"moneymarket/handler/render"
	"moneymarket/handler/rest"

	"github.com/go-chi/chi"
	"github.com/twitchtv/twirp"
)

// Server server
type Server struct {
	lending core.ILendingService
	events  core.IEventStore
	session core.ISession
}

// New new server function
func New(
	lending core.ILendingService,
	events core.IEventStore,
	session core.ISession,
) Server {
	return Server{
		lending: lending,
		events:  events,
		session: session,
	}
}

// HandleRestAPI handle restful apis
func (s Server) HandleRestAPI() http.Handler {
	r := chi.NewRouter()
	r.Use(render.WrapResponse)
	r.Use(auth.HandleAuthentication(s.session))
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Error(w, twirp.NotFoundError("not found"))
	})

	r.Mount("/", rest.Handle(s.lending, s.events))
	return r
}
