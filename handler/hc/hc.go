package hc

import (
	"context"
	"net/http"
	"time"

	"moneymarket/core"
	"moneymarket/handler/render"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
)

// Pool state reported next to the build
type Pool interface {
	GetAdmin(ctx context.Context) (string, error)
	IsPaused(ctx context.Context) (bool, error)
}

// Handle handle hc request, fails while the kv backend can not be read
func Handle(ver string, pool Pool) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.NoCache)
	r.Handle("/", handle(ver, pool))
	return r
}

func handle(version string, pool Pool) http.HandlerFunc {
	b := time.Now()
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		initialized := true
		if _, err := pool.GetAdmin(ctx); err == core.ErrUninitialized {
			initialized = false
		} else if err != nil {
			render.Error(w, err)
			return
		}

		paused, err := pool.IsPaused(ctx)
		if err != nil {
			render.Error(w, err)
			return
		}

		uptime := time.Since(b).Truncate(time.Millisecond)
		render.JSON(w, render.H{
			"uptime":      uptime.String(),
			"version":     version,
			"initialized": initialized,
			"paused":      paused,
		})
	}
}
