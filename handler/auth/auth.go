package auth

import (
	"net/http"
	"strings"

	"moneymarket/core"
	"moneymarket/handler/render"
	svcauth "moneymarket/service/auth"

	"github.com/fox-one/pkg/logger"
)

// HandleAuthentication resolves the bearer token into the acting principal
func HandleAuthentication(session core.ISession) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := logger.FromContext(ctx)

			accessToken := getBearerToken(r)
			if accessToken == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := session.Login(ctx, accessToken)
			if err != nil {
				next.ServeHTTP(w, r)
				log.WithError(err).Debugln("parse access token error:", err)
				return
			}

			next.ServeHTTP(w, r.WithContext(svcauth.WithPrincipal(ctx, user)))
		}

		return http.HandlerFunc(fn)
	}
}

// LoginRequired rejects requests without an authenticated principal
func LoginRequired(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		if _, ok := svcauth.PrincipalFrom(r.Context()); !ok {
			render.Error(w, core.ErrUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}

func getBearerToken(r *http.Request) string {
	s := r.Header.Get("Authorization")
	return strings.TrimPrefix(s, "Bearer ")
}
