// Package middleware holds the HTTP middleware of the panel API.
package middleware

import (
	"net/http"

	"github.com/rs/zerolog"
)

// Logger injects a request-scoped child logger into the context, tagged
// with the method, path and caller address. Handlers retrieve it through
// zerolog.Ctx.
func Logger(logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			reqLogger := logger.With().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("remote_ip", req.RemoteAddr).
				Logger()

			reqLogger.Debug().Msg("request received")

			ctx := reqLogger.WithContext(req.Context())
			req = req.WithContext(ctx)

			next.ServeHTTP(w, req)
		})
	}
}
