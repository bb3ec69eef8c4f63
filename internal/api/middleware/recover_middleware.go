package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/api"
	"github.com/rs/zerolog"
)

// RecoverMiddleware panic時記錄堆疊並回統一格式的500
func RecoverMiddleware(logger *zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if logger != nil {
						logger.Error().
							Str("request_id", getRequestID(r)).
							Str("method", r.Method).
							Str("url", r.URL.String()).
							Interface("panic", rec).
							Bytes("stack", debug.Stack()).
							Msg("panic recovered")
					}
					api.ErrorJSON(w, http.StatusInternalServerError, nil, "internal server error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
