// internal/middleware/recover.go

package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"weather-agent/internal/util"
)

// Recover turns a handler panic into a generic JSON 500; the stack goes to the log only.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rv := recover(); rv != nil {
					if rv == http.ErrAbortHandler {
						panic(rv)
					}
					logger.ErrorContext(r.Context(), "server error",
						"request_id", RequestIDFromContext(r.Context()),
						"panic", rv,
						"stack", string(debug.Stack()),
					)
					util.WriteError(w, http.StatusInternalServerError, util.Internal("Internal server error"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
