// internal/middleware/auth.go
// API key check for endpoints that spend model credits.

package middleware

import (
	"crypto/subtle"
	"net/http"

	"weather-agent/internal/util"
)

// APIKey requires X-API-Key to equal expected. An empty expected disables the check.
func APIKey(expected string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if expected != "" && subtle.ConstantTimeCompare([]byte(r.Header.Get("X-API-Key")), []byte(expected)) != 1 {
				util.WriteError(w, http.StatusUnauthorized, util.APIError{Error: "unauthorized"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
