// internal/handlers/http/cors_handler.go
package http

import "net/http"

// CORS allows browser clients on any origin to call the agent surface and
// answers every preflight itself.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key, X-Request-ID")
		if r.Method == http.MethodOptions {
			PreflightHandler(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// PreflightHandler answers OPTIONS with 204.
func PreflightHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
