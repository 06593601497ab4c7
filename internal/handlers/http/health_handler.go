// internal/handlers/http/health_handler.go
// Liveness, metrics and JSON fallbacks shared by both servers.

package http

import (
	"net/http"

	"weather-agent/internal/middleware"
	"weather-agent/internal/util"
)

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	util.WriteJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	util.WriteError(w, http.StatusNotFound, util.NotFound())
}

func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	util.WriteError(w, http.StatusMethodNotAllowed, util.APIError{Error: "Method not allowed"})
}

// MetricsHandler serves stats in the Prometheus text format.
func MetricsHandler(stats *middleware.RequestStats) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4")
		stats.WritePrometheus(w)
	}
}
