// internal/app/routes.go
package app

import (
	"net/http"

	"github.com/gorilla/mux"

	hh "weather-agent/internal/handlers/http"
	"weather-agent/internal/middleware"
)

type RouteDeps struct {
	Weather http.Handler
	Stats   *middleware.RequestStats
}

// RegisterRoutes adds the weather API routes to r.
func RegisterRoutes(r *mux.Router, deps RouteDeps) {
	r.Handle("/weather", deps.Weather).Methods(http.MethodGet)

	r.HandleFunc("/healthz", hh.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/readyz", hh.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/metrics", hh.MetricsHandler(deps.Stats)).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(hh.NotFoundHandler)
	r.MethodNotAllowedHandler = http.HandlerFunc(hh.MethodNotAllowedHandler)
}
