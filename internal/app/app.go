// internal/app/app.go
package app

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"weather-agent/internal/config"
	hh "weather-agent/internal/handlers/http"
	"weather-agent/internal/middleware"
	"weather-agent/internal/services"
	"weather-agent/pkg/weather"
)

// App holds the weather API router.
type App struct {
	Router *mux.Router
	Stats  *middleware.RequestStats
	logger *slog.Logger
}

type Deps struct {
	Weather hh.WeatherForecaster
	Logger  *slog.Logger
}

// New builds the router and registers every route.
func New(deps Deps) *App {
	r := mux.NewRouter()
	stats := middleware.NewRequestStats()

	RegisterRoutes(r, RouteDeps{
		Weather: hh.NewWeatherHandler(deps.Weather, deps.Logger),
		Stats:   stats,
	})

	return &App{Router: r, Stats: stats, logger: deps.Logger}
}

// NewFromConfig wires the NWS client and weather service from cfg.
func NewFromConfig(cfg *config.Config, logger *slog.Logger) *App {
	client := weather.NewClient(
		weather.WithBaseURL(cfg.Weather.BaseURL),
		weather.WithUserAgent(cfg.Weather.UserAgent),
		weather.WithTimeout(cfg.Weather.Timeout),
		weather.WithLogger(logger),
	)
	return New(Deps{Weather: services.NewWeatherService(client), Logger: logger})
}

// Handler wraps the router so unmatched routes and panics are covered too.
func (a *App) Handler() http.Handler {
	var h http.Handler = a.Router
	h = middleware.Logging(a.logger, a.Stats)(h)
	h = middleware.Recover(a.logger)(h)
	return middleware.RequestID(h)
}
