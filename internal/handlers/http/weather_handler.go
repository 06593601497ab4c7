// internal/handlers/http/weather_handler.go
// GET /weather?latitude=&longitude=

package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"weather-agent/internal/schemas"
	"weather-agent/internal/util"
	"weather-agent/pkg/weather"
)

type WeatherForecaster interface {
	Forecast(ctx context.Context, latitude, longitude float64) (*weather.Response, error)
}

type WeatherHandler struct {
	svc    WeatherForecaster
	logger *slog.Logger
}

func NewWeatherHandler(svc WeatherForecaster, logger *slog.Logger) *WeatherHandler {
	return &WeatherHandler{svc: svc, logger: logger}
}

func (h *WeatherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q, issues := schemas.ParseWeatherQuery(r.URL.Query())
	if len(issues) > 0 {
		util.WriteError(w, http.StatusBadRequest, util.BadInput("Invalid coordinates", issues...))
		return
	}

	resp, err := h.svc.Forecast(r.Context(), q.Latitude, q.Longitude)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "weather fetch failed",
			"latitude", q.Latitude, "longitude", q.Longitude, "error", err)
		util.WriteError(w, http.StatusInternalServerError, util.Internal("Failed to fetch weather data"))
		return
	}

	if body, err := json.Marshal(resp); err == nil {
		h.logger.InfoContext(r.Context(), "weather response", "body", string(body))
	}
	util.WriteJSON(w, http.StatusOK, resp)
}
