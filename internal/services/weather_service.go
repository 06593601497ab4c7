// internal/services/weather_service.go
// Weather service: fetch the upstream forecast and reshape it into summaries.

package services

import (
	"context"
	"fmt"

	"weather-agent/pkg/weather"
)

// ForecastProvider is the upstream client contract (satisfied by *weather.Client).
type ForecastProvider interface {
	GetForecast(ctx context.Context, latitude, longitude float64) (*weather.ForecastResponse, error)
}

type WeatherService struct {
	provider ForecastProvider
}

func NewWeatherService(p ForecastProvider) *WeatherService {
	return &WeatherService{provider: p}
}

// Forecast returns the summarized forecast for already validated coordinates.
func (s *WeatherService) Forecast(ctx context.Context, latitude, longitude float64) (*weather.Response, error) {
	fc, err := s.provider.GetForecast(ctx, latitude, longitude)
	if err != nil {
		return nil, fmt.Errorf("get forecast: %w", err)
	}
	resp := weather.NewResponse(latitude, longitude, fc.Properties.Periods)
	return &resp, nil
}
