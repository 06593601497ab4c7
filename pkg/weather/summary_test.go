package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func numPtr(f float64) *float64 {
	return &f
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		input    ForecastPeriod
		expected PeriodForecast
	}{
		{
			name: "all fields present",
			input: ForecastPeriod{
				Name:            strPtr("Tonight"),
				Temperature:     numPtr(55),
				TemperatureUnit: strPtr("F"),
				WindSpeed:       strPtr("5 mph"),
				WindDirection:   strPtr("NW"),
				ShortForecast:   strPtr("Clear"),
			},
			expected: PeriodForecast{Period: "Tonight", Temperature: "55°F", Wind: "5 mph NW", Forecast: "Clear"},
		},
		{
			name:     "everything missing",
			input:    ForecastPeriod{},
			expected: PeriodForecast{Period: "Unknown", Temperature: "Unknown°F", Wind: "Unknown ", Forecast: "No forecast available"},
		},
		{
			name: "missing unit defaults to F",
			input: ForecastPeriod{
				Temperature: numPtr(12),
			},
			expected: PeriodForecast{Period: "Unknown", Temperature: "12°F", Wind: "Unknown ", Forecast: "No forecast available"},
		},
		{
			name: "missing direction leaves trailing space",
			input: ForecastPeriod{
				WindSpeed: strPtr("10 mph"),
			},
			expected: PeriodForecast{Period: "Unknown", Temperature: "Unknown°F", Wind: "10 mph ", Forecast: "No forecast available"},
		},
		{
			name: "empty strings count as missing",
			input: ForecastPeriod{
				Name:            strPtr(""),
				TemperatureUnit: strPtr(""),
				WindSpeed:       strPtr(""),
				ShortForecast:   strPtr(""),
			},
			expected: PeriodForecast{Period: "Unknown", Temperature: "Unknown°F", Wind: "Unknown ", Forecast: "No forecast available"},
		},
		{
			name: "zero temperature is a value",
			input: ForecastPeriod{
				Temperature:     numPtr(0),
				TemperatureUnit: strPtr("C"),
			},
			expected: PeriodForecast{Period: "Unknown", Temperature: "0°C", Wind: "Unknown ", Forecast: "No forecast available"},
		},
		{
			name: "fractional temperature",
			input: ForecastPeriod{
				Temperature: numPtr(-3.5),
			},
			expected: PeriodForecast{Period: "Unknown", Temperature: "-3.5°F", Wind: "Unknown ", Forecast: "No forecast available"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Summarize(tt.input))
		})
	}
}

func TestNewResponse_KeepsOrder(t *testing.T) {
	periods := []ForecastPeriod{
		{Name: strPtr("Tonight")},
		{Name: strPtr("Tuesday")},
		{Name: strPtr("Tuesday Night")},
	}

	resp := NewResponse(40.7128, -74.006, periods)

	assert.Equal(t, 40.7128, resp.Latitude)
	assert.Equal(t, -74.006, resp.Longitude)
	if assert.Len(t, resp.Forecast, 3) {
		assert.Equal(t, "Tonight", resp.Forecast[0].Period)
		assert.Equal(t, "Tuesday", resp.Forecast[1].Period)
		assert.Equal(t, "Tuesday Night", resp.Forecast[2].Period)
	}
}

func TestNewResponse_EmptyForecastIsArray(t *testing.T) {
	resp := NewResponse(1, 2, nil)
	assert.NotNil(t, resp.Forecast)
	assert.Empty(t, resp.Forecast)
}
