// pkg/weather/models.go
// Upstream (api.weather.gov) payloads and the compact forecast shape served to callers.

package weather

// ====== Upstream payloads ======

// PointsResponse is the grid descriptor returned by /points/{lat},{lon}.
type PointsResponse struct {
	Properties struct {
		Forecast string `json:"forecast,omitempty"`
	} `json:"properties"`
}

// ForecastPeriod is one time bucket of the upstream forecast. Every field is optional.
type ForecastPeriod struct {
	Name            *string  `json:"name,omitempty"`
	Temperature     *float64 `json:"temperature,omitempty"`
	TemperatureUnit *string  `json:"temperatureUnit,omitempty"`
	WindSpeed       *string  `json:"windSpeed,omitempty"`
	WindDirection   *string  `json:"windDirection,omitempty"`
	ShortForecast   *string  `json:"shortForecast,omitempty"`
}

// ForecastResponse is the resource behind the forecast URL of a grid descriptor.
type ForecastResponse struct {
	Properties struct {
		Periods []ForecastPeriod `json:"periods"`
	} `json:"properties"`
}

// ====== Served shape ======

// PeriodForecast is the rendered summary of a single ForecastPeriod.
type PeriodForecast struct {
	Period      string `json:"period"`
	Temperature string `json:"temperature"`
	Wind        string `json:"wind"`
	Forecast    string `json:"forecast"`
}

// Response is the body of a successful GET /weather.
type Response struct {
	Latitude  float64          `json:"latitude"`
	Longitude float64          `json:"longitude"`
	Forecast  []PeriodForecast `json:"forecast"`
}
