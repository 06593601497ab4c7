// pkg/weather/summary.go
package weather

import "strconv"

const (
	unknownValue        = "Unknown"
	defaultTempUnit     = "F"
	noForecastAvailable = "No forecast available"
)

// Summarize renders a period, filling every missing field with a placeholder.
// Empty strings count as missing; a zero temperature does not.
func Summarize(p ForecastPeriod) PeriodForecast {
	temp := unknownValue
	if p.Temperature != nil {
		temp = strconv.FormatFloat(*p.Temperature, 'f', -1, 64)
	}

	return PeriodForecast{
		Period:      orDefault(p.Name, unknownValue),
		Temperature: temp + "°" + orDefault(p.TemperatureUnit, defaultTempUnit),
		Wind:        orDefault(p.WindSpeed, unknownValue) + " " + orDefault(p.WindDirection, ""),
		Forecast:    orDefault(p.ShortForecast, noForecastAvailable),
	}
}

// NewResponse maps upstream periods in order.
func NewResponse(latitude, longitude float64, periods []ForecastPeriod) Response {
	out := make([]PeriodForecast, 0, len(periods))
	for _, p := range periods {
		out = append(out, Summarize(p))
	}
	return Response{
		Latitude:  latitude,
		Longitude: longitude,
		Forecast:  out,
	}
}

func orDefault(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}
