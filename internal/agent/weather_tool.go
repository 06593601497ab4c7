// internal/agent/weather_tool.go
package agent

import (
	"context"
	"encoding/json"
	"fmt"

	jsonschema "github.com/google/jsonschema-go/jsonschema"
)

const WeatherToolName = "get_weather"

// weatherParams only shapes the declared schema; both fields are required.
type weatherParams struct {
	Latitude  float64 `json:"latitude" jsonschema:"Latitude of the location (e.g. 40.7128)"`
	Longitude float64 `json:"longitude" jsonschema:"Longitude of the location (e.g. -74.0060)"`
}

// WeatherArgs is what the model sends back. Pointers tell a missing field from zero.
type WeatherArgs struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// ParseWeatherArgs decodes the tool-call argument string.
func ParseWeatherArgs(arguments string) (lat, lon float64, err error) {
	var args WeatherArgs
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrToolArguments, err)
	}
	if args.Latitude == nil {
		return 0, 0, fmt.Errorf("%w: latitude is required", ErrToolArguments)
	}
	if args.Longitude == nil {
		return 0, 0, fmt.Errorf("%w: longitude is required", ErrToolArguments)
	}
	return *args.Latitude, *args.Longitude, nil
}

// WeatherTool answers get_weather by calling the weather API over HTTP.
type WeatherTool struct {
	endpoint *WeatherEndpoint
}

var _ Executor = (*WeatherTool)(nil)

func NewWeatherTool(endpoint *WeatherEndpoint) *WeatherTool {
	return &WeatherTool{endpoint: endpoint}
}

func (*WeatherTool) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[weatherParams](nil)
}

func (t *WeatherTool) Execute(ctx context.Context, arguments string) (any, error) {
	lat, lon, err := ParseWeatherArgs(arguments)
	if err != nil {
		return nil, err
	}
	return t.endpoint.Fetch(ctx, lat, lon)
}

// DefaultExecutors returns the executors for every tool in tools.json.
func DefaultExecutors(endpoint *WeatherEndpoint) map[string]Executor {
	return map[string]Executor{
		WeatherToolName: NewWeatherTool(endpoint),
	}
}
