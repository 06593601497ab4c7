// internal/agent/weather_endpoint.go
// Caller for GET /weather on the weather API.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"weather-agent/internal/util"
	"weather-agent/pkg/weather"
)

var ErrWeatherEndpoint = errors.New("weather endpoint request failed")

type WeatherEndpoint struct {
	baseURL    string
	httpClient *http.Client
}

func NewWeatherEndpoint(baseURL string, hc *http.Client) *WeatherEndpoint {
	if hc == nil {
		hc = &http.Client{}
	}
	return &WeatherEndpoint{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: hc,
	}
}

// Fetch returns the decoded forecast. Any non-2xx status is an error carrying the
// envelope message the endpoint returned.
func (e *WeatherEndpoint) Fetch(ctx context.Context, latitude, longitude float64) (*weather.Response, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"/weather?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrWeatherEndpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWeatherEndpoint, err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr util.APIError
		_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&apiErr)
		return nil, fmt.Errorf("%w: status %d: %s", ErrWeatherEndpoint, resp.StatusCode, apiErr.Error)
	}

	var out weather.Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrWeatherEndpoint, err)
	}
	return &out, nil
}
