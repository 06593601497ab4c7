// pkg/weather/client.go
// Client for the National Weather Service API: grid point lookup, then forecast.

package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// API Docs: https://www.weather.gov/documentation/services-web-api
// Sample request: https://api.weather.gov/points/40.7128,-74.0060
const (
	DefaultBaseURL   = "https://api.weather.gov"
	DefaultUserAgent = "weather-app/1.0"
	acceptGeoJSON    = "application/geo+json"
	tracerName       = "weather-agent/pkg/weather"
)

var (
	ErrGridPointUnavailable = errors.New("grid point data unavailable")
	ErrForecastURLMissing   = errors.New("grid point data has no forecast url")
	ErrForecastUnavailable  = errors.New("forecast data unavailable")
	ErrNoForecastPeriods    = errors.New("no forecast periods available")
)

type Client struct {
	httpClient *http.Client
	timeout    time.Duration
	baseURL    string
	userAgent  string
	logger     *slog.Logger
	tracer     trace.Tracer
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds each sub-request. Zero keeps the HTTP client's own timeout.
// The client passed to WithHTTPClient is copied, never modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    DefaultBaseURL,
		userAgent:  DefaultUserAgent,
		logger:     slog.Default(),
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

// GetForecast resolves the grid point for the coordinates and fetches its forecast.
// Only U.S. locations are covered upstream; anything else fails with ErrGridPointUnavailable.
func (c *Client) GetForecast(ctx context.Context, latitude, longitude float64) (*ForecastResponse, error) {
	pointsURL := fmt.Sprintf("%s/points/%.4f,%.4f", c.baseURL, latitude, longitude)

	var points PointsResponse
	if !c.getJSON(ctx, "weather.points", pointsURL, &points) {
		return nil, fmt.Errorf("%w for coordinates %v, %v (only U.S. locations are supported)",
			ErrGridPointUnavailable, latitude, longitude)
	}

	forecastURL := strings.TrimSpace(points.Properties.Forecast)
	if forecastURL == "" {
		return nil, fmt.Errorf("%w for coordinates %v, %v", ErrForecastURLMissing, latitude, longitude)
	}

	var forecast ForecastResponse
	if !c.getJSON(ctx, "weather.forecast", forecastURL, &forecast) {
		return nil, fmt.Errorf("%w for coordinates %v, %v", ErrForecastUnavailable, latitude, longitude)
	}

	if len(forecast.Properties.Periods) == 0 {
		return nil, fmt.Errorf("%w for coordinates %v, %v", ErrNoForecastPeriods, latitude, longitude)
	}

	return &forecast, nil
}

// getJSON reports whether url produced a decodable JSON body. The cause of any
// failure stays in the log and on the span; callers only see "no result".
func (c *Client) getJSON(ctx context.Context, spanName, url string, out any) bool {
	ctx, span := c.tracer.Start(ctx, spanName, trace.WithAttributes(attribute.String("http.url", url)))
	defer span.End()

	if err := c.fetch(ctx, url, out); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.WarnContext(ctx, "nws request failed", "url", url, "error", err)
		return false
	}
	return true
}

func (c *Client) fetch(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", acceptGeoJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
