package weather

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeNWS serves /points/{lat},{lon} and /forecast with the given bodies and status codes.
type fakeNWS struct {
	pointsStatus   int
	pointsBody     string
	forecastStatus int
	forecastBody   string

	pointsPath string
	headers    http.Header
	calls      int
}

func (f *fakeNWS) server(t *testing.T) *httptest.Server {
	t.Helper()
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls++
		f.headers = r.Header.Clone()
		switch {
		case r.URL.Path == "/forecast":
			w.WriteHeader(f.forecastStatus)
			_, _ = io.WriteString(w, f.forecastBody)
		default:
			f.pointsPath = r.URL.Path
			body := f.pointsBody
			if body == "" {
				body = `{"properties":{"forecast":"` + srv.URL + `/forecast"}}`
			}
			w.WriteHeader(f.pointsStatus)
			_, _ = io.WriteString(w, body)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

const onePeriod = `{"properties":{"periods":[{"name":"Tonight","temperature":55,"temperatureUnit":"F","windSpeed":"5 mph","windDirection":"NW","shortForecast":"Clear"}]}}`

func TestGetForecast_Success(t *testing.T) {
	f := &fakeNWS{pointsStatus: http.StatusOK, forecastStatus: http.StatusOK, forecastBody: onePeriod}
	srv := f.server(t)

	c := NewClient(WithBaseURL(srv.URL), WithLogger(quietLogger()))
	resp, err := c.GetForecast(context.Background(), 40.7128, -74.0060)
	require.NoError(t, err)
	require.Len(t, resp.Properties.Periods, 1)

	p := resp.Properties.Periods[0]
	assert.Equal(t, "Tonight", *p.Name)
	assert.Equal(t, 55.0, *p.Temperature)
	assert.Equal(t, "/points/40.7128,-74.0060", f.pointsPath)
	assert.Equal(t, 2, f.calls)
}

func TestGetForecast_RoundsToFourDecimals(t *testing.T) {
	f := &fakeNWS{pointsStatus: http.StatusOK, forecastStatus: http.StatusOK, forecastBody: onePeriod}
	srv := f.server(t)

	c := NewClient(WithBaseURL(srv.URL+"/"), WithLogger(quietLogger()))
	_, err := c.GetForecast(context.Background(), 39.115391234, -107.6584)
	require.NoError(t, err)
	assert.Equal(t, "/points/39.1154,-107.6584", f.pointsPath)
}

func TestGetForecast_SendsIdentifyingHeaders(t *testing.T) {
	f := &fakeNWS{pointsStatus: http.StatusOK, forecastStatus: http.StatusOK, forecastBody: onePeriod}
	srv := f.server(t)

	c := NewClient(WithBaseURL(srv.URL), WithUserAgent("test-agent/2.0"), WithLogger(quietLogger()))
	_, err := c.GetForecast(context.Background(), 40, -74)
	require.NoError(t, err)
	assert.Equal(t, "test-agent/2.0", f.headers.Get("User-Agent"))
	assert.Equal(t, "application/geo+json", f.headers.Get("Accept"))
}

func TestGetForecast_Failures(t *testing.T) {
	tests := []struct {
		name    string
		nws     fakeNWS
		wantErr error
		calls   int
	}{
		{
			name:    "grid point not found",
			nws:     fakeNWS{pointsStatus: http.StatusNotFound, pointsBody: `{"title":"Data Unavailable For Requested Point"}`},
			wantErr: ErrGridPointUnavailable,
			calls:   1,
		},
		{
			name:    "grid point malformed body",
			nws:     fakeNWS{pointsStatus: http.StatusOK, pointsBody: `not json`},
			wantErr: ErrGridPointUnavailable,
			calls:   1,
		},
		{
			name:    "descriptor without forecast url",
			nws:     fakeNWS{pointsStatus: http.StatusOK, pointsBody: `{"properties":{}}`},
			wantErr: ErrForecastURLMissing,
			calls:   1,
		},
		{
			name:    "forecast server error",
			nws:     fakeNWS{pointsStatus: http.StatusOK, forecastStatus: http.StatusInternalServerError, forecastBody: `oops`},
			wantErr: ErrForecastUnavailable,
			calls:   2,
		},
		{
			name:    "zero periods",
			nws:     fakeNWS{pointsStatus: http.StatusOK, forecastStatus: http.StatusOK, forecastBody: `{"properties":{"periods":[]}}`},
			wantErr: ErrNoForecastPeriods,
			calls:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.nws
			srv := f.server(t)

			c := NewClient(WithBaseURL(srv.URL), WithLogger(quietLogger()))
			resp, err := c.GetForecast(context.Background(), 10, -150)
			assert.Nil(t, resp)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Equal(t, tt.calls, f.calls)
		})
	}
}

func TestGetForecast_NetworkFailureIsNoResult(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(WithBaseURL(url), WithLogger(quietLogger()))
	_, err := c.GetForecast(context.Background(), 40, -74)
	assert.ErrorIs(t, err, ErrGridPointUnavailable)
}

func TestNewClient_TimeoutLeavesSharedClientAlone(t *testing.T) {
	shared := &http.Client{}

	c := NewClient(WithHTTPClient(shared), WithTimeout(3*time.Second))
	assert.Zero(t, shared.Timeout)
	assert.Equal(t, 3*time.Second, c.httpClient.Timeout)

	// option order does not matter
	c = NewClient(WithTimeout(2*time.Second), WithHTTPClient(shared))
	assert.Zero(t, shared.Timeout)
	assert.Equal(t, 2*time.Second, c.httpClient.Timeout)

	c = NewClient(WithHTTPClient(&http.Client{Timeout: time.Second}))
	assert.Equal(t, time.Second, c.httpClient.Timeout)
}
