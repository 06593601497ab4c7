package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ok(w http.ResponseWriter, r *http.Request) {
	_, _ = io.WriteString(w, RequestIDFromContext(r.Context()))
}

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	rec := httptest.NewRecorder()
	RequestID(http.HandlerFunc(ok)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	id := rec.Header().Get("X-Request-ID")
	assert.Len(t, id, 36)
	assert.Equal(t, id, rec.Body.String())
}

func TestRequestID_KeepsIncoming(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	RequestID(http.HandlerFunc(ok)).ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "abc-123", rec.Body.String())
}

func TestRecover_WritesGenericJSON(t *testing.T) {
	h := Recover(quietLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/weather", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "kaboom")
}

func TestLogging_CountsAndLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	stats := NewRequestStats()

	h := Logging(logger, stats)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = io.WriteString(w, "ok")
	}))
	for _, p := range []string{"/a", "/b", "/missing"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	var out bytes.Buffer
	stats.WritePrometheus(&out)
	assert.Contains(t, out.String(), `http_requests_total{method="GET",code="200"} 2`)
	assert.Contains(t, out.String(), `http_requests_total{method="GET",code="404"} 1`)
	assert.Contains(t, out.String(), "app_up 1")
	assert.Equal(t, 3, strings.Count(buf.String(), "http request"))
	assert.Contains(t, buf.String(), "path=/missing")
}

func TestAPIKey(t *testing.T) {
	h := APIKey("s3cret")(http.HandlerFunc(ok))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ask", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodPost, "/ask", nil)
	req.Header.Set("X-API-Key", "s3cret")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	APIKey("")(http.HandlerFunc(ok)).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ask", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminJWTAuth(t *testing.T) {
	const secret = "test-secret"
	h := AdminJWTAuth(secret)(http.HandlerFunc(ok))

	token, exp, err := GenerateAdminToken(secret, "admin", time.Now())
	require.NoError(t, err)
	assert.Greater(t, exp, time.Now().Add(23*time.Hour).Unix())

	expired, _, err := GenerateAdminToken(secret, "admin", time.Now().Add(-48*time.Hour))
	require.NoError(t, err)
	foreign, _, err := GenerateAdminToken("other-secret", "admin", time.Now())
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic YWRtaW46YWRtaW4=", http.StatusUnauthorized},
		{"garbage", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong secret", "Bearer " + foreign, http.StatusUnauthorized},
		{"valid", "Bearer " + token, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/runs", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestAdminJWTAuth_NotConfigured(t *testing.T) {
	rec := httptest.NewRecorder()
	AdminJWTAuth("")(http.HandlerFunc(ok)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/runs", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	_, _, err := GenerateAdminToken("", "admin", time.Now())
	assert.Error(t, err)
}
