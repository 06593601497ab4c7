// internal/middleware/logging.go
// Access log and request counters.

package middleware

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"sync"
	"time"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

// RequestStats counts served requests by method and status code.
type RequestStats struct {
	mu     sync.Mutex
	counts map[statKey]int64
}

type statKey struct {
	method string
	code   int
}

func NewRequestStats() *RequestStats {
	return &RequestStats{counts: map[statKey]int64{}}
}

func (s *RequestStats) observe(method string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[statKey{method, status}]++
}

// WritePrometheus emits the counters in the Prometheus text format.
func (s *RequestStats) WritePrometheus(w io.Writer) {
	s.mu.Lock()
	keys := make([]statKey, 0, len(s.counts))
	snapshot := make(map[statKey]int64, len(s.counts))
	for k, v := range s.counts {
		keys = append(keys, k)
		snapshot[k] = v
	}
	s.mu.Unlock()
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].method != keys[j].method {
			return keys[i].method < keys[j].method
		}
		return keys[i].code < keys[j].code
	})

	fmt.Fprintf(w, "# HELP app_up 1 if the app is up\n# TYPE app_up gauge\napp_up 1\n")
	fmt.Fprintf(w, "# HELP http_requests_total Requests served, by method and status code.\n# TYPE http_requests_total counter\n")
	for _, k := range keys {
		fmt.Fprintf(w, "http_requests_total{method=%q,code=\"%d\"} %d\n", k.method, k.code, snapshot[k])
	}
}

// Logging writes one access log line per request and feeds stats when non-nil.
func Logging(logger *slog.Logger, stats *RequestStats) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)
			if rec.status == 0 {
				rec.status = http.StatusOK
			}
			if stats != nil {
				stats.observe(r.Method, rec.status)
			}
			logger.InfoContext(r.Context(), "http request",
				"request_id", RequestIDFromContext(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}
