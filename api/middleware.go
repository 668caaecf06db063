package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics of the archive server
var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "larder_http_requests_total",
			Help: "Total HTTP requests against the document archive",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "larder_http_request_duration_seconds",
			Help:    "HTTP request duration against the document archive in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// MetricsMiddleware returns a HTTP middleware recording Prometheus metrics.
// Records the request count and duration for each endpoint.
func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Path label is normalized so per-document requests do not blow up
			// metric cardinality
			normalizedPath := normalizePath(r.URL.Path)

			wrapped := newStatusCapturingWriter(w)
			next.ServeHTTP(wrapped, r)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(wrapped.statusCode)

			httpRequestsTotal.WithLabelValues(r.Method, normalizedPath, status).Inc()
			httpRequestDuration.WithLabelValues(r.Method, normalizedPath).Observe(duration)
		})
	}
}

// RequestLoggingMiddleware returns a HTTP middleware logging one line per request.
func RequestLoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := newStatusCapturingWriter(w)
			next.ServeHTTP(wrapped, r)

			log.WithFields(log.Fields{
				"module":    "api",
				"method":    r.Method,
				"path":      r.URL.Path,
				"status":    wrapped.statusCode,
				"duration":  time.Since(start).String(),
				"remote":    r.RemoteAddr,
				"userAgent": r.UserAgent(),
			}).Info("Request handled")
		})
	}
}

// statusCapturingWriter wraps a ResponseWriter to capture the status code
type statusCapturingWriter struct {
	http.ResponseWriter
	statusCode int
}

func newStatusCapturingWriter(w http.ResponseWriter) *statusCapturingWriter {
	return &statusCapturingWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (w *statusCapturingWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

// Unwrap exposes the original ResponseWriter to http.ResponseController
func (w *statusCapturingWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// normalizePath replaces per-document path segments with {id} so the metric
// label set stays bounded.
func normalizePath(path string) string {
	switch path {
	case "/healthz", "/metrics",
		"/v1/documents", "/v1/documents/search", "/v1/archive/folders":
		return path
	}

	const documentsPrefix = "/v1/documents/"
	if strings.HasPrefix(path, documentsPrefix) {
		return "/v1/documents/{id}"
	}

	return path
}
