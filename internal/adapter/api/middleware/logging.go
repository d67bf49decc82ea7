package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Tickatch/log-service/internal/adapter/metrics"
)

// responseWriter is a wrapper that captures the HTTP status code for logging.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Logging logs each request and records the API request metrics.
func Logging(logger *slog.Logger, m *metrics.APIMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r)

			duration := time.Since(start)

			route := r.Method + " " + r.URL.Path
			m.RequestsTotal.WithLabelValues(route, strconv.Itoa(rw.statusCode)).Inc()
			m.RequestDuration.WithLabelValues(route).Observe(duration.Seconds())

			logger.Info("handled request",
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
				"status", rw.statusCode,
				"duration_ms", duration.Milliseconds(),
			)
		})
	}
}
