package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ConsumerMetrics holds the Prometheus metrics for the domain log consumers.
type ConsumerMetrics struct {
	EventsTotal *prometheus.CounterVec
}

// NewConsumerMetrics initializes and registers the consumer metrics.
func NewConsumerMetrics() *ConsumerMetrics {
	return &ConsumerMetrics{
		EventsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "log_service",
			Subsystem: "consumer",
			Name:      "events_total",
			Help:      "Total number of consumed domain events by domain and outcome.",
		}, []string{"domain", "status"}), // status: recorded, dead_lettered
	}
}

// APIMetrics holds the Prometheus metrics for the event log HTTP surface.
type APIMetrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewAPIMetrics initializes and registers the API metrics.
func NewAPIMetrics() *APIMetrics {
	return &APIMetrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "log_service",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of handled HTTP requests by route and status.",
		}, []string{"route", "status"}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "log_service",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
}
