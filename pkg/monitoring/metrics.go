package monitoring

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP request metrics
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Authentication metrics
	authAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"status"},
	)

	// Appointment lifecycle metrics
	appointmentTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "appointment_transitions_total",
			Help: "Total number of appointment status transitions",
		},
		[]string{"from", "to", "status"},
	)

	// Notification fan-out metrics
	notificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Total number of notifications fanned out",
		},
		[]string{"severity"},
	)

	// Commerce metrics
	ordersTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_total",
			Help: "Total number of checkout orders placed",
		},
	)

	// Directory fetch metrics
	directoryFetchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "directory_fetches_total",
			Help: "Total number of doctor directory fetches",
		},
		[]string{"source"},
	)
)

// MetricsCollector handles Prometheus metrics collection
type MetricsCollector struct {
	serviceName string
}

var registerOnce sync.Once

// NewMetricsCollector creates a new metrics collector and registers the
// portal's metric families. Registration happens once per process.
func NewMetricsCollector(serviceName string) *MetricsCollector {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpRequestsTotal,
			httpRequestDuration,
			authAttemptsTotal,
			appointmentTransitionsTotal,
			notificationsTotal,
			ordersTotal,
			directoryFetchesTotal,
		)
	})

	return &MetricsCollector{serviceName: serviceName}
}

// RecordHTTPRequest records HTTP request metrics
func (mc *MetricsCollector) RecordHTTPRequest(method, endpoint, statusCode string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordAuthAttempt records an authentication attempt
func (mc *MetricsCollector) RecordAuthAttempt(status string) {
	authAttemptsTotal.WithLabelValues(status).Inc()
}

// RecordAppointmentTransition records an appointment status transition attempt
func (mc *MetricsCollector) RecordAppointmentTransition(from, to, status string) {
	appointmentTransitionsTotal.WithLabelValues(from, to, status).Inc()
}

// RecordNotification records one fanned-out notification
func (mc *MetricsCollector) RecordNotification(severity string) {
	notificationsTotal.WithLabelValues(severity).Inc()
}

// RecordOrder records one placed order
func (mc *MetricsCollector) RecordOrder() {
	ordersTotal.Inc()
}

// RecordDirectoryFetch records a directory load and where the data came from
// (remote or fallback).
func (mc *MetricsCollector) RecordDirectoryFetch(source string) {
	directoryFetchesTotal.WithLabelValues(source).Inc()
}

// Handler returns the Prometheus metrics HTTP handler
func (mc *MetricsCollector) Handler() http.Handler {
	return promhttp.Handler()
}
