package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RequestSize     *prometheus.HistogramVec
	ResponseSize    *prometheus.HistogramVec

	// Storage operation metrics
	StorageCalls    *prometheus.CounterVec
	StorageDuration *prometheus.HistogramVec
	StorageErrors   *prometheus.CounterVec

	// Account metrics
	UsersRegistered prometheus.Counter
	LoginsTotal     *prometheus.CounterVec
	SessionsIssued  prometheus.Counter

	// Transfer metrics
	BytesUploaded   prometheus.Counter
	BytesDownloaded prometheus.Counter

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time
}

// NewMetrics creates a new metrics collector
func NewMetrics() *Metrics {
	m := &Metrics{
		startTime: time.Now(),

		// HTTP metrics
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skystore_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "skystore_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		RequestSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "skystore_http_request_size_bytes",
				Help:    "HTTP request size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000, 10000000},
			},
			[]string{"method", "path"},
		),
		ResponseSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "skystore_http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000, 10000000},
			},
			[]string{"method", "path"},
		),

		// Storage operation metrics
		StorageCalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skystore_storage_calls_total",
				Help: "Total number of object storage calls",
			},
			[]string{"backend", "operation", "status"},
		),
		StorageDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "skystore_storage_duration_seconds",
				Help:    "Object storage call duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"backend", "operation"},
		),
		StorageErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skystore_storage_errors_total",
				Help: "Total number of object storage errors",
			},
			[]string{"backend", "operation"},
		),

		// Account metrics
		UsersRegistered: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "skystore_users_registered_total",
				Help: "Total number of registered accounts",
			},
		),
		LoginsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skystore_logins_total",
				Help: "Total number of login attempts",
			},
			[]string{"status"},
		),
		SessionsIssued: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "skystore_sessions_issued_total",
				Help: "Total number of sessions issued",
			},
		),

		// Transfer metrics
		BytesUploaded: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "skystore_bytes_uploaded_total",
				Help: "Total bytes accepted by uploads",
			},
		),
		BytesDownloaded: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "skystore_bytes_downloaded_total",
				Help: "Total bytes served by downloads",
			},
		),

		// System metrics
		Uptime: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "skystore_uptime_seconds",
				Help: "Backend uptime in seconds",
			},
		),
	}

	// Start uptime updater
	go m.updateUptime()

	return m
}

// updateUptime continuously updates the uptime metric
func (m *Metrics) updateUptime() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.Uptime.Set(time.Since(m.startTime).Seconds())
	}
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration, reqSize, respSize int64) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.RequestSize.WithLabelValues(method, path).Observe(float64(reqSize))
	m.ResponseSize.WithLabelValues(method, path).Observe(float64(respSize))
}

// RecordStorageCall records an object storage call
func (m *Metrics) RecordStorageCall(backend, operation, status string, duration time.Duration) {
	m.StorageCalls.WithLabelValues(backend, operation, status).Inc()
	m.StorageDuration.WithLabelValues(backend, operation).Observe(duration.Seconds())
}

// RecordStorageError records an object storage error
func (m *Metrics) RecordStorageError(backend, operation string) {
	m.StorageErrors.WithLabelValues(backend, operation).Inc()
}

// IncUsersRegistered increments the registered accounts counter
func (m *Metrics) IncUsersRegistered() {
	m.UsersRegistered.Inc()
}

// RecordLogin records a login attempt outcome
func (m *Metrics) RecordLogin(status string) {
	m.LoginsTotal.WithLabelValues(status).Inc()
}

// IncSessionsIssued increments the issued sessions counter
func (m *Metrics) IncSessionsIssued() {
	m.SessionsIssued.Inc()
}

// AddBytesUploaded adds to the uploaded bytes counter
func (m *Metrics) AddBytesUploaded(n int64) {
	m.BytesUploaded.Add(float64(n))
}

// AddBytesDownloaded adds to the downloaded bytes counter
func (m *Metrics) AddBytesDownloaded(n int64) {
	m.BytesDownloaded.Add(float64(n))
}
