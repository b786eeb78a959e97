package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RemoteFetches counts remote listing fetches by outcome (loaded, failed, discarded)
	RemoteFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "directory_remote_fetches_total",
			Help: "Total number of remote listing fetches by outcome",
		},
		[]string{"outcome"},
	)

	// RemoteFetchLatency tracks how long the remote listing API takes to answer
	RemoteFetchLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "directory_remote_fetch_seconds",
			Help:    "Latency of remote listing fetches",
			Buckets: prometheus.DefBuckets,
		},
	)

	// DirectoryEvents counts reconciliation events by action and result
	DirectoryEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "directory_events_total",
			Help: "Total number of directory events by action and result",
		},
		[]string{"action", "result"},
	)

	// DirectorySize is the number of records currently in the directory
	DirectorySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "directory_users",
			Help: "Number of records in the user directory",
		},
	)

	// HTTPRequests counts API requests by method and status code
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "directory_http_requests_total",
			Help: "Total number of HTTP requests by method and status",
		},
		[]string{"method", "status"},
	)

	// HTTPDuration tracks API request latency by method
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "directory_http_request_duration_seconds",
			Help:    "Time spent serving HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveRequest records one served HTTP request.
func ObserveRequest(method string, status int, started time.Time) {
	HTTPRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	HTTPDuration.WithLabelValues(method).Observe(time.Since(started).Seconds())
}
