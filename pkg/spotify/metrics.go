package spotify

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides Prometheus instrumentation for the client's request
// lifecycle. It is safe for concurrent use, and a nil *Metrics disables
// all recording.
type Metrics struct {
	cacheHits      prometheus.Counter
	cacheMisses    prometheus.Counter
	tokenRefreshes prometheus.Counter
	rateLimited    prometheus.Counter

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics creates metrics registered on the default registerer.
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsWithRegistry creates metrics registered on the supplied
// registerer.
func NewMetricsWithRegistry(registry prometheus.Registerer) *Metrics {
	return &Metrics{
		cacheHits: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "spotify_client_cache_hits_total",
				Help: "Total number of lookups served from the response cache",
			},
		),
		cacheMisses: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "spotify_client_cache_misses_total",
				Help: "Total number of lookups not served from the response cache",
			},
		),
		tokenRefreshes: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "spotify_client_token_refreshes_total",
				Help: "Total number of access token refreshes",
			},
		),
		rateLimited: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "spotify_client_rate_limited_total",
				Help: "Total number of responses rejected with status 429",
			},
		),
		requests: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "spotify_client_requests_total",
				Help: "Total number of Web API requests made",
			},
			[]string{"endpoint", "status"},
		),
		requestDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "spotify_client_request_duration_seconds",
				Help:    "Duration of Web API requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
	}
}

func (m *Metrics) recordCacheHit() {
	if m == nil {
		return
	}
	m.cacheHits.Inc()
}

func (m *Metrics) recordCacheMiss() {
	if m == nil {
		return
	}
	m.cacheMisses.Inc()
}

func (m *Metrics) recordTokenRefresh() {
	if m == nil {
		return
	}
	m.tokenRefreshes.Inc()
}

func (m *Metrics) recordRateLimited() {
	if m == nil {
		return
	}
	m.rateLimited.Inc()
}

// recordRequest labels by the leading path segment so metric cardinality
// stays bounded no matter how many catalog IDs are requested. A status of
// zero means the request never produced a response.
func (m *Metrics) recordRequest(path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	endpoint := endpointFamily(path)
	m.requests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

func endpointFamily(path string) string {
	path = strings.TrimPrefix(path, "/")
	if idx := strings.IndexAny(path, "/?"); idx != -1 {
		path = path[:idx]
	}
	if path == "" {
		return "unknown"
	}
	return path
}
