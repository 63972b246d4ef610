package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts requests by route and status class.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lugha_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "status"},
	)

	// TranslationsTotal counts resolutions by method and outcome.
	TranslationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lugha_translations_total",
			Help: "Total number of word resolutions",
		},
		[]string{"method", "language", "success"},
	)

	// ResolveDuration tracks resolution latency. Remote fallbacks dominate
	// the upper buckets.
	ResolveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lugha_resolve_duration_seconds",
			Help:    "Word resolution latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)
