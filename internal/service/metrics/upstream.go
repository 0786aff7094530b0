package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	UpstreamLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "astropulse",
			Subsystem: "upstream",
			Name:      "latency_seconds",
			Help:      "Latency of upstream feed fetches",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"feed"},
	)

	UpstreamErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "astropulse",
			Subsystem: "upstream",
			Name:      "errors_total",
			Help:      "Upstream fetch failures that degraded to empty results",
		},
		[]string{"feed"},
	)

	UpstreamCacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "astropulse",
			Subsystem: "upstream",
			Name:      "cache_hits_total",
			Help:      "Upstream responses served from the in-process cache",
		},
		[]string{"feed"},
	)
)

func Register() {
	once.Do(func() {
		prometheus.MustRegister(UpstreamLatency, UpstreamErrors, UpstreamCacheHits)
	})
}
