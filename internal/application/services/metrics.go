package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	backendFetchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "catalog_backend_fetch_duration_seconds",
			Help: "Latency of backend fetches made on cache misses",
		},
		[]string{"family", "outcome"},
	)

	cacheInvalidations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "response_cache_invalidated_keys_total",
			Help: "Cache keys purged after successful mutations",
		},
		[]string{"mutation"},
	)

	warmupTasks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "response_cache_warmup_tasks_total",
			Help: "Warm-up tasks by outcome",
		},
		[]string{"task", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(backendFetchDuration, cacheInvalidations, warmupTasks)
}

func observeFetch(family string, start time.Time, err error) {
	backendFetchDuration.WithLabelValues(family, outcome(err)).Observe(time.Since(start).Seconds())
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
