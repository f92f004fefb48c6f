package memcache

import "github.com/prometheus/client_golang/prometheus"

// Observer receives cache lifecycle events. Calls happen under the store lock and must not block.
type Observer interface {
	Hit()
	Miss()
	// Eviction is a live entry dropped to make room.
	Eviction()
	// Expire is an entry removed because its TTL elapsed.
	Expire()
	// Size reports the resident entry count after a mutation.
	Size(n int)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) Hit()      {}
func (NoopObserver) Miss()     {}
func (NoopObserver) Eviction() {}
func (NoopObserver) Expire()   {}
func (NoopObserver) Size(int)  {}

var (
	cacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "response_cache_hits_total",
		Help: "Cache lookups that found a live entry",
	})
	cacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "response_cache_misses_total",
		Help: "Cache lookups that found no live entry",
	})
	cacheEvictions = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "response_cache_evictions_total",
		Help: "Live entries evicted because the cache was full",
	})
	cacheExpirations = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "response_cache_expirations_total",
		Help: "Entries removed after their TTL elapsed",
	})
	cacheEntries = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "response_cache_entries",
		Help: "Resident cache entries",
	})
)

func init() {
	prometheus.MustRegister(cacheHits, cacheMisses, cacheEvictions, cacheExpirations, cacheEntries)
}

// PrometheusObserver exports cache events as Prometheus metrics.
type PrometheusObserver struct{}

func (PrometheusObserver) Hit()       { cacheHits.Inc() }
func (PrometheusObserver) Miss()      { cacheMisses.Inc() }
func (PrometheusObserver) Eviction()  { cacheEvictions.Inc() }
func (PrometheusObserver) Expire()    { cacheExpirations.Inc() }
func (PrometheusObserver) Size(n int) { cacheEntries.Set(float64(n)) }
