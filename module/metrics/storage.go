package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/merklequery/merkled/module"
)

var _ module.CacheMetrics = (*StorageCollector)(nil)

// StorageCollector tracks the utilisation of the storage-layer caches.
type StorageCollector struct {
	cacheEntries *prometheus.GaugeVec
	cacheHits    *prometheus.CounterVec
	cacheMisses  *prometheus.CounterVec
}

func NewStorageCollector() *StorageCollector {
	return &StorageCollector{
		cacheEntries: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:      "entries_total",
			Namespace: namespaceStorage,
			Subsystem: subsystemCache,
			Help:      "the number of entries in the cache",
		}, []string{"resource"}),
		cacheHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:      "hits_total",
			Namespace: namespaceStorage,
			Subsystem: subsystemCache,
			Help:      "the number of hits in the cache",
		}, []string{"resource"}),
		cacheMisses: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:      "misses_total",
			Namespace: namespaceStorage,
			Subsystem: subsystemCache,
			Help:      "the number of misses in the cache",
		}, []string{"resource"}),
	}
}

func (sc *StorageCollector) CacheEntries(resource string, entries uint) {
	sc.cacheEntries.With(prometheus.Labels{"resource": resource}).Set(float64(entries))
}

func (sc *StorageCollector) CacheHit(resource string) {
	sc.cacheHits.With(prometheus.Labels{"resource": resource}).Inc()
}

func (sc *StorageCollector) CacheMiss(resource string) {
	sc.cacheMisses.With(prometheus.Labels{"resource": resource}).Inc()
}
