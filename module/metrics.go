package module

import (
	"time"
)

// CacheMetrics tracks the utilisation of storage-layer caches.
type CacheMetrics interface {
	// CacheEntries records the total number of cached entries.
	CacheEntries(resource string, entries uint)

	// CacheHit records one hit in the cache.
	CacheHit(resource string)

	// CacheMiss records one miss in the cache.
	CacheMiss(resource string)
}

// RestMetrics tracks the served REST API requests.
type RestMetrics interface {
	// RestRequestHandled records one handled request with its response class
	// and handling duration.
	RestRequestHandled(route string, code int, duration time.Duration)
}
