package metrics

import (
	"time"

	"github.com/merklequery/merkled/module"
)

var _ module.CacheMetrics = (*NoopCollector)(nil)
var _ module.RestMetrics = (*NoopCollector)(nil)

// NoopCollector ignores all metrics. It is used in tests and wherever
// instrumentation is not wired up.
type NoopCollector struct{}

func NewNoopCollector() *NoopCollector {
	return &NoopCollector{}
}

func (nc *NoopCollector) CacheEntries(resource string, entries uint)                        {}
func (nc *NoopCollector) CacheHit(resource string)                                          {}
func (nc *NoopCollector) CacheMiss(resource string)                                         {}
func (nc *NoopCollector) RestRequestHandled(route string, code int, duration time.Duration) {}
