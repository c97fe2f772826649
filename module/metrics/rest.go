package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/merklequery/merkled/module"
)

var _ module.RestMetrics = (*RestCollector)(nil)

// RestCollector tracks the requests served by the REST API.
type RestCollector struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func NewRestCollector() *RestCollector {
	return &RestCollector{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:      "requests_total",
			Namespace: namespaceRest,
			Subsystem: subsystemHTTP,
			Help:      "the number of handled HTTP requests",
		}, []string{"route", "code"}),
		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:      "request_duration_seconds",
			Namespace: namespaceRest,
			Subsystem: subsystemHTTP,
			Help:      "the latencies of handled HTTP requests",
		}, []string{"route", "code"}),
	}
}

func (rc *RestCollector) RestRequestHandled(route string, code int, duration time.Duration) {
	labels := prometheus.Labels{"route": route, "code": strconv.Itoa(code)}
	rc.requestsTotal.With(labels).Inc()
	rc.requestDuration.With(labels).Observe(duration.Seconds())
}
