package metrics

// Prometheus metric namespaces
const (
	namespaceStorage = "storage"
	namespaceRest    = "rest"
)

// Prometheus metric subsystems
const (
	subsystemCache = "cache"
	subsystemHTTP  = "http"
)
