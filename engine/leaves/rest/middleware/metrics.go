package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/merklequery/merkled/module"
)

// MetricsMiddleware records the handled requests per route with their
// response code and duration.
func MetricsMiddleware(collector module.RestMetrics) mux.MiddlewareFunc {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			respWriter := newResponseWriter(w)
			handler.ServeHTTP(respWriter, req)

			route := req.URL.Path
			if current := mux.CurrentRoute(req); current != nil {
				if template, err := current.GetPathTemplate(); err == nil {
					route = template
				}
			}
			collector.RestRequestHandled(route, respWriter.statusCode, time.Since(start))
		})
	}
}
