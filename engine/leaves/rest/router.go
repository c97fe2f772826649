package rest

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/merklequery/merkled/engine/leaves"
	"github.com/merklequery/merkled/engine/leaves/rest/middleware"
	"github.com/merklequery/merkled/module"
)

// NewRouter builds the versioned API router. A nil committer disables the
// write endpoint, leaving a purely read-only node.
func NewRouter(api leaves.API, committer Committer, logger zerolog.Logger, collector module.RestMetrics) *mux.Router {

	router := mux.NewRouter().StrictSlash(true)
	v1 := router.PathPrefix("/v1").Subrouter()

	v1.Use(middleware.LoggingMiddleware(logger))
	v1.Use(middleware.MetricsMiddleware(collector))

	v1.Handle("/trees/{tree_id}/leaves", NewHandler(logger, GetTreeLeaves(api))).
		Methods(http.MethodGet).
		Name("getTreeLeaves")

	v1.Handle("/snapshots/head", NewHandler(logger, GetHeadSnapshot(api))).
		Methods(http.MethodGet).
		Name("getHeadSnapshot")

	if committer != nil {
		v1.Handle("/trees/{tree_id}/leaves", NewHandler(logger, CreateTreeLeaves(committer))).
			Methods(http.MethodPost).
			Name("createTreeLeaves")
	}

	return router
}
