// Package rest exposes the leaf query API over HTTP.
package rest

import (
	"net/http"
	"time"

	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/merklequery/merkled/engine/leaves"
	"github.com/merklequery/merkled/module"
)

// NewServer returns an HTTP server initialized with the API handler.
func NewServer(api leaves.API, committer Committer, listenAddress string, logger zerolog.Logger, collector module.RestMetrics) *http.Server {

	router := NewRouter(api, committer, logger, collector)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedHeaders: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
			http.MethodHead},
	})

	return &http.Server{
		Addr:         listenAddress,
		Handler:      c.Handler(router),
		WriteTimeout: time.Second * 15,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
	}
}
