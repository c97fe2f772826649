package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/merklequery/merkled/engine/leaves/backend"
	"github.com/merklequery/merkled/engine/leaves/ingest"
	"github.com/merklequery/merkled/engine/leaves/rest"
	"github.com/merklequery/merkled/module/metrics"
	protocol "github.com/merklequery/merkled/state/badger"
	bstorage "github.com/merklequery/merkled/storage/badger"
)

func main() {

	var (
		listenAddr  string
		metricsPort uint
		datadir     string
		level       string
		readOnly    bool
	)

	pflag.StringVar(&listenAddr, "listen-addr", ":8080", "address to serve the leaf query API on")
	pflag.UintVar(&metricsPort, "metrics-port", 9090, "port to serve the /metrics endpoint on")
	pflag.StringVar(&datadir, "datadir", "data", "directory to store the state database in")
	pflag.StringVar(&level, "loglevel", "info", "log level (debug, info, warn, error)")
	pflag.BoolVar(&readOnly, "read-only", false, "disable the leaf commit endpoint")
	pflag.Parse()

	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Fatal().Str("loglevel", level).Msg("invalid log level")
	}
	log = log.Level(logLevel)

	db, err := badger.Open(badger.DefaultOptions(datadir).WithLogger(nil))
	if err != nil {
		log.Fatal().Err(err).Str("datadir", datadir).Msg("could not open database")
	}
	defer db.Close()

	storageCollector := metrics.NewStorageCollector()
	snapshots := bstorage.NewSnapshots(storageCollector, db)
	leaves := bstorage.NewLeaves(db)
	mutable := protocol.NewMutableState(db, snapshots, leaves)

	api := backend.New(mutable, log)
	var committer rest.Committer
	if !readOnly {
		committer = ingest.NewCommitter(mutable, log)
	}

	metricsServer := metrics.NewServer(log, metricsPort)
	<-metricsServer.Ready()

	server := rest.NewServer(api, committer, listenAddr, log, metrics.NewRestCollector())

	go func() {
		log.Info().Str("address", listenAddr).Msg("leaf query server started")
		if err := server.ListenAndServe(); err != nil {
			log.Err(err).Msg("leaf query server stopped")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Err(err).Msg("could not shut down server cleanly")
	}
	<-metricsServer.Done()
}
