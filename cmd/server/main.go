// IssueScout - Open Source Issue Discovery and Recommendation
// Copyright 2026 IssueScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/issuescout/issuescout

// Package main is the entry point for the IssueScout server.
//
// IssueScout is a self-hosted discovery service for open source issues. It
// periodically pulls open issues from the GitHub search API, caches them in
// an embedded badger store, and serves filtered, searchable, and optionally
// personalized recommendations over a REST API.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables and config files (Koanf v2)
//  2. Store: Open badger and load the cached issue corpus into memory
//  3. GitHub client: Rate-limited client wrapped in a circuit breaker
//  4. Sync manager: Periodic fetch of open issues per configured language/label
//  5. HTTP server: REST API plus Prometheus metrics
//
// All long-running components run under a suture supervisor tree, so a
// crashing sync loop restarts with backoff while the API keeps serving the
// cached corpus.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins): environment variables, config file (config.yaml),
// built-in defaults. Common settings:
//
//	export HTTP_PORT=8080
//	export ISSUESCOUT_GITHUB_TOKEN=ghp_...   # optional, raises rate limits
//	export SYNC_LANGUAGES="Go,Rust,Python"
//	export SYNC_LABELS="good first issue,help wanted"
//	export STORE_PATH=/data/issuescout
//	./issuescout
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM: it stops
// accepting connections, drains in-flight requests (10s timeout), stops the
// sync manager, and closes the store.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/issuescout/issuescout/internal/api"
	"github.com/issuescout/issuescout/internal/config"
	"github.com/issuescout/issuescout/internal/githubsync"
	"github.com/issuescout/issuescout/internal/logging"
	"github.com/issuescout/issuescout/internal/metrics"
	"github.com/issuescout/issuescout/internal/store"
	"github.com/issuescout/issuescout/internal/supervisor"
	"github.com/issuescout/issuescout/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings.
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Bool("sync_enabled", cfg.Sync.Enabled).
		Bool("store_in_memory", cfg.Store.InMemory).
		Msg("Starting IssueScout")

	// Open badger and load the cached corpus.
	db, err := openBadger(&cfg.Store)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open store database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing store database")
		}
	}()

	st, err := store.New(db)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load store")
	}
	metrics.UpdateStoreGauges(st.IssueCount(), st.ProfileCount())
	logging.Info().
		Int("issues", st.IssueCount()).
		Int("profiles", st.ProfileCount()).
		Msg("Store loaded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Supervisor tree. The slog adapter bridges zerolog to sutureslog.
	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})

	// Sync manager behind a circuit breaker so sustained GitHub outages
	// stop burning the rate budget.
	var syncManager *githubsync.Manager
	if cfg.Sync.Enabled {
		client := githubsync.NewClient(&cfg.GitHub)
		breaker := githubsync.NewCircuitBreakerClient(client)
		syncManager = githubsync.NewManager(breaker, st, cfg.Sync)
		tree.AddSyncService(services.NewSyncService(syncManager))
		logging.Info().
			Dur("interval", cfg.Sync.Interval).
			Strs("languages", cfg.Sync.Languages).
			Strs("labels", cfg.Sync.Labels).
			Msg("Sync manager added to supervisor tree")
	} else {
		logging.Info().Msg("Background sync disabled")
	}

	// Badger value log GC only applies to disk-backed stores.
	if !cfg.Store.InMemory {
		tree.AddDataService(services.NewBadgerGCService(db, cfg.Store.GCInterval, cfg.Store.GCDiscardRatio))
	}

	// HTTP server. A nil sync manager must stay a nil interface inside the
	// handler, so convert explicitly.
	var syncController api.SyncController
	if syncManager != nil {
		syncController = syncManager
	}
	handler := api.NewHandler(st, syncController)
	router := api.NewRouter(handler, &cfg.API)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// Signal handling.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain the error channel; it closes when the supervisor has stopped.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// openBadger opens the store database per configuration. The badger logger
// is silenced; store-level operations log through zerolog instead.
func openBadger(cfg *config.StoreConfig) (*badger.DB, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(cfg.Path)
	}
	return badger.Open(opts.WithLogger(nil))
}
