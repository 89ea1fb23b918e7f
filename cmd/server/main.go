// GameGate - Casual Games Catalog and Recommendation Service
// Copyright 2026 GameGate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamegate/gamegate

// Command server runs the GameGate HTTP API.
//
// Startup order matters: configuration is loaded first so logging can be
// initialized with the configured level and format, then the game catalogs,
// session store, recommendation scorer, and HTTP stack are wired together
// and handed to a supervisor tree for lifecycle management.
//
// Configuration is read from an optional YAML file (CONFIG_PATH or one of
// the default locations) with environment variable overrides on top; see
// the config package for the full list of settings.
//
// The process shuts down gracefully on SIGINT or SIGTERM: the supervisor
// cancels every service, the HTTP server drains in-flight requests within
// the configured shutdown timeout, and the session store is closed last.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gamegate/gamegate/internal/api"
	"github.com/gamegate/gamegate/internal/catalog"
	"github.com/gamegate/gamegate/internal/config"
	"github.com/gamegate/gamegate/internal/logging"
	"github.com/gamegate/gamegate/internal/recommend"
	"github.com/gamegate/gamegate/internal/session"
	"github.com/gamegate/gamegate/internal/supervisor"
	"github.com/gamegate/gamegate/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("session_store", cfg.Session.Store).
		Str("default_locale", cfg.Catalog.DefaultLocale).
		Msg("Starting GameGate with supervisor tree")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	catalogs, err := catalog.NewStore(cfg.Catalog.DefaultLocale)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load game catalogs")
	}
	for _, locale := range catalogs.Locales() {
		logging.Info().
			Str("locale", locale).
			Int("games", catalogs.Catalog(locale).Len()).
			Msg("Game catalog loaded")
	}

	factory, err := session.NewStoreFactory(session.StoreType(cfg.Session.Store), cfg.Session.StorePath)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize session store")
	}
	store := factory.CreateStore()
	defer func() {
		if err := factory.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing session store")
		}
	}()

	if cfg.Session.Store == "memory" {
		logging.Warn().Msg("Session store is 'memory': profiles are lost on restart, set SESSION_STORE=badger for persistence")
	}

	sessions := session.NewManager(store, catalogs)
	scorer := recommend.NewScorer(cfg.Recommend)

	handler := api.NewHandler(catalogs, sessions, scorer, cfg)
	defer handler.Close()
	router := api.NewRouter(handler, &cfg.Security)

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	treeConfig := supervisor.DefaultTreeConfig()
	treeConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout
	tree, err := supervisor.NewTree(logging.NewSlogLogger(), treeConfig)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build supervisor tree")
	}

	// Storage layer: Badger value-log GC only runs when the badger store is
	// active; the memory store has nothing to compact.
	if db := factory.DB(); db != nil {
		tree.AddStorageService(services.NewBadgerGCService(db, cfg.Session.BadgerGCInterval))
		logging.Info().
			Dur("interval", cfg.Session.BadgerGCInterval).
			Msg("Badger GC service added to supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("GameGate stopped gracefully")
}
