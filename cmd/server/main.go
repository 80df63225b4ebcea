// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/reelmatch/docs" // Register the generated OpenAPI document
	"github.com/tomtom215/reelmatch/internal/api"
	"github.com/tomtom215/reelmatch/internal/app"
	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/supervisor"
	"github.com/tomtom215/reelmatch/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
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
		Str("movies", cfg.Catalog.MoviesPath).
		Str("credits", cfg.Catalog.CreditsPath).
		Str("environment", cfg.Server.Environment).
		Msg("Starting reelmatch")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows any origin in production; set CORS_ORIGINS")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, err := app.Build(ctx, cfg)
	if err != nil {
		var loadErr *catalog.LoadError
		if errors.As(err, &loadErr) {
			logging.Fatal().Err(err).Str("path", loadErr.Path).Msg("Failed to load movie catalog")
		}
		logging.Fatal().Err(err).Msg("Failed to initialize recommendation pipeline")
	}
	defer func() {
		if err := a.Close(); err != nil {
			logging.Error().Err(err).Msg("Failed to close lookup cache")
		}
	}()

	stats := a.Engine.Stats()
	logging.Info().
		Int("movies", stats.Movies).
		Int("dropped", a.LoadStats.Dropped).
		Int("vocabulary", stats.VocabularySize).
		Dur("build", stats.VectorizeTime+stats.SimilarityTime).
		Msg("Recommendation index ready")

	handler := api.NewHandler(a.Engine, a.Resolver, cfg, a.LoadStats)
	router := api.NewRouter(handler, cfg.Security)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.Setup(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	if a.Cache != nil {
		tree.AddDataService(services.NewCacheGCService(a.Cache, cfg.Cache.GCInterval))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
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
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Reelmatch stopped")
}
