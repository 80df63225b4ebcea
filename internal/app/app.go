// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package app assembles the recommendation pipeline from configuration:
// catalog load, index build, lookup cache and metadata resolver. Both the
// server and reelctl start from Build.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/lookup"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// App is a built pipeline. Everything but Cache is immutable.
type App struct {
	Config    *config.Config
	Catalog   *catalog.Catalog
	LoadStats catalog.LoadStats
	Engine    *recommend.Engine
	// Cache is the lookup cache; nil when lookups are disabled.
	Cache    cache.Store
	Resolver *lookup.Resolver
}

// Build loads the catalog, builds the index and wires the metadata lookup
// chain. Catalog failures are returned as *catalog.LoadError.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	cat, stats, err := catalog.NewLoader(catalog.LoaderConfig{
		MoviesPath:  cfg.Catalog.MoviesPath,
		CreditsPath: cfg.Catalog.CreditsPath,
		Threads:     cfg.Catalog.DuckDBThreads,
	}).Load(ctx)
	if err != nil {
		return nil, err
	}

	engine, err := recommend.NewEngine(cat, RecommendConfig(cfg), logging.WithComponent("recommend"))
	if err != nil {
		return nil, fmt.Errorf("build recommendation index: %w", err)
	}

	a := &App{
		Config:    cfg,
		Catalog:   cat,
		LoadStats: stats,
		Engine:    engine,
	}
	if err := a.wireLookup(); err != nil {
		return nil, err
	}
	return a, nil
}

// RecommendConfig maps the catalog and recommend sections onto the engine
// configuration.
func RecommendConfig(cfg *config.Config) *recommend.Config {
	rc := recommend.DefaultConfig()
	rc.MaxFeatures = cfg.Catalog.MaxFeatures
	rc.Workers = cfg.Catalog.Workers
	rc.DefaultK = cfg.Recommend.DefaultK
	rc.MaxK = cfg.Recommend.MaxK
	return rc
}

// LookupConfig maps the tmdb section onto the client configuration.
func LookupConfig(t config.TMDBConfig) lookup.Config {
	return lookup.Config{
		APIKey:            t.APIKey,
		BaseURL:           t.BaseURL,
		ImageBaseURL:      t.ImageBaseURL,
		Language:          t.Language,
		Timeout:           t.Timeout,
		RetryAttempts:     t.RetryAttempts,
		RetryDelay:        t.RetryDelay,
		RequestsPerSecond: t.RequestsPerSecond,
		Burst:             t.Burst,
	}
}

func (a *App) wireLookup() error {
	tmdb := a.Config.TMDB
	if !tmdb.Active() {
		logging.Info().Bool("enabled", tmdb.Enabled).Msg("TMDB lookups disabled, serving placeholder posters")
		a.Resolver = lookup.NewResolver(lookup.Disabled{}, tmdb.PlaceholderURL)
		return nil
	}

	store, err := cache.Open(cache.Config{
		Backend:  cache.Backend(a.Config.Cache.Backend),
		Path:     a.Config.Cache.Path,
		TTL:      a.Config.Cache.TTL,
		Capacity: a.Config.Cache.Capacity,
	})
	if err != nil {
		return fmt.Errorf("open lookup cache: %w", err)
	}

	lookuper, err := lookup.NewLookuper(LookupConfig(tmdb), store)
	if err != nil {
		return errors.Join(fmt.Errorf("create tmdb client: %w", err), store.Close())
	}

	a.Cache = store
	a.Resolver = lookup.NewResolver(lookuper, tmdb.PlaceholderURL)
	logging.Info().
		Str("cache_backend", store.Backend()).
		Str("base_url", tmdb.BaseURL).
		Msg("TMDB lookups enabled")
	return nil
}

// Close releases the lookup cache.
func (a *App) Close() error {
	if a.Cache == nil {
		return nil
	}
	return a.Cache.Close()
}
