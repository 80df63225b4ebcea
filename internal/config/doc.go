// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package config provides centralized configuration management for Reelmatch.

Configuration is layered with Koanf v2: struct defaults, then an optional
YAML file, then environment variables. The result is validated once and is
read-only afterwards.

# Configuration Sources

  - Defaults: defaultConfig()
  - Config file: CONFIG_PATH, else config.yaml, config.yml,
    /etc/reelmatch/config.yaml, /etc/reelmatch/config.yml
  - Environment: a fixed mapping of variable names to config keys
    (unknown variables are ignored)

# Sections

  - server: HTTP listen address, timeout, environment
  - catalog: source CSV paths, vocabulary cap, build workers
  - recommend: default and maximum K
  - tmdb: metadata lookup (optional; disabled without an API key)
  - cache: lookup cache backend (memory or badger), TTL, GC interval
  - filter: default and maximum row limit, default minimum rating
  - security: CORS origins, per-IP rate limit
  - logging: level, format, caller

# Environment Variables

	HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT, ENVIRONMENT
	MOVIES_CSV, CREDITS_CSV, CATALOG_MAX_FEATURES, CATALOG_WORKERS, CATALOG_DUCKDB_THREADS
	RECOMMEND_DEFAULT_K, RECOMMEND_MAX_K
	TMDB_ENABLED, TMDB_API_KEY, TMDB_BASE_URL, TMDB_IMAGE_BASE_URL, TMDB_LANGUAGE,
	TMDB_TIMEOUT, TMDB_RETRY_ATTEMPTS, TMDB_RETRY_DELAY, TMDB_REQUESTS_PER_SECOND,
	TMDB_BURST, POSTER_PLACEHOLDER_URL
	CACHE_BACKEND, CACHE_PATH, CACHE_TTL, CACHE_CAPACITY, CACHE_GC_INTERVAL
	FILTER_DEFAULT_LIMIT, FILTER_MAX_LIMIT, FILTER_DEFAULT_MIN_RATING
	CORS_ORIGINS (comma-separated), RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
	LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	srv := &http.Server{Addr: cfg.Server.Addr()}
*/
package config
