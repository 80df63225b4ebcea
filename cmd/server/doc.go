// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package main is the entry point of the reelmatch recommendation server.

The server loads two TMDB 5000 CSV files (movies and credits), builds a
bag-of-words similarity index over each movie's tags and serves
recommendations, catalog filters and movie details over HTTP.

# Startup

 1. Configuration: koanf layers of defaults, config.yaml and environment
 2. Logging: zerolog with the configured level and format
 3. Catalog: DuckDB joins the two CSV files; any load error is fatal
 4. Index: tag documents, 5000-term vocabulary, cosine similarity matrix
 5. Lookup: TMDB client behind rate limiter, circuit breaker and cache
 6. Supervisor: HTTP server and lookup cache GC under suture

# Configuration

Common environment variables:

	MOVIES_CSV=data/tmdb_5000_movies.csv
	CREDITS_CSV=data/tmdb_5000_credits.csv
	HTTP_PORT=8501
	TMDB_API_KEY=...            # lookups and posters; placeholder without it
	CACHE_BACKEND=badger        # memory (default) or badger
	CACHE_PATH=/data/lookup-cache
	LOG_LEVEL=info
	LOG_FORMAT=json

A YAML file with the same keys is read from CONFIG_PATH, ./config.yaml or
/etc/reelmatch/config.yaml.

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree: the HTTP server stops
accepting connections and drains in-flight requests, the cache GC stops and
the lookup cache is closed.
*/
package main
