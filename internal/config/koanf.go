// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/reelmatch/config.yaml",
	"/etc/reelmatch/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// Defaults returns the built-in configuration without file or environment
// layers applied.
func Defaults() *Config {
	return defaultConfig()
}

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8501,
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Catalog: CatalogConfig{
			MoviesPath:    "data/tmdb_5000_movies.csv",
			CreditsPath:   "data/tmdb_5000_credits.csv",
			MaxFeatures:   5000,
			Workers:       0, // 0 = use runtime.NumCPU()
			DuckDBThreads: 0,
		},
		Recommend: RecommendConfig{
			DefaultK: 5,
			MaxK:     50,
		},
		TMDB: TMDBConfig{
			Enabled:           true, // still needs an API key to take effect
			APIKey:            "",
			BaseURL:           "https://api.themoviedb.org/3",
			ImageBaseURL:      "https://image.tmdb.org/t/p/w500",
			Language:          "en-US",
			Timeout:           10 * time.Second,
			RetryAttempts:     3,
			RetryDelay:        500 * time.Millisecond,
			RequestsPerSecond: 20,
			Burst:             10,
			PlaceholderURL:    "https://via.placeholder.com/150",
		},
		Cache: CacheConfig{
			Backend:    "memory",
			Path:       "/data/lookup-cache",
			TTL:        24 * time.Hour,
			Capacity:   10000,
			GCInterval: 10 * time.Minute,
		},
		Filter: FilterConfig{
			DefaultLimit:     15,
			MaxLimit:         100,
			DefaultMinRating: 0,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   1 * time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	return LoadFile("")
}

// LoadFile is LoadWithKoanf with an explicit config file. An empty path
// falls back to CONFIG_PATH and DefaultConfigPaths; a non-empty path must
// exist.
func LoadFile(path string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	configPath := path
	if configPath == "" {
		configPath = findConfigFile()
	} else if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("config file %s: %w", configPath, err)
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// TMDB_API_KEY -> tmdb.api_key
	// HTTP_PORT -> server.port
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Post-process slice fields from comma-separated strings
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		// Already a slice (from YAML or defaults)
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lower-cased) to koanf paths.
var envMappings = map[string]string{
	// Server mappings
	"http_host":    "server.host",
	"http_port":    "server.port",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	// Catalog mappings
	"movies_csv":             "catalog.movies_path",
	"credits_csv":            "catalog.credits_path",
	"catalog_max_features":   "catalog.max_features",
	"catalog_workers":        "catalog.workers",
	"catalog_duckdb_threads": "catalog.duckdb_threads",

	// Recommend mappings
	"recommend_default_k": "recommend.default_k",
	"recommend_max_k":     "recommend.max_k",

	// TMDB mappings
	"tmdb_enabled":             "tmdb.enabled",
	"tmdb_api_key":             "tmdb.api_key",
	"tmdb_base_url":            "tmdb.base_url",
	"tmdb_image_base_url":      "tmdb.image_base_url",
	"tmdb_language":            "tmdb.language",
	"tmdb_timeout":             "tmdb.timeout",
	"tmdb_retry_attempts":      "tmdb.retry_attempts",
	"tmdb_retry_delay":         "tmdb.retry_delay",
	"tmdb_requests_per_second": "tmdb.requests_per_second",
	"tmdb_burst":               "tmdb.burst",
	"poster_placeholder_url":   "tmdb.placeholder_url",

	// Cache mappings
	"cache_backend":     "cache.backend",
	"cache_path":        "cache.path",
	"cache_ttl":         "cache.ttl",
	"cache_capacity":    "cache.capacity",
	"cache_gc_interval": "cache.gc_interval",

	// Filter mappings
	"filter_default_limit":      "filter.default_limit",
	"filter_max_limit":          "filter.max_limit",
	"filter_default_min_rating": "filter.default_min_rating",

	// Security mappings
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// Logging mappings
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Unknown variables return "" and are ignored.
//
// Examples:
//   - TMDB_API_KEY -> tmdb.api_key
//   - MOVIES_CSV -> catalog.movies_path
//   - HTTP_PORT -> server.port
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
