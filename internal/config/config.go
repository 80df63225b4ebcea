// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	TMDB      TMDBConfig      `koanf:"tmdb"` // Optional: poster and details lookup
	Cache     CacheConfig     `koanf:"cache"`
	Filter    FilterConfig    `koanf:"filter"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development or production
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// CatalogConfig locates the two source CSV files and tunes the index build.
type CatalogConfig struct {
	MoviesPath  string `koanf:"movies_path"`
	CreditsPath string `koanf:"credits_path"`
	// MaxFeatures caps the vocabulary size.
	MaxFeatures int `koanf:"max_features"`
	// Workers for the similarity build. 0 = runtime.NumCPU()
	Workers int `koanf:"workers"`
	// DuckDBThreads for CSV loading. 0 = DuckDB default
	DuckDBThreads int `koanf:"duckdb_threads"`
}

// RecommendConfig holds recommendation query limits
type RecommendConfig struct {
	DefaultK int `koanf:"default_k"`
	MaxK     int `koanf:"max_k"`
}

// TMDBConfig holds metadata lookup settings. Lookups are disabled when
// Enabled is false or APIKey is empty; posters then use PlaceholderURL.
type TMDBConfig struct {
	Enabled           bool          `koanf:"enabled"`
	APIKey            string        `koanf:"api_key"`
	BaseURL           string        `koanf:"base_url"`
	ImageBaseURL      string        `koanf:"image_base_url"`
	Language          string        `koanf:"language"`
	Timeout           time.Duration `koanf:"timeout"`
	RetryAttempts     int           `koanf:"retry_attempts"`
	RetryDelay        time.Duration `koanf:"retry_delay"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Burst             int           `koanf:"burst"`
	PlaceholderURL    string        `koanf:"placeholder_url"`
}

// Active reports whether lookups should reach the API.
func (t TMDBConfig) Active() bool {
	return t.Enabled && t.APIKey != ""
}

// CacheConfig holds lookup cache settings
type CacheConfig struct {
	Backend    string        `koanf:"backend"` // memory or badger
	Path       string        `koanf:"path"`    // badger directory
	TTL        time.Duration `koanf:"ttl"`
	Capacity   int           `koanf:"capacity"` // memory backend only
	GCInterval time.Duration `koanf:"gc_interval"`
}

// FilterConfig holds movie filter defaults
type FilterConfig struct {
	DefaultLimit     int     `koanf:"default_limit"`
	MaxLimit         int     `koanf:"max_limit"`
	DefaultMinRating float64 `koanf:"default_min_rating"`
}

// SecurityConfig holds CORS and rate limit settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load loads configuration using Koanf.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
