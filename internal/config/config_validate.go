// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateTMDB(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	if err := c.validateFilter(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates HTTP server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.Environment != "development" && c.Server.Environment != "production" {
		return fmt.Errorf("ENVIRONMENT must be one of: development, production")
	}
	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// validateCatalog validates catalog source and index settings
func (c *Config) validateCatalog() error {
	if strings.TrimSpace(c.Catalog.MoviesPath) == "" {
		return fmt.Errorf("MOVIES_CSV is required")
	}
	if strings.TrimSpace(c.Catalog.CreditsPath) == "" {
		return fmt.Errorf("CREDITS_CSV is required")
	}
	if c.Catalog.MaxFeatures < 1 {
		return fmt.Errorf("CATALOG_MAX_FEATURES must be at least 1")
	}
	if c.Catalog.Workers < 0 {
		return fmt.Errorf("CATALOG_WORKERS must not be negative")
	}
	if c.Catalog.DuckDBThreads < 0 {
		return fmt.Errorf("CATALOG_DUCKDB_THREADS must not be negative")
	}
	return nil
}

// validateRecommend validates recommendation limits
func (c *Config) validateRecommend() error {
	if c.Recommend.DefaultK < 1 {
		return fmt.Errorf("RECOMMEND_DEFAULT_K must be at least 1")
	}
	if c.Recommend.MaxK < c.Recommend.DefaultK {
		return fmt.Errorf("RECOMMEND_MAX_K must be >= RECOMMEND_DEFAULT_K")
	}
	return nil
}

// validateTMDB validates lookup settings (only if active)
func (c *Config) validateTMDB() error {
	if err := validateHTTPURL(c.TMDB.PlaceholderURL, "POSTER_PLACEHOLDER_URL", true); err != nil {
		return err
	}
	if !c.TMDB.Active() {
		return nil
	}
	if containsPlaceholder(c.TMDB.APIKey) {
		return fmt.Errorf("TMDB_API_KEY contains a placeholder value; set a real key or unset it")
	}
	if err := validateHTTPURL(c.TMDB.BaseURL, "TMDB_BASE_URL", true); err != nil {
		return err
	}
	if err := validateHTTPURL(c.TMDB.ImageBaseURL, "TMDB_IMAGE_BASE_URL", true); err != nil {
		return err
	}
	if c.TMDB.Timeout <= 0 {
		return fmt.Errorf("TMDB_TIMEOUT must be positive")
	}
	if c.TMDB.RetryAttempts < 0 || c.TMDB.RetryAttempts > 10 {
		return fmt.Errorf("TMDB_RETRY_ATTEMPTS must be between 0 and 10")
	}
	if c.TMDB.RequestsPerSecond < 0 {
		return fmt.Errorf("TMDB_REQUESTS_PER_SECOND must not be negative")
	}
	return nil
}

// validCacheBackends defines the allowed lookup cache backends
var validCacheBackends = map[string]bool{
	"memory": true,
	"badger": true,
}

// validateCache validates lookup cache configuration
func (c *Config) validateCache() error {
	if !validCacheBackends[c.Cache.Backend] {
		return fmt.Errorf("CACHE_BACKEND must be one of: memory, badger")
	}
	if c.Cache.Backend == "badger" && strings.TrimSpace(c.Cache.Path) == "" {
		return fmt.Errorf("CACHE_PATH is required when CACHE_BACKEND=badger")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}
	if c.Cache.GCInterval < time.Second {
		return fmt.Errorf("CACHE_GC_INTERVAL must be at least 1s")
	}
	return nil
}

// validateFilter validates filter defaults
func (c *Config) validateFilter() error {
	if c.Filter.DefaultLimit < 1 {
		return fmt.Errorf("FILTER_DEFAULT_LIMIT must be at least 1")
	}
	if c.Filter.MaxLimit < c.Filter.DefaultLimit {
		return fmt.Errorf("FILTER_MAX_LIMIT must be >= FILTER_DEFAULT_LIMIT")
	}
	if c.Filter.DefaultMinRating < 0 || c.Filter.DefaultMinRating > 10 {
		return fmt.Errorf("FILTER_DEFAULT_MIN_RATING must be between 0 and 10")
	}
	return nil
}

// validateSecurity validates CORS and rate limiting configuration
func (c *Config) validateSecurity() error {
	if err := c.validateCORS(); err != nil {
		return err
	}
	return c.validateRateLimits()
}

// validateCORS rejects empty origin lists. The API is read-only, so a
// wildcard is allowed but flagged by ShouldWarnAboutCORS in production.
func (c *Config) validateCORS() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin")
	}
	return nil
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS returns true if CORS configuration has concerns
// that should be logged at startup
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.IsProduction() && c.hasWildcardCORS()
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if err := c.validateRateLimitRequests(); err != nil {
		return err
	}
	return c.validateRateLimitWindow()
}

// validateRateLimitRequests validates the rate limit requests value
func (c *Config) validateRateLimitRequests() error {
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	return nil
}

// validateRateLimitWindow validates the rate limit window value
func (c *Config) validateRateLimitWindow() error {
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if err := c.validateLogLevel(); err != nil {
		return err
	}
	return c.validateLogFormat()
}

// validateLogLevel validates the log level configuration
func (c *Config) validateLogLevel() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	return nil
}

// validateLogFormat validates the log format configuration
func (c *Config) validateLogFormat() error {
	if c.Logging.Format == "" {
		return nil
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// placeholderPatterns defines common placeholder patterns that indicate
// the user forgot to set a real value.
var placeholderPatterns = []string{
	"REPLACE",
	"CHANGEME",
	"CHANGE_ME",
	"YOUR_API_KEY",
	"YOUR_KEY",
	"PLACEHOLDER",
	"EXAMPLE",
}

// containsPlaceholder checks if a value contains common placeholder patterns
func containsPlaceholder(value string) bool {
	upperValue := strings.ToUpper(value)
	return containsAnyPattern(upperValue, placeholderPatterns)
}

// containsAnyPattern checks if a string contains any of the provided patterns
func containsAnyPattern(s string, patterns []string) bool {
	for _, pattern := range patterns {
		if strings.Contains(s, pattern) {
			return true
		}
	}
	return false
}
