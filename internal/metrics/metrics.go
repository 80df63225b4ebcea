// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Catalog Metrics
	CatalogMoviesLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_movies_loaded",
			Help: "Number of movies in the current catalog snapshot",
		},
	)

	CatalogRecordsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_records_dropped_total",
			Help: "Joined records dropped for missing required fields",
		},
	)

	CatalogLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_load_duration_seconds",
			Help:    "Time to read, join and normalize the source files",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	// Index Metrics
	IndexVocabularySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "index_vocabulary_size",
			Help: "Number of terms in the frozen vocabulary",
		},
	)

	IndexBuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "index_build_duration_seconds",
			Help:    "Duration of each index build stage",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"stage"}, // vectorize, similarity
	)

	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Recommendation queries by result",
		},
		[]string{"result"}, // found, unknown_title
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Time to rank one similarity row",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05},
		},
	)

	// Metadata Lookup Metrics
	LookupRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lookup_requests_total",
			Help: "Metadata lookups by outcome",
		},
		[]string{"outcome"}, // ok, not_found, error, disabled
	)

	LookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lookup_duration_seconds",
			Help:    "Metadata lookup latency including retries",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	LookupPlaceholders = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lookup_placeholders_total",
			Help: "Details served with placeholder metadata",
		},
	)

	LookupCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lookup_cache_hits_total",
			Help: "Lookup cache hits",
		},
		[]string{"backend"},
	)

	LookupCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lookup_cache_misses_total",
			Help: "Lookup cache misses",
		},
		[]string{"backend"},
	)

	LookupCacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "lookup_cache_entries",
			Help: "Entries held by the lookup cache after the last GC pass",
		},
		[]string{"backend"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // success, failure, rejected
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordCatalogLoad records the outcome of a successful catalog build.
func RecordCatalogLoad(loaded, dropped int, duration time.Duration) {
	CatalogMoviesLoaded.Set(float64(loaded))
	CatalogRecordsDropped.Add(float64(dropped))
	CatalogLoadDuration.Observe(duration.Seconds())
}

// RecordIndexStage records how long one index build stage took.
func RecordIndexStage(stage string, duration time.Duration) {
	IndexBuildDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// SetVocabularySize publishes the size of the frozen vocabulary.
func SetVocabularySize(n int) {
	IndexVocabularySize.Set(float64(n))
}

// RecordRecommendation records one recommendation query.
func RecordRecommendation(found bool, duration time.Duration) {
	result := "found"
	if !found {
		result = "unknown_title"
	}
	RecommendRequests.WithLabelValues(result).Inc()
	RecommendDuration.Observe(duration.Seconds())
}

// RecordLookup records one metadata lookup. outcome is ok, not_found,
// error or disabled.
func RecordLookup(outcome string, duration time.Duration) {
	LookupRequests.WithLabelValues(outcome).Inc()
	LookupDuration.Observe(duration.Seconds())
}

// RecordPlaceholder counts details served without live metadata.
func RecordPlaceholder() {
	LookupPlaceholders.Inc()
}

// RecordLookupCache records a cache probe for the given backend.
func RecordLookupCache(backend string, hit bool) {
	if hit {
		LookupCacheHits.WithLabelValues(backend).Inc()
	} else {
		LookupCacheMisses.WithLabelValues(backend).Inc()
	}
}

// SetLookupCacheEntries publishes the entry count of a cache backend.
func SetLookupCacheEntries(backend string, n int) {
	LookupCacheEntries.WithLabelValues(backend).Set(float64(n))
}
