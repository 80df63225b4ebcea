// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package metrics exposes the service's Prometheus collectors.

All collectors are registered with the default registry through promauto at
package init, so importing the package is enough to make them visible on
/metrics.

# Available Metrics

API:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Catalog and index:
  - catalog_movies_loaded
  - catalog_records_dropped_total
  - catalog_load_duration_seconds
  - index_vocabulary_size
  - index_build_duration_seconds{stage}  (vectorize, similarity)

Recommendations:
  - recommend_requests_total{result}  (found, unknown_title)
  - recommend_duration_seconds

Metadata lookup:
  - lookup_requests_total{outcome}  (ok, not_found, error, disabled)
  - lookup_duration_seconds
  - lookup_placeholders_total
  - lookup_cache_hits_total{backend}, lookup_cache_misses_total{backend}
  - lookup_cache_entries{backend}

Circuit breaker:
  - circuit_breaker_state{name}  (0=closed, 1=half-open, 2=open)
  - circuit_breaker_requests_total{name, result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name, from_state, to_state}

# Usage

	metrics.RecordRecommendation(found, time.Since(start))

Example PromQL:

	# unknown-title ratio
	sum(rate(recommend_requests_total{result="unknown_title"}[5m]))
	  / sum(rate(recommend_requests_total[5m]))

	# lookup p95
	histogram_quantile(0.95, rate(lookup_duration_seconds_bucket[5m]))
*/
package metrics
