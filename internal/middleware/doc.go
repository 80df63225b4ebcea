// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package middleware provides the HTTP middleware shared by the API router.

All middleware use the chi signature func(http.Handler) http.Handler.

Key Components:

  - RequestID: X-Request-ID propagation plus request and correlation IDs in
    the logging context
  - PrometheusMetrics: request count, duration and in-flight gauge, labelled
    by chi route pattern to keep label cardinality bounded
  - AccessLog: one structured log line per request; slow requests at warn
  - SecurityHeaders: nosniff, frame and referrer headers, HSTS behind TLS

Typical stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog(time.Second))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
