// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package api provides the HTTP API for movie recommendations.

Routes are served by chi under /api/v1 with CORS, per-IP rate limiting,
security headers and Prometheus metrics. Every JSON response uses the
APIResponse envelope:

	{"success": true, "data": {...}, "meta": {"request_id": "...", "timestamp": "..."}}
	{"success": false, "error": {"code": "NOT_FOUND", "message": "..."}, "meta": {...}}

Endpoints:

	GET /api/v1/health/live
	GET /api/v1/health/ready
	GET /api/v1/recommendations?title=&k=&posters=
	GET /api/v1/movies?year=&genre=&min_rating=&q=&sort=&limit=
	GET /api/v1/movies/{id}
	GET /api/v1/details?title=
	GET /api/v1/catalog/stats
	GET /api/v1/catalog/facets
	GET /api/v1/catalog/titles
	GET /metrics

An unknown recommendation title is not an error: the response is 200 with
"found": false and an empty list.
*/
package api
