// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Swagger general API information, read by swag when regenerating /docs:
//
//	swag init -g cmd/server/docs.go -o docs --parseInternal
//
// @title Reelmatch API
// @version 1.0
// @description Content-based movie recommendations over the TMDB 5000 catalog.
// @description
// @description Recommendations rank catalog movies by cosine similarity of bag-of-words
// @description tag vectors built from overview, genres, keywords, top cast and directors.
// @description The index is built once at startup and is read-only afterwards.
// @description
// @description ## Rate Limiting
// @description
// @description API routes are limited per client IP (default 100 requests per minute).
// @description Health routes have a separate, higher limit.
// @description
// @description ## Error Responses
// @description
// @description Every response uses the same envelope:
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {"code": "VALIDATION_FAILED", "message": "k must be at most 1000"},
// @description   "meta": {"request_id": "...", "timestamp": "2026-01-01T00:00:00Z"}
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/reelmatch/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8501
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Health
// @tag.description Liveness and readiness probes
//
// @tag.name Recommendations
// @tag.description Similar-movie queries against the similarity index
//
// @tag.name Movies
// @tag.description Catalog filtering, lookup by id and TMDB details
//
// @tag.name Catalog
// @tag.description Catalog statistics, facets and titles
package main
