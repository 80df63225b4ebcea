// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/middleware"
)

// slowRequestThreshold is the AccessLog warn threshold.
const slowRequestThreshold = time.Second

// Router sets up HTTP routes using the Chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router for h with middleware configured from the
// security section.
func NewRouter(h *Handler, sec config.SecurityConfig) *Router {
	mwConfig := DefaultChiMiddlewareConfig()
	mwConfig.CORSAllowedOrigins = sec.CORSOrigins
	mwConfig.RateLimitRequests = sec.RateLimitReqs
	mwConfig.RateLimitWindow = sec.RateLimitWindow
	mwConfig.RateLimitDisabled = sec.RateLimitDisabled

	return &Router{
		handler:       h,
		chiMiddleware: NewChiMiddleware(mwConfig),
	}
}

// Setup builds the chi route tree.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()
	h := router.handler
	mw := router.chiMiddleware

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog(slowRequestThreshold))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Compress(5, "application/json"))
	r.Use(mw.CORS())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).NotFound("No route for " + r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).Error(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
	})

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(mw.RateLimitHealth())
		r.Use(middleware.PrometheusMetrics)
		r.Get("/live", h.HealthLive)
		r.Get("/ready", h.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(mw.RateLimit())
		r.Use(middleware.SecurityHeaders)
		r.Use(middleware.PrometheusMetrics)

		r.Get("/recommendations", h.GetRecommendations)
		r.Get("/movies", h.GetMovies)
		r.Get("/movies/{id}", h.GetMovie)
		r.Get("/details", h.GetDetails)

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/stats", h.GetCatalogStats)
			r.Get("/facets", h.GetCatalogFacets)
			r.Get("/titles", h.GetCatalogTitles)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	logging.Debug().Msg("API routes registered")
	return r
}
