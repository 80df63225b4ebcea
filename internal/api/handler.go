// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/lookup"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// Handler serves the API over an immutable catalog snapshot and its index.
// All fields are read-only after construction.
type Handler struct {
	engine    *recommend.Engine
	catalog   *catalog.Catalog
	resolver  *lookup.Resolver
	config    *config.Config
	loadStats catalog.LoadStats
	startTime time.Time
}

// NewHandler creates the API handler. resolver may be nil, in which case
// every poster and details lookup yields the placeholder.
func NewHandler(engine *recommend.Engine, resolver *lookup.Resolver, cfg *config.Config, loadStats catalog.LoadStats) *Handler {
	if resolver == nil {
		resolver = lookup.NewResolver(nil, cfg.TMDB.PlaceholderURL)
	}
	h := &Handler{
		engine:    engine,
		resolver:  resolver,
		config:    cfg,
		loadStats: loadStats,
		startTime: time.Now(),
	}
	if engine != nil {
		h.catalog = engine.Catalog()
	}
	return h
}

// ready reports whether the index is built and the catalog non-empty.
func (h *Handler) ready() bool {
	return h.engine != nil && h.catalog != nil && h.catalog.Len() > 0
}

// requireIndex writes 503 and returns false when the index is not built.
func (h *Handler) requireIndex(w http.ResponseWriter, r *http.Request) bool {
	if h.ready() {
		return true
	}
	logging.Ctx(r.Context()).Warn().Str("path", r.URL.Path).Msg("Request before index was built")
	NewResponseWriter(w, r).ServiceUnavailable("Recommendation index is not ready")
	return false
}

// writeParamError answers a query parameter parse failure.
func writeParamError(rw *ResponseWriter, err error) {
	rw.BadRequest(err.Error())
}
