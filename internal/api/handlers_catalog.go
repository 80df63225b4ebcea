// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// CatalogStats is the payload of GET /catalog/stats.
type CatalogStats struct {
	Movies int                  `json:"movies"`
	Load   catalog.LoadStats    `json:"load"`
	Index  recommend.IndexStats `json:"index"`
	Uptime float64              `json:"uptime_seconds"`
}

// Facets lists the selector values of the filter.
type Facets struct {
	Genres []string `json:"genres"`
	Years  []string `json:"years"`
}

// GetCatalogStats handles GET /api/v1/catalog/stats.
//
// @Summary Catalog and index statistics
// @Tags Catalog
// @Produce json
// @Success 200 {object} APIResponse{data=CatalogStats} "Statistics"
// @Failure 503 {object} APIResponse "Index not built"
// @Router /catalog/stats [get]
func (h *Handler) GetCatalogStats(w http.ResponseWriter, r *http.Request) {
	if !h.requireIndex(w, r) {
		return
	}
	NewResponseWriter(w, r).Success(CatalogStats{
		Movies: h.catalog.Len(),
		Load:   h.loadStats,
		Index:  h.engine.Stats(),
		Uptime: time.Since(h.startTime).Seconds(),
	})
}

// GetCatalogFacets handles GET /api/v1/catalog/facets.
//
// @Summary Filter facets
// @Description Distinct genres and release years, sorted.
// @Tags Catalog
// @Produce json
// @Success 200 {object} APIResponse{data=Facets} "Facets"
// @Router /catalog/facets [get]
func (h *Handler) GetCatalogFacets(w http.ResponseWriter, r *http.Request) {
	if !h.requireIndex(w, r) {
		return
	}
	NewResponseWriter(w, r).Success(Facets{
		Genres: h.catalog.Genres(),
		Years:  h.catalog.Years(),
	})
}

// GetCatalogTitles handles GET /api/v1/catalog/titles. Titles are in
// catalog order and may repeat.
//
// @Summary Catalog titles
// @Tags Catalog
// @Produce json
// @Success 200 {object} APIResponse{data=[]string} "Titles in catalog order"
// @Router /catalog/titles [get]
func (h *Handler) GetCatalogTitles(w http.ResponseWriter, r *http.Request) {
	if !h.requireIndex(w, r) {
		return
	}
	titles := h.catalog.Titles()
	NewResponseWriter(w, r).SuccessList(titles, len(titles))
}
