// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/reelmatch/internal/catalog"
)

// GetMovies handles GET /api/v1/movies, the catalog filter.
//
// @Summary Filter the catalog
// @Description Filters by release year, genre, minimum rating and title substring, optionally sorted by rating or revenue (descending, stable).
// @Tags Movies
// @Produce json
// @Param year query string false "Four-digit release year"
// @Param genre query string false "Genre name, case and spaces ignored"
// @Param min_rating query number false "Minimum rating 0-10" minimum(0) maximum(10)
// @Param q query string false "Case-insensitive title substring"
// @Param sort query string false "Sort key" Enums(rating, revenue)
// @Param limit query int false "Maximum rows (default 15)"
// @Success 200 {object} APIResponse{data=[]catalog.Movie} "Matching movies"
// @Failure 400 {object} APIResponse "Invalid query parameters"
// @Router /movies [get]
func (h *Handler) GetMovies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, err := parseMoviesRequest(r, h.config.Filter.DefaultMinRating)
	if err != nil {
		writeParamError(rw, err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}
	if !h.requireIndex(w, r) {
		return
	}

	sortKey, _ := catalog.ParseSortKey(req.Sort)
	movies := h.catalog.Filter(catalog.Criteria{
		Year:      req.Year,
		Genre:     req.Genre,
		MinRating: req.MinRating,
		Query:     req.Query,
		SortBy:    sortKey,
		Limit:     h.filterLimit(req.Limit),
	})

	rw.SuccessList(movies, len(movies))
}

// filterLimit applies the configured default and maximum to a requested
// limit.
func (h *Handler) filterLimit(requested int) int {
	limit := requested
	if limit <= 0 {
		limit = h.config.Filter.DefaultLimit
	}
	if limit > h.config.Filter.MaxLimit {
		limit = h.config.Filter.MaxLimit
	}
	return limit
}

// GetMovie handles GET /api/v1/movies/{id}.
//
// @Summary Get a movie by TMDB id
// @Tags Movies
// @Produce json
// @Param id path int true "TMDB movie id"
// @Success 200 {object} APIResponse{data=catalog.Movie} "Movie"
// @Failure 400 {object} APIResponse "Invalid id"
// @Failure 404 {object} APIResponse "No movie with this id"
// @Router /movies/{id} [get]
func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		rw.BadRequest("Invalid movie id: " + strconv.Quote(idStr))
		return
	}
	if !h.requireIndex(w, r) {
		return
	}

	movie, ok := h.catalog.ByID(id)
	if !ok {
		rw.NotFound("Movie " + idStr + " not found")
		return
	}
	rw.Success(movie)
}
