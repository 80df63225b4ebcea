// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/reelmatch/internal/details"
)

// GetDetails handles GET /api/v1/details. It drives one details session
// cycle; a title unknown to both TMDB and the catalog yields 200 with
// found=false and placeholder details.
//
// @Summary Movie details
// @Description Looks the title up on TMDB. Falls back to catalog data and a placeholder poster when TMDB is disabled or fails.
// @Tags Movies
// @Produce json
// @Param title query string true "Movie title"
// @Success 200 {object} APIResponse{data=details.Panel} "Details panel"
// @Failure 400 {object} APIResponse "Invalid query parameters"
// @Router /details [get]
func (h *Handler) GetDetails(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := DetailsRequest{Title: r.URL.Query().Get("title")}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	panel, err := details.Show(r.Context(), h.catalog, h.resolver, req.Title)
	switch {
	case errors.Is(err, details.ErrEmptyTitle):
		rw.BadRequest(err.Error())
		return
	case err != nil:
		rw.InternalError("Failed to render details")
		return
	}
	rw.Success(panel)
}
