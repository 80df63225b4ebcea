// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/lookup"
)

// Recommendation is one ranked result.
type Recommendation struct {
	Rank   int             `json:"rank"`
	ID     int             `json:"id"`
	Title  string          `json:"title"`
	Score  float64         `json:"score"`
	Poster *lookup.Details `json:"poster,omitempty"`
}

// RecommendResponse is the payload of GET /recommendations.
type RecommendResponse struct {
	Title           string           `json:"title"`
	Found           bool             `json:"found"`
	K               int              `json:"k"`
	Recommendations []Recommendation `json:"recommendations"`
}

// GetRecommendations handles GET /api/v1/recommendations.
// An unknown title yields 200 with found=false and no recommendations.
//
// @Summary Recommend similar movies
// @Description Ranks every other catalog movie by cosine similarity of its tag vector to the given title and returns the top k. Duplicate titles resolve to the first catalog occurrence.
// @Tags Recommendations
// @Produce json
// @Param title query string true "Exact movie title"
// @Param k query int false "Number of results (default 5, capped at recommend.max_k)" minimum(0) maximum(1000)
// @Param posters query bool false "Resolve TMDB posters for each result"
// @Success 200 {object} APIResponse{data=RecommendResponse} "Recommendations, or found=false for an unknown title"
// @Failure 400 {object} APIResponse "Invalid query parameters"
// @Failure 429 {object} APIResponse "Rate limit exceeded"
// @Failure 503 {object} APIResponse "Index not built"
// @Router /recommendations [get]
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, err := parseRecommendRequest(r)
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

	k := req.K
	if k <= 0 {
		k = h.config.Recommend.DefaultK
	}
	if maxK := h.config.Recommend.MaxK; maxK > 0 && k > maxK {
		k = maxK
	}

	scored, found := h.engine.Similar(req.Title, k)
	resp := RecommendResponse{
		Title:           req.Title,
		Found:           found,
		K:               k,
		Recommendations: make([]Recommendation, len(scored)),
	}
	for i, s := range scored {
		resp.Recommendations[i] = Recommendation{Rank: i + 1, ID: s.ID, Title: s.Title, Score: s.Score}
	}

	if req.Posters && len(scored) > 0 {
		titles := make([]string, len(scored))
		for i, s := range scored {
			titles[i] = s.Title
		}
		posters := h.resolver.ResolveMany(r.Context(), titles)
		for i := range posters {
			resp.Recommendations[i].Poster = &posters[i]
		}
	}

	logging.Ctx(r.Context()).Debug().
		Str("title", req.Title).
		Bool("found", found).
		Int("results", len(scored)).
		Msg("Recommendations served")

	rw.Success(resp)
}
