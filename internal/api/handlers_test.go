// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/lookup"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// testMovies is a small catalog with two clusters and a duplicate title.
func testMovies() []catalog.Movie {
	return []catalog.Movie{
		{ID: 19995, Title: "Avatar", OverviewTokens: []string{"space", "marine", "alien", "planet"},
			Genres: []string{"Action", "ScienceFiction"}, ReleaseDate: "2009-12-10", ReleaseYear: "2009", Rating: 7.2, Revenue: 2787965087},
		{ID: 1, Title: "Aliens", OverviewTokens: []string{"space", "marine", "alien"},
			Genres: []string{"ScienceFiction"}, ReleaseDate: "1986-07-18", ReleaseYear: "1986", Rating: 7.7, Revenue: 183316455},
		{ID: 2, Title: "Interstellar", OverviewTokens: []string{"space", "planet", "time"},
			Genres: []string{"ScienceFiction", "Drama"}, ReleaseDate: "2014-11-05", ReleaseYear: "2014", Rating: 8.1, Revenue: 675120017},
		{ID: 3, Title: "Notting Hill", OverviewTokens: []string{"love", "bookshop", "london"},
			Genres: []string{"Romance", "Comedy"}, ReleaseDate: "1999-05-13", ReleaseYear: "1999", Rating: 7.0, Revenue: 363889678},
		{ID: 4, Title: "Love Actually", OverviewTokens: []string{"love", "london", "christmas"},
			Genres: []string{"Romance", "Comedy"}, ReleaseDate: "2003-09-07", ReleaseYear: "2003", Rating: 7.0, Revenue: 244931766},
		{ID: 5, Title: "Aliens", OverviewTokens: []string{"love", "alien"},
			Genres: []string{"Comedy"}, ReleaseDate: "2010-01-01", ReleaseYear: "2010", Rating: 4.0},
	}
}

// newTestHandler builds a handler over testMovies with lookups disabled.
func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	engine, err := recommend.NewEngine(catalog.New(testMovies()), recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return NewHandler(engine, nil, config.Defaults(), catalog.LoadStats{Loaded: 6})
}

// newTestServer serves the full router over newTestHandler.
func newTestServer(t *testing.T, h *Handler) *httptest.Server {
	t.Helper()
	sec := config.Defaults().Security
	sec.RateLimitDisabled = true
	server := httptest.NewServer(NewRouter(h, sec).Setup())
	t.Cleanup(server.Close)
	return server
}

// envelope decodes an APIResponse whose data is decoded into data.
func envelope(t *testing.T, body []byte, data interface{}) APIResponse {
	t.Helper()
	var resp APIResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode envelope %q: %v", body, err)
	}
	if data == nil {
		return resp
	}
	var raw struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(raw.Data) > 0 {
		if err := json.Unmarshal(raw.Data, data); err != nil {
			t.Fatalf("decode data %s: %v", raw.Data, err)
		}
	}
	return resp
}

func get(t *testing.T, handler http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestHealth(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	rec := get(t, h.HealthLive, "/api/v1/health/live")
	var live LiveStatus
	if resp := envelope(t, rec.Body.Bytes(), &live); rec.Code != http.StatusOK || !resp.Success || !live.Alive {
		t.Errorf("live = %d %+v", rec.Code, live)
	}

	rec = get(t, h.HealthReady, "/api/v1/health/ready")
	var ready ReadyStatus
	envelope(t, rec.Body.Bytes(), &ready)
	if rec.Code != http.StatusOK || !ready.Ready || ready.Index == nil || ready.Index.Movies != 6 {
		t.Errorf("ready = %d %+v", rec.Code, ready)
	}
}

func TestHealthReady_NoIndex(t *testing.T) {
	t.Parallel()

	h := NewHandler(nil, nil, config.Defaults(), catalog.LoadStats{})
	rec := get(t, h.HealthReady, "/api/v1/health/ready")
	var ready ReadyStatus
	resp := envelope(t, rec.Body.Bytes(), &ready)
	if rec.Code != http.StatusServiceUnavailable || resp.Success || ready.Ready {
		t.Errorf("ready without index = %d success=%v %+v", rec.Code, resp.Success, ready)
	}

	rec = get(t, h.GetRecommendations, "/api/v1/recommendations?title=Avatar")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("recommend without index = %d", rec.Code)
	}
}

func TestGetRecommendations(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	rec := get(t, h.GetRecommendations, "/api/v1/recommendations?title=Avatar&k=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}

	var got RecommendResponse
	envelope(t, rec.Body.Bytes(), &got)
	if !got.Found || got.K != 2 || len(got.Recommendations) != 2 {
		t.Fatalf("response = %+v", got)
	}
	for i, want := range []string{"Aliens", "Interstellar"} {
		r := got.Recommendations[i]
		if r.Title != want || r.Rank != i+1 || r.Poster != nil {
			t.Errorf("recommendation %d = %+v, want %s", i, r, want)
		}
	}
	if got.Recommendations[0].ID != 1 {
		t.Errorf("first Aliens id = %d, want catalog id 1", got.Recommendations[0].ID)
	}
}

func TestGetRecommendations_DefaultK(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	rec := get(t, h.GetRecommendations, "/api/v1/recommendations?title=Notting+Hill")

	var got RecommendResponse
	envelope(t, rec.Body.Bytes(), &got)
	if got.K != 5 || len(got.Recommendations) != 5 {
		t.Errorf("k = %d, results = %d; want 5, 5", got.K, len(got.Recommendations))
	}
	for _, r := range got.Recommendations {
		if r.Title == "Notting Hill" {
			t.Error("query movie must not recommend itself")
		}
	}
}

func TestGetRecommendations_KCappedToMaxK(t *testing.T) {
	t.Parallel()

	engine, err := recommend.NewEngine(catalog.New(testMovies()), recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	cfg := config.Defaults()
	cfg.Recommend.MaxK = 2
	h := NewHandler(engine, nil, cfg, catalog.LoadStats{})

	rec := get(t, h.GetRecommendations, "/api/v1/recommendations?title=Avatar&k=1000")
	var got RecommendResponse
	envelope(t, rec.Body.Bytes(), &got)
	if got.K != 2 || len(got.Recommendations) != 2 {
		t.Errorf("k = %d, results = %d; want both capped to 2", got.K, len(got.Recommendations))
	}
}

func TestGetRecommendations_UnknownTitle(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	rec := get(t, h.GetRecommendations, "/api/v1/recommendations?title=Nope")

	var got RecommendResponse
	resp := envelope(t, rec.Body.Bytes(), &got)
	if rec.Code != http.StatusOK || !resp.Success {
		t.Fatalf("status = %d success = %v", rec.Code, resp.Success)
	}
	if got.Found || got.Recommendations == nil || len(got.Recommendations) != 0 {
		t.Errorf("unknown title response = %+v, want found=false and []", got)
	}
	if !strings.Contains(rec.Body.String(), `"recommendations":[]`) {
		t.Errorf("body %s must carry an empty list, not null", rec.Body.String())
	}
}

func TestGetRecommendations_Posters(t *testing.T) {
	t.Parallel()

	engine, err := recommend.NewEngine(catalog.New(testMovies()), recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	resolver := lookup.NewResolver(nil, "https://example.com/none.png")
	h := NewHandler(engine, resolver, config.Defaults(), catalog.LoadStats{})

	rec := get(t, h.GetRecommendations, "/api/v1/recommendations?title=Avatar&k=3&posters=true")
	var got RecommendResponse
	envelope(t, rec.Body.Bytes(), &got)
	if len(got.Recommendations) != 3 {
		t.Fatalf("results = %d", len(got.Recommendations))
	}
	for _, r := range got.Recommendations {
		if r.Poster == nil || r.Poster.PosterURL != "https://example.com/none.png" || r.Poster.Title != r.Title {
			t.Errorf("poster for %s = %+v", r.Title, r.Poster)
		}
	}
}

func TestGetRecommendations_BadRequests(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	tests := []struct {
		name  string
		query string
		code  string
	}{
		{"missing title", "", ErrCodeValidationFailed},
		{"blank title", "title=%20%20", ErrCodeValidationFailed},
		{"k not a number", "title=Avatar&k=five", ErrCodeBadRequest},
		{"negative k", "title=Avatar&k=-1", ErrCodeValidationFailed},
		{"k too large", "title=Avatar&k=5000", ErrCodeValidationFailed},
		{"posters not bool", "title=Avatar&posters=maybe", ErrCodeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := get(t, h.GetRecommendations, "/api/v1/recommendations?"+tt.query)
			resp := envelope(t, rec.Body.Bytes(), nil)
			if rec.Code != http.StatusBadRequest || resp.Error == nil || resp.Error.Code != tt.code {
				t.Errorf("status = %d error = %+v, want 400 %s", rec.Code, resp.Error, tt.code)
			}
		})
	}
}
