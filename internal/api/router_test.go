// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	_ "github.com/tomtom215/reelmatch/docs"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/middleware"
)

func TestRouter_Routes(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, newTestHandler(t))
	tests := []struct {
		path   string
		status int
	}{
		{"/api/v1/health/live", http.StatusOK},
		{"/api/v1/health/ready", http.StatusOK},
		{"/api/v1/recommendations?title=Avatar", http.StatusOK},
		{"/api/v1/recommendations", http.StatusBadRequest},
		{"/api/v1/movies?sort=rating", http.StatusOK},
		{"/api/v1/movies/19995", http.StatusOK},
		{"/api/v1/movies/777", http.StatusNotFound},
		{"/api/v1/details?title=Avatar", http.StatusOK},
		{"/api/v1/catalog/stats", http.StatusOK},
		{"/api/v1/catalog/facets", http.StatusOK},
		{"/api/v1/catalog/titles", http.StatusOK},
		{"/api/v1/nope", http.StatusNotFound},
		{"/metrics", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			resp, err := http.Get(server.URL + tt.path)
			if err != nil {
				t.Fatalf("GET: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.status {
				body, _ := io.ReadAll(resp.Body)
				t.Errorf("status = %d, want %d; body = %s", resp.StatusCode, tt.status, body)
			}
			if resp.Header.Get(middleware.RequestIDHeader) == "" {
				t.Error("missing X-Request-ID")
			}
		})
	}
}

func TestRouter_SwaggerDocs(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, newTestHandler(t))
	resp, err := http.Get(server.URL + "/swagger/doc.json")
	if err != nil {
		t.Fatalf("GET doc.json: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("doc.json status = %d", resp.StatusCode)
	}

	var doc struct {
		BasePath string                     `json:"basePath"`
		Paths    map[string]json.RawMessage `json:"paths"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		t.Fatalf("decode doc.json: %v", err)
	}
	if doc.BasePath != "/api/v1" {
		t.Errorf("basePath = %q", doc.BasePath)
	}
	for _, path := range []string{
		"/health/live", "/health/ready", "/recommendations", "/movies",
		"/movies/{id}", "/details", "/catalog/stats", "/catalog/facets", "/catalog/titles",
	} {
		if _, ok := doc.Paths[path]; !ok {
			t.Errorf("doc.json is missing %s", path)
		}
	}

	ui, err := http.Get(server.URL + "/swagger/index.html")
	if err != nil {
		t.Fatalf("GET index.html: %v", err)
	}
	defer ui.Body.Close()
	if ui.StatusCode != http.StatusOK {
		t.Errorf("index.html status = %d", ui.StatusCode)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, newTestHandler(t))
	resp, err := http.Post(server.URL+"/api/v1/recommendations?title=Avatar", "application/json", nil)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestRouter_SecurityHeadersAndRequestID(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, newTestHandler(t))
	req, _ := http.NewRequest(http.MethodGet, server.URL+"/api/v1/catalog/facets", nil)
	req.Header.Set(middleware.RequestIDHeader, "trace-me")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.Header.Get("X-Content-Type-Options") != "nosniff" {
		t.Error("missing security headers on API routes")
	}
	if resp.Header.Get(middleware.RequestIDHeader) != "trace-me" {
		t.Errorf("request id = %q, want trace-me", resp.Header.Get(middleware.RequestIDHeader))
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `"request_id":"trace-me"`) {
		t.Errorf("envelope must carry the request id: %s", body)
	}
}

func TestRouter_RateLimit(t *testing.T) {
	t.Parallel()

	sec := config.Defaults().Security
	sec.RateLimitReqs = 2
	sec.RateLimitWindow = time.Minute
	handler := NewRouter(newTestHandler(t), sec).Setup()

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/titles", nil)
		req.RemoteAddr = "203.0.113.9:4000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("codes = %v, want [200 200 429]", codes)
	}
}

func TestRouter_CORS(t *testing.T) {
	t.Parallel()

	sec := config.Defaults().Security
	sec.CORSOrigins = []string{"https://movies.example.com"}
	sec.RateLimitDisabled = true
	handler := NewRouter(newTestHandler(t), sec).Setup()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/movies", nil)
	req.Header.Set("Origin", "https://movies.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://movies.example.com" {
		t.Errorf("Allow-Origin = %q", got)
	}
}
