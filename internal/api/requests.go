// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/reelmatch/internal/validation"
)

// Query parameter structs. The query tag names the parameter in validation
// messages; the validate tag uses go-playground/validator syntax plus the
// custom "year" and "notblank" tags.

// RecommendRequest is GET /recommendations.
type RecommendRequest struct {
	Title   string `query:"title" validate:"notblank,max=500"`
	K       int    `query:"k" validate:"min=0,max=1000"`
	Posters bool   `query:"posters"`
}

// MoviesRequest is GET /movies.
type MoviesRequest struct {
	Year      string  `query:"year" validate:"omitempty,year"`
	Genre     string  `query:"genre" validate:"max=100"`
	MinRating float64 `query:"min_rating" validate:"gte=0,lte=10"`
	Query     string  `query:"q" validate:"max=500"`
	Sort      string  `query:"sort" validate:"omitempty,oneof=rating revenue"`
	Limit     int     `query:"limit" validate:"min=0,max=10000"`
}

// DetailsRequest is GET /details.
type DetailsRequest struct {
	Title string `query:"title" validate:"notblank,max=500"`
}

// paramError reports a query parameter that failed to parse.
type paramError struct {
	name  string
	value string
}

func (e *paramError) Error() string {
	return fmt.Sprintf("invalid value %q for parameter %s", e.value, e.name)
}

// getIntParam extracts an integer query parameter with a default value.
func getIntParam(r *http.Request, key string, defaultValue int) (int, error) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &paramError{name: key, value: value}
	}
	return n, nil
}

// getFloatParam extracts a float query parameter with a default value.
func getFloatParam(r *http.Request, key string, defaultValue float64) (float64, error) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &paramError{name: key, value: value}
	}
	return f, nil
}

// getBoolParam extracts a boolean query parameter; absent means false.
func getBoolParam(r *http.Request, key string) (bool, error) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, &paramError{name: key, value: value}
	}
	return b, nil
}

func parseRecommendRequest(r *http.Request) (RecommendRequest, error) {
	q := r.URL.Query()
	req := RecommendRequest{Title: q.Get("title")}

	var err error
	if req.K, err = getIntParam(r, "k", 0); err != nil {
		return req, err
	}
	if req.Posters, err = getBoolParam(r, "posters"); err != nil {
		return req, err
	}
	return req, nil
}

func parseMoviesRequest(r *http.Request, defaultMinRating float64) (MoviesRequest, error) {
	q := r.URL.Query()
	req := MoviesRequest{
		Year:  strings.TrimSpace(q.Get("year")),
		Genre: strings.TrimSpace(q.Get("genre")),
		Query: q.Get("q"),
		Sort:  strings.ToLower(strings.TrimSpace(q.Get("sort"))),
	}

	var err error
	if req.MinRating, err = getFloatParam(r, "min_rating", defaultMinRating); err != nil {
		return req, err
	}
	if req.Limit, err = getIntParam(r, "limit", 0); err != nil {
		return req, err
	}
	return req, nil
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes.
func validateRequest(v interface{}) *validation.APIError {
	if errs := validation.Struct(v); errs != nil {
		return errs.APIError()
	}
	return nil
}
