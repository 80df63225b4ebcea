// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package validation provides struct validation using go-playground/validator v10.
//
// It exposes a thread-safe singleton validator with two custom tags and
// converts validator errors into the API error format.
//
// # Field Names
//
// Fields carrying a `query:"name"` tag are reported by that name, so error
// messages refer to the query parameter the client sent:
//
//	type MoviesRequest struct {
//	    Year  string `query:"year" validate:"omitempty,year"`
//	    Limit int    `query:"limit" validate:"min=1,max=100"`
//	}
//
// # Custom Tags
//
//   - year: a four-digit release year ("2009")
//   - notblank: a string that is not only whitespace
//
// # Usage
//
//	if errs := validation.Struct(&req); errs != nil {
//	    apiErr := errs.APIError()
//	    rw.ValidationError(apiErr.Message, apiErr.Details)
//	    return
//	}
//
// # Thread Safety
//
// Validator initializes the validator once; the instance caches struct
// metadata and is safe for concurrent use.
package validation
