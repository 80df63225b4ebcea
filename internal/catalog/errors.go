// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by LoadError.
var (
	// ErrEmptyJoin means no movie row found a credits row with the same title.
	ErrEmptyJoin = errors.New("no movies matched between movies and credits files")

	// ErrNoCompleteRecords means every joined row was dropped for missing fields.
	ErrNoCompleteRecords = errors.New("no complete movie records after normalization")

	// ErrMissingColumns means a source file lacks a required column.
	ErrMissingColumns = errors.New("required columns missing")
)

// ParseError reports a present but malformed field in a source row.
type ParseError struct {
	Field string
	Title string
	Row   int
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed %s for %q (row %d): %v", e.Field, e.Title, e.Row, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadError is a fatal catalog build failure. Op names the stage that failed
// (stat, read, join, normalize) and Path the file involved, if any.
type LoadError struct {
	Op   string
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("catalog %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("catalog %s: %v", e.Op, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
