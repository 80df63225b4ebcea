// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package lookup

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the metadata service has no movie for the title.
	// It is an expected outcome, not a failure.
	ErrNotFound = errors.New("movie not found")

	// ErrDisabled means lookups are switched off (no API key configured).
	ErrDisabled = errors.New("metadata lookup disabled")
)

// Failure is a recoverable lookup error: transport, status or decode
// failures, or a rejected request while the circuit breaker is open.
type Failure struct {
	Op     string
	Title  string
	Status int
	Err    error
}

func (f *Failure) Error() string {
	if f.Status != 0 {
		return fmt.Sprintf("lookup %s %q: status %d: %v", f.Op, f.Title, f.Status, f.Err)
	}
	return fmt.Sprintf("lookup %s %q: %v", f.Op, f.Title, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// IsFailure reports whether err is a *Failure.
func IsFailure(err error) bool {
	var f *Failure
	return errors.As(err, &f)
}
