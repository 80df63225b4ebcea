// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package lookup

import (
	"context"
	"sync"
)

// stubLookuper returns canned answers per title and counts calls.
type stubLookuper struct {
	mu       sync.Mutex
	details  map[string]*Details
	errs     map[string]error
	fallback error
	calls    map[string]int
}

func newStub() *stubLookuper {
	return &stubLookuper{
		details: make(map[string]*Details),
		errs:    make(map[string]error),
		calls:   make(map[string]int),
	}
}

func (s *stubLookuper) Lookup(_ context.Context, title string) (*Details, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[title]++
	if err, ok := s.errs[title]; ok {
		return nil, err
	}
	if d, ok := s.details[title]; ok {
		c := *d
		return &c, nil
	}
	if s.fallback != nil {
		return nil, s.fallback
	}
	return nil, ErrNotFound
}

func (s *stubLookuper) count(title string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[title]
}
