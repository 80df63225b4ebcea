// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package details

import (
	"context"
	"errors"
	"testing"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/lookup"
)

type fixedLookuper map[string]lookup.Details

func (f fixedLookuper) Lookup(_ context.Context, title string) (*lookup.Details, error) {
	d, ok := f[title]
	if !ok {
		return nil, lookup.ErrNotFound
	}
	return &d, nil
}

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Movie{
		{ID: 19995, Title: "Avatar", Overview: "Pandora.", ReleaseDate: "2009-12-10", Rating: 7.2},
		{ID: 285, Title: "Pirates of the Caribbean: At World's End", Overview: "Sea.", ReleaseDate: "2007-05-19", Rating: 6.9},
	})
}

func testResolver() *lookup.Resolver {
	return lookup.NewResolver(fixedLookuper{
		"Avatar": {TMDBID: 19995, Title: "Avatar", Overview: "Remote overview", PosterURL: "https://img/a.jpg"},
	}, "")
}

func TestSession_Cycle(t *testing.T) {
	t.Parallel()

	s := NewSession(testCatalog(), testResolver())
	if s.State() != StateIdle {
		t.Fatalf("initial state = %s", s.State())
	}

	if err := s.Request("  Avatar "); err != nil {
		t.Fatalf("Request: %v", err)
	}
	if s.State() != StateDetailsRequested || s.Title() != "Avatar" {
		t.Fatalf("after Request: state=%s title=%q", s.State(), s.Title())
	}

	panel, err := s.Render(context.Background())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !panel.Found || panel.Details.Overview != "Remote overview" || panel.Movie == nil || panel.Movie.ID != 19995 {
		t.Errorf("panel = %+v", panel)
	}
	if s.State() != StateIdle || s.Title() != "" {
		t.Errorf("after Render: state=%s title=%q", s.State(), s.Title())
	}
}

func TestSession_InvalidTransitions(t *testing.T) {
	t.Parallel()

	s := NewSession(nil, nil)

	if _, err := s.Render(context.Background()); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Render from idle: %v", err)
	}
	if err := s.Cancel(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Cancel from idle: %v", err)
	}
	if err := s.Request(""); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("Request empty: %v", err)
	}
	if err := s.Request("Avatar"); err != nil {
		t.Fatal(err)
	}
	if err := s.Request("Titanic"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("second Request: %v", err)
	}
	if s.Title() != "Avatar" {
		t.Errorf("rejected request changed title to %q", s.Title())
	}
	if err := s.Cancel(); err != nil {
		t.Errorf("Cancel: %v", err)
	}
	if s.State() != StateIdle {
		t.Errorf("after Cancel: %s", s.State())
	}
}

func TestSession_CatalogFallback(t *testing.T) {
	t.Parallel()

	panel, err := Show(context.Background(), testCatalog(), testResolver(), "Pirates of the Caribbean: At World's End")
	if err != nil {
		t.Fatal(err)
	}
	if !panel.Found || !panel.Details.Placeholder {
		t.Fatalf("panel = %+v", panel)
	}
	if panel.Details.Overview != "Sea." || panel.Details.Rating != 6.9 || panel.Details.PosterURL != lookup.DefaultPlaceholderURL {
		t.Errorf("fallback details = %+v", panel.Details)
	}
}

func TestShow_NotFound(t *testing.T) {
	t.Parallel()

	panel, err := Show(context.Background(), testCatalog(), testResolver(), "Nowhere")
	if err != nil {
		t.Fatal(err)
	}
	if panel.Found || panel.Movie != nil || !panel.Details.Placeholder {
		t.Errorf("panel = %+v", panel)
	}

	if _, err := Show(context.Background(), nil, nil, " "); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("blank title: %v", err)
	}
}

func TestNext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from State
		ev   Event
		to   State
		ok   bool
	}{
		{StateIdle, EventRequest, StateDetailsRequested, true},
		{StateIdle, EventRender, StateIdle, false},
		{StateIdle, EventCancel, StateIdle, false},
		{StateDetailsRequested, EventRender, StateIdle, true},
		{StateDetailsRequested, EventCancel, StateIdle, true},
		{StateDetailsRequested, EventRequest, StateDetailsRequested, false},
	}
	for _, tt := range tests {
		to, ok := next(tt.from, tt.ev)
		if to != tt.to || ok != tt.ok {
			t.Errorf("next(%s, %s) = %s, %v; want %s, %v", tt.from, tt.ev, to, ok, tt.to, tt.ok)
		}
	}
}
