// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package lookup

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	stub := newStub()
	stub.details["Avatar"] = &Details{TMDBID: 19995, Title: "Avatar", PosterURL: "https://img/a.jpg"}
	stub.details["No Poster"] = &Details{TMDBID: 7, Title: "No Poster"}
	stub.errs["Broken"] = &Failure{Op: "search", Status: 500, Err: errors.New("boom")}
	r := NewResolver(stub, "")

	tests := []struct {
		title       string
		poster      string
		placeholder bool
	}{
		{"Avatar", "https://img/a.jpg", false},
		{"No Poster", DefaultPlaceholderURL, false},
		{"Unknown", DefaultPlaceholderURL, true},
		{"Broken", DefaultPlaceholderURL, true},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			d := r.Resolve(context.Background(), tt.title)
			if d.PosterURL != tt.poster {
				t.Errorf("PosterURL = %q, want %q", d.PosterURL, tt.poster)
			}
			if d.Placeholder != tt.placeholder {
				t.Errorf("Placeholder = %v, want %v", d.Placeholder, tt.placeholder)
			}
			if d.Title != tt.title {
				t.Errorf("Title = %q, want %q", d.Title, tt.title)
			}
		})
	}
}

func TestResolver_Disabled(t *testing.T) {
	t.Parallel()

	r := NewResolver(nil, "https://example.com/blank.png")
	d := r.Resolve(context.Background(), "Avatar")
	if !d.Placeholder || d.PosterURL != "https://example.com/blank.png" {
		t.Errorf("Resolve = %+v", d)
	}
}

func TestResolver_ResolveManyKeepsOrder(t *testing.T) {
	t.Parallel()

	stub := newStub()
	titles := make([]string, 20)
	for i := range titles {
		titles[i] = fmt.Sprintf("Movie %02d", i)
		if i%3 != 0 {
			stub.details[titles[i]] = &Details{TMDBID: i + 1, Title: titles[i], PosterURL: "p"}
		}
	}
	r := NewResolver(stub, "")

	got := r.ResolveMany(context.Background(), titles)
	if len(got) != len(titles) {
		t.Fatalf("len = %d, want %d", len(got), len(titles))
	}
	for i, d := range got {
		if d.Title != titles[i] {
			t.Errorf("[%d] Title = %q, want %q", i, d.Title, titles[i])
		}
		if d.Placeholder != (i%3 == 0) {
			t.Errorf("[%d] Placeholder = %v", i, d.Placeholder)
		}
	}

	if len(r.ResolveMany(context.Background(), nil)) != 0 {
		t.Error("ResolveMany(nil) must be empty")
	}
}
