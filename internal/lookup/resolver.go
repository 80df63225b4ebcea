// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package lookup

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// DefaultPlaceholderURL is the poster shown when no poster is available.
const DefaultPlaceholderURL = "https://via.placeholder.com/150"

// maxConcurrentResolves bounds ResolveMany fan-out.
const maxConcurrentResolves = 8

// Resolver turns titles into displayable details. It never fails: a
// missing movie, a disabled client or any Failure yields placeholder
// details.
type Resolver struct {
	lookuper    Lookuper
	placeholder string
}

// NewResolver creates a resolver over l. An empty placeholder selects
// DefaultPlaceholderURL.
func NewResolver(l Lookuper, placeholder string) *Resolver {
	if l == nil {
		l = Disabled{}
	}
	if placeholder == "" {
		placeholder = DefaultPlaceholderURL
	}
	return &Resolver{lookuper: l, placeholder: placeholder}
}

// Placeholder returns the details served when title cannot be resolved.
func (r *Resolver) Placeholder(title string) Details {
	return Details{
		Title:       title,
		PosterURL:   r.placeholder,
		Placeholder: true,
	}
}

// Resolve looks up title and degrades to the placeholder on any error.
func (r *Resolver) Resolve(ctx context.Context, title string) Details {
	start := time.Now()
	d, err := r.lookuper.Lookup(ctx, title)
	outcome := "ok"

	switch {
	case err == nil && d != nil:
		if d.PosterURL == "" {
			d.PosterURL = r.placeholder
		}
		metrics.RecordLookup(outcome, time.Since(start))
		return *d
	case err == nil || errors.Is(err, ErrNotFound):
		outcome = "not_found"
	case errors.Is(err, ErrDisabled):
		outcome = "disabled"
	default:
		outcome = "error"
		logging.Ctx(ctx).Warn().Err(err).Str("title", title).Msg("Metadata lookup failed, serving placeholder")
	}

	metrics.RecordLookup(outcome, time.Since(start))
	metrics.RecordPlaceholder()
	return r.Placeholder(title)
}

// ResolveMany resolves titles concurrently. The result keeps input order.
func (r *Resolver) ResolveMany(ctx context.Context, titles []string) []Details {
	out := make([]Details, len(titles))
	sem := make(chan struct{}, maxConcurrentResolves)

	var wg sync.WaitGroup
	for i, title := range titles {
		wg.Add(1)
		go func(i int, title string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			out[i] = r.Resolve(ctx, title)
		}(i, title)
	}
	wg.Wait()
	return out
}
