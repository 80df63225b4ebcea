// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package lookup resolves movie titles to display metadata (poster,
// overview, release date, rating) through the TMDB API.
//
// The recommender only returns titles; this package is the collaborator
// that decorates them. Lookups are layered:
//
//	CachedClient   memory or BadgerDB store, remembers negative answers
//	  BreakerClient  sony/gobreaker, ErrNotFound is not a failure
//	    Client         rate limited (x/time/rate), retried with backoff
//
// A lookup is search/movie?query=<title> followed by movie/{id} for the
// first match.
//
// # Errors
//
// ErrNotFound and ErrDisabled are expected outcomes. Everything else is a
// *Failure. Resolver sits on top of the chain and never returns an error:
// any non-success becomes placeholder details, so a TMDB outage never
// breaks a recommendation response.
//
// # Usage
//
//	l, err := lookup.NewLookuper(cfg, store)
//	if err != nil {
//	    return err
//	}
//	resolver := lookup.NewResolver(l, "")
//	details := resolver.Resolve(ctx, "Avatar")
package lookup
