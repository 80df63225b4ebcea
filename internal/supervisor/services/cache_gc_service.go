// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package services

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// defaultGCInterval applies when the configured interval is not positive.
const defaultGCInterval = 10 * time.Minute

// CacheGCService periodically expires lookup cache entries.
type CacheGCService struct {
	store    cache.Store
	interval time.Duration
	name     string
}

// NewCacheGCService runs store.GC every interval.
func NewCacheGCService(store cache.Store, interval time.Duration) *CacheGCService {
	if interval <= 0 {
		interval = defaultGCInterval
	}
	return &CacheGCService{
		store:    store,
		interval: interval,
		name:     "lookup-cache-gc",
	}
}

// Serve implements suture.Service. It returns nil once the store is closed,
// which tells suture not to restart it.
func (s *CacheGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	backend := s.store.Backend()
	metrics.SetLookupCacheEntries(backend, s.store.Len())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if done := s.collect(ctx, backend); done {
				return nil
			}
		}
	}
}

// collect runs one GC pass and reports whether the store is gone.
func (s *CacheGCService) collect(ctx context.Context, backend string) bool {
	start := time.Now()
	live, err := s.store.GC(ctx)
	switch {
	case errors.Is(err, cache.ErrClosed):
		logging.Info().Str("backend", backend).Msg("Lookup cache closed, stopping GC")
		return true
	case err != nil:
		logging.Warn().Err(err).Str("backend", backend).Msg("Lookup cache GC failed")
		return false
	}

	metrics.SetLookupCacheEntries(backend, live)
	logging.Debug().
		Str("backend", backend).
		Int("entries", live).
		Dur("duration", time.Since(start)).
		Msg("Lookup cache GC completed")
	return false
}

// String implements fmt.Stringer for supervisor logs.
func (s *CacheGCService) String() string {
	return s.name
}
