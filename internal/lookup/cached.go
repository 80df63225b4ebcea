// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package lookup

import (
	"context"
	"errors"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// cachedEntry is the serialized cache value. NotFound entries remember
// negative answers so unknown titles are not searched again.
type cachedEntry struct {
	NotFound bool     `json:"not_found,omitempty"`
	Details  *Details `json:"details,omitempty"`
}

// CachedClient serves lookups from a cache.Store and fills it from next.
// Failures are never cached.
type CachedClient struct {
	next  Lookuper
	store cache.Store
}

var _ Lookuper = (*CachedClient)(nil)

// NewCachedClient wraps next with store.
func NewCachedClient(next Lookuper, store cache.Store) *CachedClient {
	return &CachedClient{next: next, store: store}
}

// CacheKey normalizes a title into a cache key.
func CacheKey(title string) string {
	return "title:" + strings.ToLower(strings.TrimSpace(title))
}

// Lookup implements Lookuper.
func (c *CachedClient) Lookup(ctx context.Context, title string) (*Details, error) {
	key := CacheKey(title)
	backend := c.store.Backend()

	if raw, ok, err := c.store.Get(key); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("backend", backend).Msg("Lookup cache read failed")
	} else if ok {
		var entry cachedEntry
		if err := json.Unmarshal(raw, &entry); err == nil {
			metrics.RecordLookupCache(backend, true)
			if entry.NotFound || entry.Details == nil {
				return nil, ErrNotFound
			}
			d := *entry.Details
			return &d, nil
		}
		// Corrupt entry: drop it and fall through to a live lookup.
		_ = c.store.Delete(key)
	}
	metrics.RecordLookupCache(backend, false)

	d, err := c.next.Lookup(ctx, title)
	switch {
	case err == nil:
		c.put(ctx, key, cachedEntry{Details: d})
	case errors.Is(err, ErrNotFound):
		c.put(ctx, key, cachedEntry{NotFound: true})
	}
	return d, err
}

func (c *CachedClient) put(ctx context.Context, key string, entry cachedEntry) {
	raw, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if err := c.store.Set(key, raw); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("backend", c.store.Backend()).Msg("Lookup cache write failed")
	}
}

// Disabled is the Lookuper used when no API key is configured.
type Disabled struct{}

// Lookup always returns ErrDisabled.
func (Disabled) Lookup(context.Context, string) (*Details, error) {
	return nil, ErrDisabled
}
