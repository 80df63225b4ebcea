// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package lookup

import (
	"strings"

	"github.com/tomtom215/reelmatch/internal/cache"
)

// NewLookuper assembles the production chain: cache, then circuit breaker,
// then the rate-limited TMDB client. Without an API key it returns Disabled.
// store may be nil to skip caching.
func NewLookuper(cfg Config, store cache.Store, opts ...Option) (Lookuper, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return Disabled{}, nil
	}
	client, err := NewClient(cfg, opts...)
	if err != nil {
		return nil, err
	}

	var l Lookuper = NewBreakerClient(client, DefaultBreakerSettings())
	if store != nil {
		l = NewCachedClient(l, store)
	}
	return l, nil
}
