// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("cache store closed")

// Store is a byte-oriented key/value cache with a fixed entry TTL.
// Implementations are safe for concurrent use.
type Store interface {
	// Get returns the value for key. ok is false on a miss or an
	// expired entry.
	Get(key string) (value []byte, ok bool, err error)

	// Set stores value under key with the store TTL.
	Set(key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error

	// Len returns the number of live entries.
	Len() int

	// GC drops expired entries and reclaims space. It returns the number
	// of live entries afterwards.
	GC(ctx context.Context) (int, error)

	// Backend names the implementation for metrics and logs.
	Backend() string

	// Close releases resources. The store must not be used afterwards.
	Close() error
}

// Backend selects a Store implementation.
type Backend string

const (
	// BackendMemory keeps entries in process memory (default).
	BackendMemory Backend = "memory"

	// BackendBadger persists entries in a BadgerDB directory so cached
	// lookups survive restarts.
	BackendBadger Backend = "badger"
)

// Config describes the store to open.
type Config struct {
	Backend Backend
	// Path is the BadgerDB directory. Required for BackendBadger.
	Path string
	// TTL is the lifetime of every entry. Default: 24h
	TTL time.Duration
	// Capacity bounds the memory backend. Default: 10000
	Capacity int
}

// Open creates the store described by cfg.
//
//	store, err := cache.Open(cache.Config{Backend: cache.BackendBadger, Path: "/data/lookup"})
func Open(cfg Config) (Store, error) {
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}

	switch cfg.Backend {
	case "", BackendMemory:
		return NewMemory(cfg.Capacity, cfg.TTL), nil
	case BackendBadger:
		if cfg.Path == "" {
			return nil, errors.New("badger cache requires a path")
		}
		return OpenBadger(cfg.Path, cfg.TTL)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
