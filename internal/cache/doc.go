// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package cache provides the key/value stores behind the metadata lookup
// cache.
//
// Two backends implement Store:
//
//   - Memory: bounded in-process LRU with TTL expiry (default)
//   - Badger: BadgerDB directory with native TTL, survives restarts
//
// Values are opaque bytes; callers own serialization. A store is opened
// once at startup and its GC method is driven periodically by the
// supervisor.
//
// Example:
//
//	store, err := cache.Open(cache.Config{
//	    Backend: cache.BackendMemory,
//	    TTL:     24 * time.Hour,
//	})
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	_ = store.Set("title:avatar", payload)
//	if v, ok, _ := store.Get("title:avatar"); ok {
//	    // use v
//	}
package cache
