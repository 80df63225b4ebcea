// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package cache

import (
	"context"
	"sync"
	"time"
)

// Memory is the in-process Store, backed by an LRUCache.
type Memory struct {
	mu     sync.RWMutex
	lru    *LRUCache
	closed bool
}

var _ Store = (*Memory)(nil)

// NewMemory creates a memory store. capacity <= 0 means 10000 entries and
// ttl <= 0 means 24h.
func NewMemory(capacity int, ttl time.Duration) *Memory {
	return &Memory{lru: NewLRUCache(capacity, ttl)}
}

// Get implements Store.
func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, false, ErrClosed
	}
	v, ok := m.lru.Get(key)
	return v, ok, nil
}

// Set implements Store.
func (m *Memory) Set(key string, value []byte) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return ErrClosed
	}
	m.lru.Add(key, value)
	return nil
}

// Delete implements Store.
func (m *Memory) Delete(key string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return ErrClosed
	}
	m.lru.Remove(key)
	return nil
}

// Len implements Store. Expired entries not yet collected are counted.
func (m *Memory) Len() int {
	return m.lru.Len()
}

// GC implements Store.
func (m *Memory) GC(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return 0, ErrClosed
	}
	m.lru.CleanupExpired()
	return m.lru.Len(), nil
}

// Backend implements Store.
func (m *Memory) Backend() string {
	return string(BackendMemory)
}

// Close implements Store.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.lru.Clear()
	return nil
}
