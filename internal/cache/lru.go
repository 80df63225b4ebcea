// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package cache

import (
	"sync"
	"time"
)

// Default LRUCache bounds.
const (
	DefaultLRUCapacity = 10000
	DefaultLRUTTL      = 24 * time.Hour
)

// lruEntry is a node of the recency list.
type lruEntry struct {
	key       string
	value     []byte
	prev      *lruEntry
	next      *lruEntry
	expiresAt time.Time
}

// LRUCache is a thread-safe least recently used cache of byte values with
// a fixed TTL.
//
// Get, Add and Remove are O(1). A hashmap indexes a doubly-linked list
// bounded by sentinel nodes; head.next is the most recently used entry and
// tail.prev the least. Expired entries are dropped lazily on access and in
// bulk by CleanupExpired.
type LRUCache struct {
	mu sync.Mutex

	capacity int
	ttl      time.Duration
	items    map[string]*lruEntry
	head     *lruEntry
	tail     *lruEntry

	hits   int64
	misses int64

	// now is replaceable in tests.
	now func() time.Time
}

// NewLRUCache creates a cache holding at most capacity entries for ttl each.
// Non-positive values select DefaultLRUCapacity and DefaultLRUTTL.
func NewLRUCache(capacity int, ttl time.Duration) *LRUCache {
	if capacity <= 0 {
		capacity = DefaultLRUCapacity
	}
	if ttl <= 0 {
		ttl = DefaultLRUTTL
	}

	c := &LRUCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*lruEntry),
		head:     &lruEntry{},
		tail:     &lruEntry{},
		now:      time.Now,
	}
	c.head.next = c.tail
	c.tail.prev = c.head
	return c
}

// Get returns a copy of the value for key and marks it most recently used.
func (c *LRUCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	if !ok {
		c.misses++
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		c.removeEntry(entry)
		c.misses++
		return nil, false
	}
	c.moveToFront(entry)
	c.hits++
	return append([]byte(nil), entry.value...), true
}

// Contains reports whether key holds a live entry without touching recency.
func (c *LRUCache) Contains(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	return ok && !c.now().After(entry.expiresAt)
}

// Add stores a copy of value under key, resetting its TTL. The least
// recently used entry is evicted when the cache is full.
func (c *LRUCache) Add(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := append([]byte(nil), value...)
	expiresAt := c.now().Add(c.ttl)

	if entry, ok := c.items[key]; ok {
		entry.value = v
		entry.expiresAt = expiresAt
		c.moveToFront(entry)
		return
	}

	entry := &lruEntry{key: key, value: v, expiresAt: expiresAt}
	c.addToFront(entry)
	c.items[key] = entry

	for len(c.items) > c.capacity {
		c.evictOldest()
	}
}

// Remove deletes key and reports whether it was present.
func (c *LRUCache) Remove(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		c.removeEntry(entry)
		return true
	}
	return false
}

// Len returns the number of entries, including expired ones not yet
// collected.
func (c *LRUCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear drops every entry.
func (c *LRUCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*lruEntry)
	c.head.next = c.tail
	c.tail.prev = c.head
}

// CleanupExpired removes expired entries and returns how many it removed.
func (c *LRUCache) CleanupExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for entry := c.tail.prev; entry != c.head; {
		prev := entry.prev
		if now.After(entry.expiresAt) {
			c.removeEntry(entry)
			removed++
		}
		entry = prev
	}
	return removed
}

// Stats returns hit and miss counts and the current size.
func (c *LRUCache) Stats() (hits, misses int64, size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses, len(c.items)
}

// The helpers below must be called with mu held.

func (c *LRUCache) addToFront(entry *lruEntry) {
	entry.prev = c.head
	entry.next = c.head.next
	c.head.next.prev = entry
	c.head.next = entry
}

func (c *LRUCache) moveToFront(entry *lruEntry) {
	entry.prev.next = entry.next
	entry.next.prev = entry.prev
	c.addToFront(entry)
}

func (c *LRUCache) removeEntry(entry *lruEntry) {
	entry.prev.next = entry.next
	entry.next.prev = entry.prev
	delete(c.items, entry.key)
}

func (c *LRUCache) evictOldest() {
	if oldest := c.tail.prev; oldest != c.head {
		c.removeEntry(oldest)
	}
}
