// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeClock is a manually advanced clock for expiry tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestMemory_GetSet(t *testing.T) {
	t.Parallel()

	m := NewMemory(10, time.Hour)
	if _, ok, err := m.Get("missing"); ok || err != nil {
		t.Fatalf("Get(missing) = %v, %v", ok, err)
	}

	if err := m.Set("k", []byte("v1")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := m.Get("k")
	if err != nil || !ok || string(v) != "v1" {
		t.Fatalf("Get(k) = %q, %v, %v", v, ok, err)
	}

	// Returned slices are copies.
	v[0] = 'X'
	v2, _, _ := m.Get("k")
	if string(v2) != "v1" {
		t.Errorf("stored value mutated through returned slice: %q", v2)
	}

	if err := m.Set("k", []byte("v2")); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	if v, _, _ := m.Get("k"); string(v) != "v2" {
		t.Errorf("Get after overwrite = %q", v)
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}

	if err := m.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := m.Delete("k"); err != nil {
		t.Fatalf("Delete missing: %v", err)
	}
	if _, ok, _ := m.Get("k"); ok {
		t.Error("Get after Delete hit")
	}
}

func TestMemory_LRUEviction(t *testing.T) {
	t.Parallel()

	m := NewMemory(3, time.Hour)
	for _, k := range []string{"a", "b", "c"} {
		_ = m.Set(k, []byte(k))
	}
	// Touch a so b becomes the least recently used.
	_, _, _ = m.Get("a")
	_ = m.Set("d", []byte("d"))

	if _, ok, _ := m.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	for _, k := range []string{"a", "c", "d"} {
		if _, ok, _ := m.Get(k); !ok {
			t.Errorf("%s should still be cached", k)
		}
	}
	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}
}

func TestMemory_TTL(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	m := NewMemory(10, time.Minute)
	m.lru.now = clock.Now

	_ = m.Set("old", []byte("1"))
	clock.Advance(30 * time.Second)
	_ = m.Set("new", []byte("2"))
	clock.Advance(45 * time.Second)

	if _, ok, _ := m.Get("old"); ok {
		t.Error("old entry should be expired")
	}
	if _, ok, _ := m.Get("new"); !ok {
		t.Error("new entry should be live")
	}

	clock.Advance(time.Minute)
	n, err := m.GC(context.Background())
	if err != nil {
		t.Fatalf("GC: %v", err)
	}
	if n != 0 || m.Len() != 0 {
		t.Errorf("GC left %d entries (Len %d), want 0", n, m.Len())
	}
}

func TestMemory_Closed(t *testing.T) {
	t.Parallel()

	m := NewMemory(0, 0)
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := m.Set("k", nil); !errors.Is(err, ErrClosed) {
		t.Errorf("Set after Close = %v, want ErrClosed", err)
	}
	if _, _, err := m.Get("k"); !errors.Is(err, ErrClosed) {
		t.Errorf("Get after Close = %v, want ErrClosed", err)
	}
	if _, err := m.GC(context.Background()); !errors.Is(err, ErrClosed) {
		t.Errorf("GC after Close = %v, want ErrClosed", err)
	}
}

func TestMemory_Concurrent(t *testing.T) {
	t.Parallel()

	m := NewMemory(50, time.Hour)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("k%d", (g*7+i)%80)
				_ = m.Set(key, []byte(key))
				if v, ok, _ := m.Get(key); ok && string(v) != key {
					t.Errorf("Get(%s) = %q", key, v)
				}
			}
		}(g)
	}
	wg.Wait()

	if m.Len() > 50 {
		t.Errorf("Len() = %d exceeds capacity", m.Len())
	}
}

func TestOpen(t *testing.T) {
	t.Parallel()

	s, err := Open(Config{})
	if err != nil {
		t.Fatalf("Open default: %v", err)
	}
	if s.Backend() != "memory" {
		t.Errorf("default backend = %s", s.Backend())
	}
	_ = s.Close()

	if _, err := Open(Config{Backend: BackendBadger}); err == nil {
		t.Error("badger without path should fail")
	}
	if _, err := Open(Config{Backend: "redis"}); err == nil {
		t.Error("unknown backend should fail")
	}
}
