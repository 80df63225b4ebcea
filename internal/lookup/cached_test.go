// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package lookup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tomtom215/reelmatch/internal/cache"
)

func TestCacheKey(t *testing.T) {
	t.Parallel()

	if CacheKey("  Avatar ") != CacheKey("avatar") {
		t.Error("cache keys must ignore case and surrounding space")
	}
	if CacheKey("Avatar") != "title:avatar" {
		t.Errorf("CacheKey = %q", CacheKey("Avatar"))
	}
}

func TestCachedClient_Hit(t *testing.T) {
	t.Parallel()

	stub := newStub()
	stub.details["Avatar"] = &Details{TMDBID: 19995, Title: "Avatar", PosterURL: "https://img/a.jpg"}
	c := NewCachedClient(stub, cache.NewMemory(10, time.Hour))

	for i := 0; i < 3; i++ {
		d, err := c.Lookup(context.Background(), "Avatar")
		if err != nil || d.TMDBID != 19995 || d.PosterURL != "https://img/a.jpg" {
			t.Fatalf("Lookup #%d = %+v, %v", i, d, err)
		}
	}
	if stub.count("Avatar") != 1 {
		t.Errorf("downstream calls = %d, want 1", stub.count("Avatar"))
	}
}

func TestCachedClient_NegativeCache(t *testing.T) {
	t.Parallel()

	stub := newStub()
	c := NewCachedClient(stub, cache.NewMemory(10, time.Hour))

	for i := 0; i < 2; i++ {
		if _, err := c.Lookup(context.Background(), "Nope"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("error = %v, want ErrNotFound", err)
		}
	}
	if stub.count("Nope") != 1 {
		t.Errorf("downstream calls = %d, want 1", stub.count("Nope"))
	}
}

func TestCachedClient_FailuresNotCached(t *testing.T) {
	t.Parallel()

	stub := newStub()
	stub.errs["Avatar"] = &Failure{Op: "search", Status: 500, Err: errors.New("boom")}
	store := cache.NewMemory(10, time.Hour)
	c := NewCachedClient(stub, store)

	for i := 0; i < 2; i++ {
		if _, err := c.Lookup(context.Background(), "Avatar"); !IsFailure(err) {
			t.Fatalf("error = %v, want *Failure", err)
		}
	}
	if stub.count("Avatar") != 2 {
		t.Errorf("downstream calls = %d, want 2", stub.count("Avatar"))
	}
	if store.Len() != 0 {
		t.Errorf("store.Len() = %d, want 0", store.Len())
	}
}

func TestCachedClient_CorruptEntry(t *testing.T) {
	t.Parallel()

	stub := newStub()
	stub.details["Avatar"] = &Details{TMDBID: 19995, Title: "Avatar"}
	store := cache.NewMemory(10, time.Hour)
	if err := store.Set(CacheKey("Avatar"), []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	c := NewCachedClient(stub, store)

	d, err := c.Lookup(context.Background(), "Avatar")
	if err != nil || d.TMDBID != 19995 {
		t.Fatalf("Lookup = %+v, %v", d, err)
	}
	if stub.count("Avatar") != 1 {
		t.Errorf("downstream calls = %d, want 1", stub.count("Avatar"))
	}
	if _, ok, _ := store.Get(CacheKey("Avatar")); !ok {
		t.Error("corrupt entry should be replaced by a fresh one")
	}
}

func TestCachedClient_ClosedStoreFallsThrough(t *testing.T) {
	t.Parallel()

	stub := newStub()
	stub.details["Avatar"] = &Details{TMDBID: 19995, Title: "Avatar"}
	store := cache.NewMemory(10, time.Hour)
	_ = store.Close()
	c := NewCachedClient(stub, store)

	d, err := c.Lookup(context.Background(), "Avatar")
	if err != nil || d.TMDBID != 19995 {
		t.Errorf("Lookup = %+v, %v", d, err)
	}
}

func TestNewLookuper(t *testing.T) {
	t.Parallel()

	l, err := NewLookuper(Config{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := l.(Disabled); !ok {
		t.Errorf("no api key: got %T, want Disabled", l)
	}

	cfg := DefaultConfig()
	cfg.APIKey = "key"
	l, err = NewLookuper(cfg, cache.NewMemory(1, time.Minute))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := l.(*CachedClient); !ok {
		t.Errorf("with store: got %T, want *CachedClient", l)
	}

	l, err = NewLookuper(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := l.(*BreakerClient); !ok {
		t.Errorf("without store: got %T, want *BreakerClient", l)
	}

	cfg.BaseURL = ""
	if _, err := NewLookuper(cfg, nil); err == nil {
		t.Error("expected error for empty base url")
	}
}
