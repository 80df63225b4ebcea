// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/reelmatch/internal/cache"
)

// gcStore counts GC calls over an in-memory store.
type gcStore struct {
	*cache.Memory
	gcCalls atomic.Int32
	gcErr   error
}

func (s *gcStore) GC(ctx context.Context) (int, error) {
	s.gcCalls.Add(1)
	if s.gcErr != nil {
		return 0, s.gcErr
	}
	return s.Memory.GC(ctx)
}

var _ suture.Service = (*CacheGCService)(nil)

func TestNewCacheGCService_DefaultInterval(t *testing.T) {
	t.Parallel()

	svc := NewCacheGCService(cache.NewMemory(10, time.Minute), 0)
	if svc.interval != defaultGCInterval {
		t.Errorf("interval = %v, want %v", svc.interval, defaultGCInterval)
	}
	if svc.String() != "lookup-cache-gc" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestCacheGCService_RunsUntilCancelled(t *testing.T) {
	t.Parallel()

	store := &gcStore{Memory: cache.NewMemory(10, time.Minute)}
	svc := NewCacheGCService(store, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for store.gcCalls.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(2 * time.Millisecond)
	}
	cancel()

	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve = %v, want context.Canceled", err)
	}
	if store.gcCalls.Load() < 2 {
		t.Errorf("gc calls = %d, want at least 2", store.gcCalls.Load())
	}
}

func TestCacheGCService_ToleratesErrors(t *testing.T) {
	t.Parallel()

	store := &gcStore{Memory: cache.NewMemory(10, time.Minute), gcErr: errors.New("disk busy")}
	svc := NewCacheGCService(store, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve = %v, want to keep running until the deadline", err)
	}
	if store.gcCalls.Load() < 2 {
		t.Errorf("gc calls = %d, want retries after failure", store.gcCalls.Load())
	}
}

func TestCacheGCService_StopsOnClosedStore(t *testing.T) {
	t.Parallel()

	store := cache.NewMemory(10, time.Minute)
	_ = store.Close()
	svc := NewCacheGCService(store, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := svc.Serve(ctx); err != nil {
		t.Errorf("Serve on closed store = %v, want nil", err)
	}
}
