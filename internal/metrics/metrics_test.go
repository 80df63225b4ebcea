// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metrics

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// Collectors are package globals, so these tests compare deltas and do not
// run in parallel.

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/recommendations", "200"))
	RecordAPIRequest("GET", "/api/v1/recommendations", "200", 3*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/recommendations", "200"))

	if after-before != 1 {
		t.Errorf("api_requests_total delta = %v, want 1", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	base := testutil.ToFloat64(APIActiveRequests)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			TrackActiveRequest(true)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(APIActiveRequests); got != base {
		t.Errorf("api_active_requests = %v, want %v", got, base)
	}
}

func TestRecordCatalogLoad(t *testing.T) {
	droppedBefore := testutil.ToFloat64(CatalogRecordsDropped)

	RecordCatalogLoad(4799, 4, 1200*time.Millisecond)

	if got := testutil.ToFloat64(CatalogMoviesLoaded); got != 4799 {
		t.Errorf("catalog_movies_loaded = %v, want 4799", got)
	}
	if got := testutil.ToFloat64(CatalogRecordsDropped) - droppedBefore; got != 4 {
		t.Errorf("catalog_records_dropped_total delta = %v, want 4", got)
	}
}

func TestSetVocabularySize(t *testing.T) {
	SetVocabularySize(5000)
	if got := testutil.ToFloat64(IndexVocabularySize); got != 5000 {
		t.Errorf("index_vocabulary_size = %v, want 5000", got)
	}
}

func TestRecordRecommendation(t *testing.T) {
	tests := []struct {
		name   string
		found  bool
		result string
	}{
		{"known title", true, "found"},
		{"unknown title", false, "unknown_title"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(RecommendRequests.WithLabelValues(tt.result))
			RecordRecommendation(tt.found, time.Millisecond)
			after := testutil.ToFloat64(RecommendRequests.WithLabelValues(tt.result))
			if after-before != 1 {
				t.Errorf("recommend_requests_total{result=%q} delta = %v, want 1", tt.result, after-before)
			}
		})
	}
}

func TestRecordLookupCache(t *testing.T) {
	hits := testutil.ToFloat64(LookupCacheHits.WithLabelValues("memory"))
	misses := testutil.ToFloat64(LookupCacheMisses.WithLabelValues("memory"))

	RecordLookupCache("memory", true)
	RecordLookupCache("memory", false)
	RecordLookupCache("memory", false)

	if got := testutil.ToFloat64(LookupCacheHits.WithLabelValues("memory")) - hits; got != 1 {
		t.Errorf("hits delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(LookupCacheMisses.WithLabelValues("memory")) - misses; got != 2 {
		t.Errorf("misses delta = %v, want 2", got)
	}
}

func TestLookupMetricsExposition(t *testing.T) {
	RecordLookup("ok", 120*time.Millisecond)
	RecordPlaceholder()
	SetLookupCacheEntries("badger", 7)

	expected := `
# HELP lookup_cache_entries Entries held by the lookup cache after the last GC pass
# TYPE lookup_cache_entries gauge
lookup_cache_entries{backend="badger"} 7
`
	if err := testutil.CollectAndCompare(LookupCacheEntries, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected exposition: %v", err)
	}
	if testutil.CollectAndCount(LookupDuration) != 1 {
		t.Error("lookup_duration_seconds should expose one series")
	}
}
