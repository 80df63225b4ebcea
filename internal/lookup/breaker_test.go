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

	gobreaker "github.com/sony/gobreaker/v2"
)

func testBreakerSettings(name string) BreakerSettings {
	return BreakerSettings{
		Name:         name,
		MaxRequests:  1,
		Interval:     time.Minute,
		Timeout:      time.Hour,
		MinRequests:  3,
		FailureRatio: 0.6,
	}
}

func TestBreakerClient_OpensOnFailures(t *testing.T) {
	t.Parallel()

	stub := newStub()
	stub.fallback = &Failure{Op: "search", Status: 503, Err: errors.New("unavailable")}
	b := NewBreakerClient(stub, testBreakerSettings("test-opens"))

	for i := 0; i < 3; i++ {
		if _, err := b.Lookup(context.Background(), "Avatar"); !IsFailure(err) {
			t.Fatalf("call %d error = %v, want *Failure", i, err)
		}
	}
	if b.State() != "open" {
		t.Fatalf("State() = %q, want open", b.State())
	}

	_, err := b.Lookup(context.Background(), "Avatar")
	var f *Failure
	if !errors.As(err, &f) || f.Op != "breaker" || !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("rejected error = %v", err)
	}
	if stub.count("Avatar") != 3 {
		t.Errorf("downstream calls = %d, want 3", stub.count("Avatar"))
	}
}

func TestBreakerClient_NotFoundIsSuccess(t *testing.T) {
	t.Parallel()

	stub := newStub()
	b := NewBreakerClient(stub, testBreakerSettings("test-notfound"))

	for i := 0; i < 10; i++ {
		if _, err := b.Lookup(context.Background(), "Unknown"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("error = %v, want ErrNotFound", err)
		}
	}
	if b.State() != "closed" {
		t.Errorf("State() = %q, want closed", b.State())
	}
}

func TestBreakerClient_PassesDetails(t *testing.T) {
	t.Parallel()

	stub := newStub()
	stub.details["Avatar"] = &Details{TMDBID: 19995, Title: "Avatar"}
	b := NewBreakerClient(stub, BreakerSettings{})

	d, err := b.Lookup(context.Background(), "Avatar")
	if err != nil || d.TMDBID != 19995 {
		t.Errorf("Lookup = %+v, %v", d, err)
	}
	if b.name != "tmdb-api" {
		t.Errorf("default name = %q", b.name)
	}
}

func TestStateToString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state gobreaker.State
		str   string
		num   float64
	}{
		{gobreaker.StateClosed, "closed", 0},
		{gobreaker.StateHalfOpen, "half-open", 1},
		{gobreaker.StateOpen, "open", 2},
		{gobreaker.State(99), "unknown", -1},
	}
	for _, tt := range tests {
		if got := stateToString(tt.state); got != tt.str {
			t.Errorf("stateToString(%v) = %q, want %q", tt.state, got, tt.str)
		}
		if got := stateToFloat(tt.state); got != tt.num {
			t.Errorf("stateToFloat(%v) = %v, want %v", tt.state, got, tt.num)
		}
	}
}
