// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package lookup

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// BreakerSettings tunes the circuit breaker around a Lookuper.
type BreakerSettings struct {
	Name string
	// MaxRequests allowed while half-open.
	MaxRequests uint32
	// Interval resets the counts while closed.
	Interval time.Duration
	// Timeout is how long the circuit stays open.
	Timeout time.Duration
	// MinRequests before the failure ratio is considered.
	MinRequests uint32
	// FailureRatio at or above which the circuit opens.
	FailureRatio float64
}

// DefaultBreakerSettings opens after 60% failures over at least 10
// requests and probes again after a minute.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		Name:         "tmdb-api",
		MaxRequests:  3,
		Interval:     time.Minute,
		Timeout:      time.Minute,
		MinRequests:  10,
		FailureRatio: 0.6,
	}
}

// BreakerClient guards a Lookuper with a circuit breaker. ErrNotFound
// counts as a success: the remote answered.
type BreakerClient struct {
	next Lookuper
	cb   *gobreaker.CircuitBreaker[*Details]
	name string
}

var _ Lookuper = (*BreakerClient)(nil)

// NewBreakerClient wraps next.
func NewBreakerClient(next Lookuper, s BreakerSettings) *BreakerClient {
	if s.Name == "" {
		s.Name = "tmdb-api"
	}
	name := s.Name

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[*Details](gobreaker.Settings{
		Name:        name,
		MaxRequests: s.MaxRequests,
		Interval:    s.Interval,
		Timeout:     s.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < s.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= s.FailureRatio
			if shouldTrip {
				logging.Warn().
					Str("breaker", name).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},

		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, context.Canceled)
		},
	})

	return &BreakerClient{next: next, cb: cb, name: name}
}

// Lookup implements Lookuper.
func (b *BreakerClient) Lookup(ctx context.Context, title string) (*Details, error) {
	d, err := b.cb.Execute(func() (*Details, error) {
		return b.next.Lookup(ctx, title)
	})

	switch {
	case err == nil || errors.Is(err, ErrNotFound):
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
		return nil, &Failure{Op: "breaker", Title: title, Err: err}
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(b.cb.Counts().ConsecutiveFailures))
	}
	return d, err
}

// State returns the current breaker state name.
func (b *BreakerClient) State() string {
	return stateToString(b.cb.State())
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
