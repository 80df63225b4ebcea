// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"fmt"
	"runtime"
)

// Config contains the index and query settings of the engine.
type Config struct {
	// MaxFeatures caps the vocabulary size.
	MaxFeatures int `json:"max_features"`

	// Workers is the number of goroutines building the similarity matrix.
	// Zero means runtime.NumCPU().
	Workers int `json:"workers"`

	// DefaultK is used when a query asks for k <= 0.
	DefaultK int `json:"default_k"`

	// MaxK clamps k.
	MaxK int `json:"max_k"`
}

// DefaultConfig returns the standard settings: 5000 features and five
// recommendations per query.
func DefaultConfig() *Config {
	return &Config{
		MaxFeatures: 5000,
		Workers:     0,
		DefaultK:    5,
		MaxK:        50,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.MaxFeatures < 1 {
		return fmt.Errorf("max_features must be positive, got %d", c.MaxFeatures)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	if c.DefaultK < 1 {
		return fmt.Errorf("default_k must be positive, got %d", c.DefaultK)
	}
	if c.MaxK < c.DefaultK {
		return fmt.Errorf("max_k must be >= default_k, got %d < %d", c.MaxK, c.DefaultK)
	}
	return nil
}

// workers resolves the effective worker count.
func (c *Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

// clampK applies the default and the upper bound to k.
func (c *Config) clampK(k int) int {
	if k <= 0 {
		k = c.DefaultK
	}
	if k > c.MaxK {
		k = c.MaxK
	}
	return k
}
