// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"fmt"
	"math"
	"testing"
)

func corpusMatrix(docs ...string) *CountMatrix {
	_, m := Fit(docs, 5000)
	return m
}

func TestSimilarityMatrix_ThreeMovies(t *testing.T) {
	t.Parallel()

	s := NewSimilarityMatrix(corpusMatrix("space war future", "space war future", "romance drama city"), 2)

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	if got := s.At(0, 1); got != 1 {
		t.Errorf("sim(A,B) = %v, want 1", got)
	}
	if got := s.At(0, 2); got != 0 {
		t.Errorf("sim(A,C) = %v, want 0", got)
	}
	if s.At(2, 0) != s.At(2, 1) {
		t.Errorf("C must score A and B equally: %v vs %v", s.At(2, 0), s.At(2, 1))
	}
}

func TestSimilarityMatrix_KnownValue(t *testing.T) {
	t.Parallel()

	// (1,1,0) vs (1,0,1): cosine = 1/2.
	s := NewSimilarityMatrix(corpusMatrix("alpha beta", "alpha gamma"), 1)
	if got := s.At(0, 1); math.Abs(float64(got)-0.5) > 1e-6 {
		t.Errorf("sim = %v, want 0.5", got)
	}
}

func TestSimilarityMatrix_Properties(t *testing.T) {
	t.Parallel()

	docs := []string{
		"space war future alien",
		"space space alien crew ship",
		"romance drama city love",
		"love love city paris",
		"heist crew bank city",
		"the and of", // only stop words: zero row
		"alien ship war war war",
	}
	s := NewSimilarityMatrix(corpusMatrix(docs...), 3)

	for i := 0; i < s.Len(); i++ {
		for j := 0; j < s.Len(); j++ {
			v := s.At(i, j)
			if v < 0 || v > 1 || math.IsNaN(float64(v)) {
				t.Errorf("sim(%d,%d) = %v out of [0,1]", i, j, v)
			}
			if v != s.At(j, i) {
				t.Errorf("sim(%d,%d) = %v != sim(%d,%d) = %v", i, j, v, j, i, s.At(j, i))
			}
		}
	}

	for i := 0; i < s.Len(); i++ {
		want := float32(1)
		if i == 5 {
			want = 0
		}
		if got := s.At(i, i); got != want {
			t.Errorf("sim(%d,%d) = %v, want %v", i, i, got, want)
		}
		for j := 0; j < s.Len(); j++ {
			if s.At(i, j) > s.At(i, i) && i != 5 {
				t.Errorf("sim(%d,%d) = %v exceeds self-similarity", i, j, s.At(i, j))
			}
		}
	}
}

func TestSimilarityMatrix_ZeroRow(t *testing.T) {
	t.Parallel()

	s := NewSimilarityMatrix(corpusMatrix("space war", "", "space"), 1)
	for j := 0; j < 3; j++ {
		if s.At(1, j) != 0 || s.At(j, 1) != 0 {
			t.Errorf("zero row must score 0 against row %d", j)
		}
	}
}

func TestSimilarityMatrix_WorkerIndependent(t *testing.T) {
	t.Parallel()

	docs := make([]string, 40)
	for i := range docs {
		docs[i] = fmt.Sprintf("term%d term%d shared%d common", i%7, i%5, i%3)
	}
	m := corpusMatrix(docs...)
	base := NewSimilarityMatrix(m, 1)

	for _, workers := range []int{0, 2, 3, 8, 64} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			t.Parallel()
			s := NewSimilarityMatrix(m, workers)
			for i := 0; i < s.Len(); i++ {
				for j := 0; j < s.Len(); j++ {
					if s.At(i, j) != base.At(i, j) {
						t.Fatalf("sim(%d,%d) = %v, want %v", i, j, s.At(i, j), base.At(i, j))
					}
				}
			}
		})
	}
}

func TestSimilarityMatrix_Empty(t *testing.T) {
	t.Parallel()

	s := NewSimilarityMatrix(corpusMatrix(), 4)
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}
