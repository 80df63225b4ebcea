// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"math"
	"sync"
)

// SimilarityMatrix is the dense pairwise cosine similarity of a count
// matrix. Values lie in [0,1]; rows and columns follow catalog order.
type SimilarityMatrix struct {
	n    int
	data []float32
}

// posting is one (row, count) entry of the column index.
type posting struct {
	row   int
	count int
}

// NewSimilarityMatrix computes cosine similarity between every pair of rows
// of m using up to workers goroutines.
//
// Counts are integers, so every dot product is exact and dividing by the
// product of the two norms gives bit-identical (i,j) and (j,i) cells. The
// diagonal is 1 for non-zero rows. A zero row scores 0 against every row,
// itself included.
func NewSimilarityMatrix(m *CountMatrix, workers int) *SimilarityMatrix {
	n := m.Rows()
	s := &SimilarityMatrix{
		n:    n,
		data: make([]float32, n*n),
	}
	if n == 0 {
		return s
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	norms := make([]float64, n)
	columns := make([][]posting, m.Cols())
	for i := 0; i < n; i++ {
		r := m.Row(i)
		norms[i] = r.Norm()
		for k, col := range r.Indices {
			columns[col] = append(columns[col], posting{row: i, count: r.Counts[k]})
		}
	}

	var wg sync.WaitGroup
	chunkSize := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			break
		}

		wg.Add(1)
		go func(rowStart, rowEnd int) {
			defer wg.Done()

			dots := make([]float64, n)
			for i := rowStart; i < rowEnd; i++ {
				s.fillRow(i, m.Row(i), columns, norms, dots)
			}
		}(start, end)
	}
	wg.Wait()

	return s
}

// fillRow computes row i. dots is scratch space of length n.
func (s *SimilarityMatrix) fillRow(i int, r SparseRow, columns [][]posting, norms, dots []float64) {
	if norms[i] == 0 {
		return
	}
	for j := range dots {
		dots[j] = 0
	}
	for k, col := range r.Indices {
		c := float64(r.Counts[k])
		for _, p := range columns[col] {
			dots[p.row] += c * float64(p.count)
		}
	}

	out := s.data[i*s.n : (i+1)*s.n]
	for j, dot := range dots {
		if dot == 0 {
			continue
		}
		v := dot / (norms[i] * norms[j])
		out[j] = float32(math.Min(v, 1))
	}
	out[i] = 1
}

// Len returns the number of rows.
func (s *SimilarityMatrix) Len() int {
	return s.n
}

// At returns the similarity of rows i and j.
func (s *SimilarityMatrix) At(i, j int) float32 {
	return s.data[i*s.n+j]
}

// Row returns row i. The returned slice aliases the matrix and must not be
// modified.
func (s *SimilarityMatrix) Row(i int) []float32 {
	return s.data[i*s.n : (i+1)*s.n : (i+1)*s.n]
}
