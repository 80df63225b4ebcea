// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// Tokenize splits text into lower-cased terms: runs of two or more word
// characters (letters, digits, underscore). Everything else separates terms,
// so "pandora." yields "pandora" and single characters are dropped.
func Tokenize(text string) []string {
	var (
		out []string
		b   strings.Builder
		n   int
	)
	flush := func() {
		if n >= 2 {
			out = append(out, b.String())
		}
		b.Reset()
		n = 0
	}
	for _, r := range text {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
			n++
			continue
		}
		flush()
	}
	flush()
	return out
}

// Vocabulary maps terms to column indices. It is frozen after Fit.
type Vocabulary struct {
	terms []string
	index map[string]int
}

// Len returns the number of terms.
func (v *Vocabulary) Len() int {
	return len(v.terms)
}

// Terms returns the terms in column order.
func (v *Vocabulary) Terms() []string {
	return append([]string(nil), v.terms...)
}

// Index returns the column of term.
func (v *Vocabulary) Index(term string) (int, bool) {
	i, ok := v.index[term]
	return i, ok
}

// Term returns the term at column i.
func (v *Vocabulary) Term(i int) string {
	return v.terms[i]
}

// Transform counts the vocabulary terms of doc. Unknown terms are ignored.
func (v *Vocabulary) Transform(doc string) SparseRow {
	counts := make(map[int]int)
	for _, tok := range Tokenize(doc) {
		if col, ok := v.index[tok]; ok {
			counts[col]++
		}
	}
	return newSparseRow(counts)
}

// SparseRow is one row of a term-count matrix. Indices are ascending and
// Counts[i] is the count of column Indices[i].
type SparseRow struct {
	Indices []int
	Counts  []int
}

func newSparseRow(counts map[int]int) SparseRow {
	row := SparseRow{
		Indices: make([]int, 0, len(counts)),
		Counts:  make([]int, 0, len(counts)),
	}
	for col := range counts {
		row.Indices = append(row.Indices, col)
	}
	sort.Ints(row.Indices)
	for _, col := range row.Indices {
		row.Counts = append(row.Counts, counts[col])
	}
	return row
}

// Count returns the count of column col.
func (r SparseRow) Count(col int) int {
	i := sort.SearchInts(r.Indices, col)
	if i < len(r.Indices) && r.Indices[i] == col {
		return r.Counts[i]
	}
	return 0
}

// Total returns the sum of all counts.
func (r SparseRow) Total() int {
	sum := 0
	for _, c := range r.Counts {
		sum += c
	}
	return sum
}

// Norm returns the Euclidean norm of the row.
func (r SparseRow) Norm() float64 {
	var sq float64
	for _, c := range r.Counts {
		sq += float64(c) * float64(c)
	}
	return math.Sqrt(sq)
}

// IsZero reports whether the row has no vocabulary terms.
func (r SparseRow) IsZero() bool {
	return len(r.Indices) == 0
}

// CountMatrix holds one sparse row per document, in input order.
type CountMatrix struct {
	rows []SparseRow
	cols int
}

// Rows returns the number of rows.
func (m *CountMatrix) Rows() int {
	return len(m.rows)
}

// Cols returns the number of columns (the vocabulary size).
func (m *CountMatrix) Cols() int {
	return m.cols
}

// Row returns row i. The returned slices must not be modified.
func (m *CountMatrix) Row(i int) SparseRow {
	return m.rows[i]
}

// Dense expands row i into a slice of length Cols.
func (m *CountMatrix) Dense(i int) []int {
	out := make([]int, m.cols)
	r := m.rows[i]
	for k, col := range r.Indices {
		out[col] = r.Counts[k]
	}
	return out
}

// Fit builds the vocabulary from docs and returns it with the count matrix.
//
// Stop words are removed, then the maxFeatures terms with the highest total
// count across the corpus are kept. Equal counts are ordered
// lexicographically so the cut is stable. Columns follow lexicographic term
// order. maxFeatures <= 0 keeps every term.
func Fit(docs []string, maxFeatures int) (*Vocabulary, *CountMatrix) {
	tokenized := make([][]string, len(docs))
	freq := make(map[string]int)
	for i, doc := range docs {
		toks := Tokenize(doc)
		kept := toks[:0]
		for _, t := range toks {
			if IsStopWord(t) {
				continue
			}
			kept = append(kept, t)
			freq[t]++
		}
		tokenized[i] = kept
	}

	terms := make([]string, 0, len(freq))
	for t := range freq {
		terms = append(terms, t)
	}
	if maxFeatures > 0 && len(terms) > maxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			fi, fj := freq[terms[i]], freq[terms[j]]
			if fi != fj {
				return fi > fj
			}
			return terms[i] < terms[j]
		})
		terms = terms[:maxFeatures]
	}
	sort.Strings(terms)

	vocab := &Vocabulary{
		terms: terms,
		index: make(map[string]int, len(terms)),
	}
	for i, t := range terms {
		vocab.index[t] = i
	}

	matrix := &CountMatrix{
		rows: make([]SparseRow, len(docs)),
		cols: len(terms),
	}
	for i, toks := range tokenized {
		counts := make(map[int]int)
		for _, t := range toks {
			if col, ok := vocab.index[t]; ok {
				counts[col]++
			}
		}
		matrix.rows[i] = newSparseRow(counts)
	}
	return vocab, matrix
}
