// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package recommend implements content-based movie recommendations.
//
// # Pipeline
//
// The index is built once per catalog load:
//
//   - ComposeTags turns each movie into one lower-cased tag document
//     (overview, genres, keywords, cast, directors).
//   - Fit learns a capped vocabulary and produces a sparse term-count row
//     per movie.
//   - NewSimilarityMatrix computes cosine similarity between every pair of
//     rows.
//
// Engine then answers queries by ranking one row of the matrix.
//
// # Determinism
//
// The vocabulary keeps the most frequent terms with ties broken
// lexicographically, columns are assigned in term order, and ranking is
// stable by catalog order. The worker count used to build the matrix does
// not change any result.
//
// # Zero Vectors
//
// A movie whose tag document has no vocabulary terms has similarity 0 with
// every movie, itself included. It is never recommended ahead of a movie
// with a positive score.
//
// # Usage
//
//	engine, err := recommend.NewEngine(cat, recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	titles := engine.Recommend("Avatar", 5)
//
// # Thread Safety
//
// Engine, Vocabulary, CountMatrix and SimilarityMatrix are immutable after
// construction and safe for concurrent use without locking.
package recommend
