// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package catalog loads and normalizes the movie catalog.
//
// # Overview
//
// The catalog is built once at startup from two CSV files in the TMDB 5000
// layout: a movies file (id, title, overview, genres, keywords, release_date,
// vote_average, vote_count, budget, revenue) and a credits file (title, cast,
// crew). The files are joined on title with DuckDB, every joined row is
// normalized into a Movie, and the result is frozen into an immutable Catalog
// snapshot that the recommender, filter and API share without locking.
//
// # Normalization
//
// Structured columns hold JSON lists. Each is parsed into a typed
// intermediate value before any token is extracted:
//
//   - GenreList: genres and keywords, every element's name
//   - CastList: the first five billed names
//   - CrewList: names whose job is "Director"
//
// Extracted names have all whitespace removed ("Science Fiction" becomes
// "ScienceFiction") so multi-word names stay single vocabulary terms.
//
// # Errors
//
// Rows missing a required field are dropped and counted. A present but
// malformed field is a *ParseError and aborts the whole load as a
// *LoadError; the service never serves a partially parsed catalog.
//
// # Usage
//
//	loader := catalog.NewLoader(catalog.LoaderConfig{
//	    MoviesPath:  "data/tmdb_5000_movies.csv",
//	    CreditsPath: "data/tmdb_5000_credits.csv",
//	})
//	cat, stats, err := loader.Load(ctx)
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load catalog")
//	}
//
//	idx, ok := cat.IndexOf("Avatar")
//	top := cat.Filter(catalog.Criteria{Genre: "Action", SortBy: catalog.SortRating})
package catalog
