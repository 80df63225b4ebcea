// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// DefaultFilterLimit caps filter results when Criteria.Limit is zero.
const DefaultFilterLimit = 15

// SortKey selects the filter result ordering.
type SortKey string

const (
	SortNone    SortKey = ""
	SortRating  SortKey = "rating"
	SortRevenue SortKey = "revenue"
)

// Criteria narrows the catalog. Zero values disable a criterion, except
// Limit where zero means DefaultFilterLimit.
type Criteria struct {
	// Year matches the four-digit release year exactly.
	Year string
	// Genre matches a genre token; spaces and case are ignored.
	Genre string
	// MinRating keeps movies rated at or above the threshold.
	MinRating float64
	// Query is a case-insensitive title substring.
	Query string
	// SortBy orders results descending; ties keep catalog order.
	SortBy SortKey
	// Limit caps the number of results.
	Limit int
}

// Filter returns the movies matching cr in catalog order (or sorted by
// cr.SortBy), truncated to the limit. It never reorders or mutates the
// catalog itself.
func (c *Catalog) Filter(cr Criteria) []Movie {
	limit := cr.Limit
	if limit <= 0 {
		limit = DefaultFilterLimit
	}

	folder := cases.Fold()
	query := folder.String(strings.TrimSpace(cr.Query))
	genre := folder.String(CleanToken(cr.Genre))

	matched := make([]Movie, 0, limit)
	for i := range c.movies {
		m := &c.movies[i]
		if cr.Year != "" && m.ReleaseYear != cr.Year {
			continue
		}
		if genre != "" && !hasGenre(m.Genres, genre, folder) {
			continue
		}
		if m.Rating < cr.MinRating {
			continue
		}
		if query != "" && !strings.Contains(folder.String(m.Title), query) {
			continue
		}
		matched = append(matched, *m)
	}

	switch cr.SortBy {
	case SortRating:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Rating > matched[j].Rating
		})
	case SortRevenue:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Revenue > matched[j].Revenue
		})
	}

	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

func hasGenre(genres []string, want string, folder cases.Caser) bool {
	for _, g := range genres {
		if folder.String(g) == want {
			return true
		}
	}
	return false
}

// ParseSortKey maps user input to a SortKey. The second result is false for
// unknown values.
func ParseSortKey(s string) (SortKey, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SortNone, true
	case "rating", "vote_average":
		return SortRating, true
	case "revenue", "box_office":
		return SortRevenue, true
	default:
		return SortNone, false
	}
}
