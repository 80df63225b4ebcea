// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"sort"
)

// Movie is one normalized catalog entry. Token fields hold whitespace-free
// names; Overview is kept verbatim for display.
type Movie struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	Overview       string   `json:"overview"`
	OverviewTokens []string `json:"-"`
	Genres         []string `json:"genres"`
	Keywords       []string `json:"keywords"`
	Cast           []string `json:"cast"`
	Directors      []string `json:"directors"`
	ReleaseDate    string   `json:"release_date"`
	ReleaseYear    string   `json:"release_year"`
	Rating         float64  `json:"rating"`
	VoteCount      int      `json:"vote_count"`
	Budget         int64    `json:"budget"`
	Revenue        int64    `json:"revenue"`
}

// Catalog is the immutable movie snapshot built once per load.
// Row indices (catalog order) are stable for the lifetime of the value and
// are shared with the recommendation index. All methods are safe for
// concurrent use.
type Catalog struct {
	movies  []Movie
	byTitle map[string]int
	byID    map[int]int
	genres  []string
	years   []string
}

// New builds a Catalog from movies in catalog order. The slice is copied.
// Duplicate titles resolve to their first occurrence.
func New(movies []Movie) *Catalog {
	c := &Catalog{
		movies:  make([]Movie, len(movies)),
		byTitle: make(map[string]int, len(movies)),
		byID:    make(map[int]int, len(movies)),
	}
	copy(c.movies, movies)

	genreSet := make(map[string]struct{})
	yearSet := make(map[string]struct{})
	for i := range c.movies {
		m := &c.movies[i]
		if _, dup := c.byTitle[m.Title]; !dup {
			c.byTitle[m.Title] = i
		}
		if _, dup := c.byID[m.ID]; !dup {
			c.byID[m.ID] = i
		}
		for _, g := range m.Genres {
			genreSet[g] = struct{}{}
		}
		if m.ReleaseYear != "" {
			yearSet[m.ReleaseYear] = struct{}{}
		}
	}

	c.genres = sortedKeys(genreSet)
	c.years = sortedKeys(yearSet)
	// newest first, matching the year selector
	sort.Sort(sort.Reverse(sort.StringSlice(c.years)))
	return c
}

// Len returns the number of movies.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// At returns the movie at row i. It panics if i is out of range.
func (c *Catalog) At(i int) Movie {
	return c.movies[i]
}

// Movies returns a copy of the movie list in catalog order.
func (c *Catalog) Movies() []Movie {
	out := make([]Movie, len(c.movies))
	copy(out, c.movies)
	return out
}

// Titles returns every title in catalog order, duplicates included.
func (c *Catalog) Titles() []string {
	out := make([]string, len(c.movies))
	for i := range c.movies {
		out[i] = c.movies[i].Title
	}
	return out
}

// IndexOf returns the row of the first movie whose title equals title exactly.
func (c *Catalog) IndexOf(title string) (int, bool) {
	i, ok := c.byTitle[title]
	return i, ok
}

// ByID returns the movie with the given TMDB id.
func (c *Catalog) ByID(id int) (Movie, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Movie{}, false
	}
	return c.movies[i], true
}

// Genres returns the distinct genre tokens, sorted ascending.
func (c *Catalog) Genres() []string {
	return append([]string(nil), c.genres...)
}

// Years returns the distinct release years, newest first.
func (c *Catalog) Years() []string {
	return append([]string(nil), c.years...)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
