// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"strings"

	"github.com/tomtom215/reelmatch/internal/catalog"
)

// ComposeTags builds the tag document of a movie: overview tokens, genres,
// keywords, cast and directors in that order, lower-cased and joined with
// single spaces. Duplicates are kept.
func ComposeTags(m *catalog.Movie) string {
	n := len(m.OverviewTokens) + len(m.Genres) + len(m.Keywords) + len(m.Cast) + len(m.Directors)
	tokens := make([]string, 0, n)
	for _, group := range [][]string{m.OverviewTokens, m.Genres, m.Keywords, m.Cast, m.Directors} {
		for _, tok := range group {
			if tok == "" {
				continue
			}
			tokens = append(tokens, strings.ToLower(tok))
		}
	}
	return strings.Join(tokens, " ")
}
