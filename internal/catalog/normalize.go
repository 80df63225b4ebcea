// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/goccy/go-json"
)

// CastLimit is the number of billed cast members kept per movie.
const CastLimit = 5

// directorJob is the crew job that marks a director.
const directorJob = "Director"

// FieldKind tags the variant held by a parsed structured field.
type FieldKind int

const (
	KindGenreList FieldKind = iota + 1
	KindCastList
	KindCrewList
)

func (k FieldKind) String() string {
	switch k {
	case KindGenreList:
		return "genre_list"
	case KindCastList:
		return "cast_list"
	case KindCrewList:
		return "crew_list"
	default:
		return "unknown"
	}
}

// Field is the typed form of a structured metadata column.
// Tokens returns the cleaned names that feed the tag pipeline.
type Field interface {
	Kind() FieldKind
	Tokens() []string
}

// NamedEntry is one {id, name} element of a genre or keyword list.
type NamedEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GenreList holds genres or keywords in source order.
type GenreList []NamedEntry

func (GenreList) Kind() FieldKind { return KindGenreList }

// Tokens returns every name, cleaned.
func (l GenreList) Tokens() []string {
	out := make([]string, 0, len(l))
	for _, e := range l {
		out = append(out, CleanToken(e.Name))
	}
	return out
}

// CastMember is one billed actor.
type CastMember struct {
	Name      string `json:"name"`
	Character string `json:"character"`
	Order     int    `json:"order"`
}

// CastList holds the cast in listed (billing) order.
type CastList []CastMember

func (CastList) Kind() FieldKind { return KindCastList }

// Tokens returns the first CastLimit names in listed order.
func (l CastList) Tokens() []string {
	n := len(l)
	if n > CastLimit {
		n = CastLimit
	}
	out := make([]string, 0, n)
	for _, m := range l[:n] {
		out = append(out, CleanToken(m.Name))
	}
	return out
}

// CrewMember is one crew credit.
type CrewMember struct {
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

// CrewList holds crew credits in source order.
type CrewList []CrewMember

func (CrewList) Kind() FieldKind { return KindCrewList }

// Tokens returns the names of every director. The result may be empty.
func (l CrewList) Tokens() []string {
	out := make([]string, 0, 1)
	for _, m := range l {
		if m.Job == directorJob {
			out = append(out, CleanToken(m.Name))
		}
	}
	return out
}

// ParseField decodes raw JSON text into the variant named by kind.
func ParseField(kind FieldKind, raw string) (Field, error) {
	data := []byte(raw)
	switch kind {
	case KindGenreList:
		var l GenreList
		if err := json.Unmarshal(data, &l); err != nil {
			return nil, fmt.Errorf("decode %s: %w", kind, err)
		}
		return l, nil
	case KindCastList:
		var l CastList
		if err := json.Unmarshal(data, &l); err != nil {
			return nil, fmt.Errorf("decode %s: %w", kind, err)
		}
		return l, nil
	case KindCrewList:
		var l CrewList
		if err := json.Unmarshal(data, &l); err != nil {
			return nil, fmt.Errorf("decode %s: %w", kind, err)
		}
		return l, nil
	default:
		return nil, fmt.Errorf("unknown field kind %d", int(kind))
	}
}

// CleanToken removes every whitespace rune from s.
func CleanToken(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// RawRecord is one joined movies+credits row before normalization.
// Empty strings mark missing (NULL) source values.
type RawRecord struct {
	Row         int
	ID          string
	Title       string
	Overview    string
	Genres      string
	Keywords    string
	Cast        string
	Crew        string
	ReleaseDate string
	VoteAverage string
	VoteCount   string
	Budget      string
	Revenue     string
}

// MaxRating is the top of the vote_average scale.
const MaxRating = 10.0

// missingMarkers are the cell values the source CSV uses for "no value".
var missingMarkers = map[string]struct{}{
	"nan": {}, "-nan": {}, "na": {}, "n/a": {}, "#n/a": {},
	"null": {}, "none": {}, "<na>": {},
}

// isMissing reports whether a raw cell holds no value.
func isMissing(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return true
	}
	_, ok := missingMarkers[strings.ToLower(v)]
	return ok
}

// complete reports whether every required field is present.
func (r *RawRecord) complete() bool {
	for _, v := range []string{
		r.ID, r.Title, r.Overview, r.Genres, r.Keywords,
		r.Cast, r.Crew, r.ReleaseDate, r.VoteAverage,
	} {
		if isMissing(v) {
			return false
		}
	}
	return true
}

// Normalize converts a raw record into a Movie.
//
// ok is false when a required field is missing; the caller drops the row.
// A non-nil error is always a *ParseError.
func Normalize(r *RawRecord) (m Movie, ok bool, err error) {
	if !r.complete() {
		return Movie{}, false, nil
	}

	parseErr := func(field string, cause error) error {
		return &ParseError{Field: field, Title: r.Title, Row: r.Row, Err: cause}
	}

	id, err := strconv.Atoi(strings.TrimSpace(r.ID))
	if err != nil {
		return Movie{}, false, parseErr("id", err)
	}
	rating, err := strconv.ParseFloat(strings.TrimSpace(r.VoteAverage), 64)
	if err != nil {
		return Movie{}, false, parseErr("vote_average", err)
	}
	if math.IsNaN(rating) || math.IsInf(rating, 0) {
		return Movie{}, false, nil
	}
	if rating < 0 || rating > MaxRating {
		return Movie{}, false, parseErr("vote_average", fmt.Errorf("rating %g outside [0, %g]", rating, MaxRating))
	}
	voteCount, err := parseOptionalInt(r.VoteCount)
	if err != nil {
		return Movie{}, false, parseErr("vote_count", err)
	}
	budget, err := parseOptionalInt(r.Budget)
	if err != nil {
		return Movie{}, false, parseErr("budget", err)
	}
	revenue, err := parseOptionalInt(r.Revenue)
	if err != nil {
		return Movie{}, false, parseErr("revenue", err)
	}

	fields := []struct {
		name string
		kind FieldKind
		raw  string
		dst  *[]string
	}{
		{"genres", KindGenreList, r.Genres, &m.Genres},
		{"keywords", KindGenreList, r.Keywords, &m.Keywords},
		{"cast", KindCastList, r.Cast, &m.Cast},
		{"crew", KindCrewList, r.Crew, &m.Directors},
	}
	for _, f := range fields {
		parsed, err := ParseField(f.kind, f.raw)
		if err != nil {
			return Movie{}, false, parseErr(f.name, err)
		}
		*f.dst = parsed.Tokens()
	}

	releaseDate := strings.TrimSpace(r.ReleaseDate)
	m.ID = id
	m.Title = r.Title
	m.Overview = r.Overview
	m.OverviewTokens = strings.Fields(r.Overview)
	m.ReleaseDate = releaseDate
	m.ReleaseYear = releaseYear(releaseDate)
	m.Rating = rating
	m.VoteCount = int(voteCount)
	m.Budget = budget
	m.Revenue = revenue
	return m, true, nil
}

// parseOptionalInt parses a numeric column that may be empty. Values such as
// "1.5e8" are accepted since CSV exports sometimes carry float formatting.
func parseOptionalInt(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int64(f), nil
}

func releaseYear(date string) string {
	if len(date) < 4 {
		return date
	}
	return date[:4]
}
