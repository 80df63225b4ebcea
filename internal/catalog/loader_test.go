// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func fixtureLoader() *Loader {
	return NewLoader(LoaderConfig{
		MoviesPath:  filepath.Join("testdata", "movies.csv"),
		CreditsPath: filepath.Join("testdata", "credits.csv"),
	})
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoader_Fixture(t *testing.T) {
	t.Parallel()

	cat, stats, err := fixtureLoader().Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if stats.MovieRows != 9 || stats.CreditRows != 8 {
		t.Errorf("source rows = %d/%d, want 9/8", stats.MovieRows, stats.CreditRows)
	}
	// Two Batman rows on each side join pairwise.
	if stats.JoinedRows != 10 {
		t.Errorf("JoinedRows = %d, want 10", stats.JoinedRows)
	}
	if stats.Dropped != 1 {
		t.Errorf("Dropped = %d, want 1 (missing overview)", stats.Dropped)
	}
	if stats.Loaded != 9 || cat.Len() != 9 {
		t.Errorf("Loaded = %d, Len = %d, want 9", stats.Loaded, cat.Len())
	}

	wantTitles := []string{
		"Avatar",
		"Pirates of the Caribbean: At World's End",
		"Spectre",
		"The Dark Knight Rises",
		"Batman", "Batman", "Batman", "Batman",
		"Quiet Harbor",
	}
	if got := cat.Titles(); !reflect.DeepEqual(got, wantTitles) {
		t.Errorf("catalog order = %q", got)
	}

	// Movies order first, then credits order for a repeated title.
	if got := cat.At(4); got.ID != 268 || got.Cast[0] != "MichaelKeaton" {
		t.Errorf("row 4 = %d %q", got.ID, got.Cast)
	}
	if got := cat.At(5); got.ID != 268 || got.Cast[0] != "AdamWest" {
		t.Errorf("row 5 = %d %q", got.ID, got.Cast)
	}
	if got := cat.At(6); got.ID != 2661 {
		t.Errorf("row 6 id = %d, want 2661", got.ID)
	}
	if i, _ := cat.IndexOf("Batman"); i != 4 {
		t.Errorf("IndexOf(Batman) = %d, want 4", i)
	}
}

func TestLoader_FixtureFields(t *testing.T) {
	t.Parallel()

	cat, _, err := fixtureLoader().Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	avatar := cat.At(0)
	if want := []string{"Action", "Adventure", "Fantasy", "ScienceFiction"}; !reflect.DeepEqual(avatar.Genres, want) {
		t.Errorf("Genres = %q", avatar.Genres)
	}
	if want := []string{"SamWorthington", "ZoeSaldana", "SigourneyWeaver", "StephenLang", "MichelleRodriguez"}; !reflect.DeepEqual(avatar.Cast, want) {
		t.Errorf("Cast = %q", avatar.Cast)
	}
	if want := []string{"JamesCameron"}; !reflect.DeepEqual(avatar.Directors, want) {
		t.Errorf("Directors = %q", avatar.Directors)
	}
	if avatar.ReleaseYear != "2009" || avatar.Rating != 7.2 || avatar.Revenue != 2787965087 {
		t.Errorf("Avatar = %+v", avatar)
	}

	harbor := cat.At(8)
	if len(harbor.Directors) != 0 {
		t.Errorf("Quiet Harbor directors = %q, want none", harbor.Directors)
	}
	if _, ok := cat.IndexOf("Orphan Reel"); ok {
		t.Error("movie without credits should not survive the join")
	}
	if _, ok := cat.IndexOf("Untitled Project"); ok {
		t.Error("movie without overview should be dropped")
	}
}

func TestLoader_MissingFile(t *testing.T) {
	t.Parallel()

	l := NewLoader(LoaderConfig{
		MoviesPath:  filepath.Join("testdata", "movies.csv"),
		CreditsPath: filepath.Join(t.TempDir(), "absent.csv"),
	})
	_, _, err := l.Load(context.Background())

	var le *LoadError
	if !errors.As(err, &le) || le.Op != "stat" {
		t.Fatalf("error = %v, want stat LoadError", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("LoadError should wrap os.ErrNotExist")
	}
}

func TestLoader_Unconfigured(t *testing.T) {
	t.Parallel()

	_, _, err := NewLoader(LoaderConfig{}).Load(context.Background())
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("error = %v, want *LoadError", err)
	}
}

func TestLoader_MissingColumn(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	movies := writeFile(t, dir, "movies.csv", "id,title,overview\n1,Alpha,Something\n")
	credits := writeFile(t, dir, "credits.csv", "movie_id,title,cast,crew\n1,Alpha,[],[]\n")

	_, _, err := NewLoader(LoaderConfig{MoviesPath: movies, CreditsPath: credits}).Load(context.Background())
	if !errors.Is(err, ErrMissingColumns) {
		t.Fatalf("error = %v, want ErrMissingColumns", err)
	}
	var le *LoadError
	if errors.As(err, &le) && le.Path != movies {
		t.Errorf("LoadError.Path = %q, want %q", le.Path, movies)
	}
}

const movieHeader = "budget,genres,id,keywords,overview,release_date,revenue,title,vote_average,vote_count\n"

func TestLoader_EmptyJoin(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	movies := writeFile(t, dir, "movies.csv", movieHeader+
		`0,"[{""id"": 1, ""name"": ""Drama""}]",1,"[]",Quiet film,2001-01-01,0,Alpha,6.0,10`+"\n")
	credits := writeFile(t, dir, "credits.csv", "movie_id,title,cast,crew\n2,Beta,[],[]\n")

	_, _, err := NewLoader(LoaderConfig{MoviesPath: movies, CreditsPath: credits}).Load(context.Background())
	if !errors.Is(err, ErrEmptyJoin) {
		t.Fatalf("error = %v, want ErrEmptyJoin", err)
	}
}

func TestLoader_MalformedField(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	movies := writeFile(t, dir, "movies.csv", movieHeader+
		`0,Drama|Crime,1,"[]",Quiet film,2001-01-01,0,Alpha,6.0,10`+"\n")
	credits := writeFile(t, dir, "credits.csv", "movie_id,title,cast,crew\n1,Alpha,[],[]\n")

	_, _, err := NewLoader(LoaderConfig{MoviesPath: movies, CreditsPath: credits}).Load(context.Background())

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want wrapped *ParseError", err)
	}
	if pe.Field != "genres" || pe.Title != "Alpha" || pe.Row != 1 {
		t.Errorf("ParseError = %+v", pe)
	}
	var le *LoadError
	if !errors.As(err, &le) || le.Op != "normalize" {
		t.Errorf("outer error = %v, want normalize LoadError", err)
	}
}

func TestLoader_AllRecordsIncomplete(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	movies := writeFile(t, dir, "movies.csv", movieHeader+
		`0,"[]",1,"[]",,2001-01-01,0,Alpha,6.0,10`+"\n")
	credits := writeFile(t, dir, "credits.csv", "movie_id,title,cast,crew\n1,Alpha,[],[]\n")

	_, stats, err := NewLoader(LoaderConfig{MoviesPath: movies, CreditsPath: credits}).Load(context.Background())
	if !errors.Is(err, ErrNoCompleteRecords) {
		t.Fatalf("error = %v, want ErrNoCompleteRecords", err)
	}
	if stats.Dropped != 1 {
		t.Errorf("Dropped = %d, want 1", stats.Dropped)
	}
}

func TestQuoteLiteral(t *testing.T) {
	t.Parallel()

	if got := quoteLiteral("/data/it's here.csv"); got != `'/data/it''s here.csv'` {
		t.Errorf("quoteLiteral = %s", got)
	}
}
