// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// Required source columns.
var (
	movieColumns  = []string{"id", "title", "overview", "genres", "keywords", "release_date", "vote_average", "vote_count", "budget", "revenue"}
	creditColumns = []string{"title", "cast", "crew"}
)

// LoaderConfig locates the two source files.
type LoaderConfig struct {
	MoviesPath  string
	CreditsPath string
	// Threads is passed to DuckDB. Zero means one thread, which keeps
	// read_csv row numbering in file order.
	Threads int
}

// LoadStats summarizes a catalog build.
type LoadStats struct {
	MovieRows  int           `json:"movie_rows"`
	CreditRows int           `json:"credit_rows"`
	JoinedRows int           `json:"joined_rows"`
	Dropped    int           `json:"dropped"`
	Loaded     int           `json:"loaded"`
	Duration   time.Duration `json:"duration"`
}

// Loader joins the movies and credits files and normalizes the result.
type Loader struct {
	cfg LoaderConfig
}

// NewLoader creates a loader for the given files.
func NewLoader(cfg LoaderConfig) *Loader {
	if cfg.Threads <= 0 {
		cfg.Threads = 1
	}
	return &Loader{cfg: cfg}
}

// Load reads both files into an in-memory DuckDB, joins them on title and
// returns the normalized catalog. Every failure is a *LoadError.
func (l *Loader) Load(ctx context.Context) (*Catalog, LoadStats, error) {
	start := time.Now()
	var stats LoadStats

	for _, p := range []string{l.cfg.MoviesPath, l.cfg.CreditsPath} {
		if p == "" {
			return nil, stats, &LoadError{Op: "stat", Err: errors.New("source path not configured")}
		}
		if _, err := os.Stat(p); err != nil {
			return nil, stats, &LoadError{Op: "stat", Path: p, Err: err}
		}
	}

	// Disable auto-install/auto-load to prevent hangs in restricted network environments
	connStr := fmt.Sprintf(":memory:?threads=%d&autoinstall_known_extensions=false&autoload_known_extensions=false", l.cfg.Threads)
	db, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, stats, &LoadError{Op: "open", Err: err}
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Warn().Err(err).Msg("Failed to close catalog staging database")
		}
	}()
	// A single connection keeps the staging tables visible to every query.
	db.SetMaxOpenConns(1)

	if stats.MovieRows, err = stageCSV(ctx, db, "movies", l.cfg.MoviesPath, movieColumns); err != nil {
		return nil, stats, err
	}
	if stats.CreditRows, err = stageCSV(ctx, db, "credits", l.cfg.CreditsPath, creditColumns); err != nil {
		return nil, stats, err
	}

	raws, err := joinRecords(ctx, db)
	if err != nil {
		return nil, stats, &LoadError{Op: "join", Err: err}
	}
	stats.JoinedRows = len(raws)
	if len(raws) == 0 {
		return nil, stats, &LoadError{Op: "join", Err: ErrEmptyJoin}
	}

	movies := make([]Movie, 0, len(raws))
	for i := range raws {
		m, ok, err := Normalize(&raws[i])
		if err != nil {
			return nil, stats, &LoadError{Op: "normalize", Err: err}
		}
		if !ok {
			stats.Dropped++
			continue
		}
		movies = append(movies, m)
	}
	if len(movies) == 0 {
		return nil, stats, &LoadError{Op: "normalize", Err: ErrNoCompleteRecords}
	}

	cat := New(movies)
	stats.Loaded = cat.Len()
	stats.Duration = time.Since(start)

	metrics.RecordCatalogLoad(stats.Loaded, stats.Dropped, stats.Duration)

	logging.Info().
		Int("movie_rows", stats.MovieRows).
		Int("credit_rows", stats.CreditRows).
		Int("joined_rows", stats.JoinedRows).
		Int("dropped", stats.Dropped).
		Int("loaded", stats.Loaded).
		Dur("duration", stats.Duration).
		Msg("Catalog loaded")

	return cat, stats, nil
}

// stageCSV loads one CSV file into a table with a pos column recording file
// order, checks the required columns and returns the row count.
func stageCSV(ctx context.Context, db *sql.DB, table, path string, required []string) (int, error) {
	query := fmt.Sprintf(
		`CREATE TABLE %s AS SELECT row_number() OVER () AS pos, * FROM read_csv(%s, header = true, all_varchar = true, quote = '"', escape = '"')`,
		table, quoteLiteral(path),
	)
	if _, err := db.ExecContext(ctx, query); err != nil {
		return 0, &LoadError{Op: "read", Path: path, Err: err}
	}

	rows, err := db.QueryContext(ctx, `SELECT column_name FROM information_schema.columns WHERE table_name = ?`, table)
	if err != nil {
		return 0, &LoadError{Op: "read", Path: path, Err: err}
	}
	present := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			_ = rows.Close()
			return 0, &LoadError{Op: "read", Path: path, Err: err}
		}
		present[name] = true
	}
	if err := rows.Close(); err != nil {
		return 0, &LoadError{Op: "read", Path: path, Err: err}
	}

	var missing []string
	for _, col := range required {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return 0, &LoadError{Op: "read", Path: path, Err: fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))}
	}

	var count int
	if err := db.QueryRowContext(ctx, fmt.Sprintf(`SELECT count(*) FROM %s`, table)).Scan(&count); err != nil {
		return 0, &LoadError{Op: "read", Path: path, Err: err}
	}
	return count, nil
}

// joinQuery is an inner join on title. Rows follow the movies file, and a
// title with several credits rows follows the credits file.
const joinQuery = `
SELECT m.pos, m.id, m.title, m.overview, m.genres, m.keywords,
       c."cast", c.crew, m.release_date, m.vote_average, m.vote_count,
       m.budget, m.revenue
FROM movies m
JOIN credits c ON m.title = c.title
ORDER BY m.pos, c.pos`

func joinRecords(ctx context.Context, db *sql.DB) ([]RawRecord, error) {
	rows, err := db.QueryContext(ctx, joinQuery)
	if err != nil {
		return nil, fmt.Errorf("query joined rows: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []RawRecord
	for rows.Next() {
		var (
			pos  int64
			cols [12]sql.NullString
		)
		dest := []any{&pos}
		for i := range cols {
			dest = append(dest, &cols[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan joined row: %w", err)
		}
		out = append(out, RawRecord{
			Row:         int(pos),
			ID:          cols[0].String,
			Title:       cols[1].String,
			Overview:    cols[2].String,
			Genres:      cols[3].String,
			Keywords:    cols[4].String,
			Cast:        cols[5].String,
			Crew:        cols[6].String,
			ReleaseDate: cols[7].String,
			VoteAverage: cols[8].String,
			VoteCount:   cols[9].String,
			Budget:      cols[10].String,
			Revenue:     cols[11].String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate joined rows: %w", err)
	}
	return out, nil
}

// quoteLiteral renders s as a SQL string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
