// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package lookup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/reelmatch/internal/logging"
)

// maxErrorBodySize limits how much of an error response is read.
const maxErrorBodySize = 4 * 1024

// Config holds TMDB client settings.
type Config struct {
	APIKey            string
	BaseURL           string
	ImageBaseURL      string
	Language          string
	Timeout           time.Duration
	RetryAttempts     int
	RetryDelay        time.Duration
	RequestsPerSecond float64
	Burst             int
}

// DefaultConfig returns the public TMDB endpoints without an API key.
func DefaultConfig() Config {
	return Config{
		BaseURL:           "https://api.themoviedb.org/3",
		ImageBaseURL:      "https://image.tmdb.org/t/p/w500",
		Language:          "en-US",
		Timeout:           10 * time.Second,
		RetryAttempts:     3,
		RetryDelay:        500 * time.Millisecond,
		RequestsPerSecond: 20,
		Burst:             10,
	}
}

// Lookuper resolves a title to display metadata.
type Lookuper interface {
	Lookup(ctx context.Context, title string) (*Details, error)
}

// Details is the display metadata of one movie.
type Details struct {
	TMDBID      int     `json:"tmdb_id,omitempty"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	PosterPath  string  `json:"poster_path,omitempty"`
	PosterURL   string  `json:"poster_url"`
	Link        string  `json:"link,omitempty"`
	Placeholder bool    `json:"placeholder"`
}

// SearchResult is one TMDB movie search match.
type SearchResult struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
}

// SearchResponse is the TMDB paginated search payload.
type SearchResponse struct {
	Page         int            `json:"page"`
	Results      []SearchResult `json:"results"`
	TotalResults int            `json:"total_results"`
}

// MovieDetails is the subset of the TMDB movie payload that is displayed.
type MovieDetails struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
	Runtime     int     `json:"runtime"`
	Tagline     string  `json:"tagline"`
}

// Client talks to the TMDB REST API. Requests are rate limited and
// retried with exponential backoff on transport errors, 429 and 5xx.
type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ Lookuper = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithLimiter overrides the outbound rate limiter.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) {
		if l != nil {
			c.limiter = l
		}
	}
}

// NewClient creates a TMDB client.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.APIKey == "" {
		return nil, errors.New("tmdb api key required")
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		return nil, errors.New("tmdb base url required")
	}
	cfg.ImageBaseURL = strings.TrimRight(strings.TrimSpace(cfg.ImageBaseURL), "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RetryAttempts < 0 {
		cfg.RetryAttempts = 0
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(limit, burst),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SearchMovie searches TMDB for title.
func (c *Client) SearchMovie(ctx context.Context, title string) (*SearchResponse, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, &Failure{Op: "search", Err: errors.New("title must not be empty")}
	}
	params := url.Values{}
	params.Set("query", title)

	var payload SearchResponse
	if err := c.get(ctx, "search", title, "/search/movie", params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// GetMovieDetails fetches the TMDB movie with the given id.
func (c *Client) GetMovieDetails(ctx context.Context, id int) (*MovieDetails, error) {
	var payload MovieDetails
	if err := c.get(ctx, "details", strconv.Itoa(id), "/movie/"+strconv.Itoa(id), url.Values{}, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Lookup searches for title and fetches the details of the first match.
// It returns ErrNotFound when the search has no results.
func (c *Client) Lookup(ctx context.Context, title string) (*Details, error) {
	search, err := c.SearchMovie(ctx, title)
	if err != nil {
		return nil, err
	}
	if len(search.Results) == 0 {
		return nil, ErrNotFound
	}

	movie, err := c.GetMovieDetails(ctx, search.Results[0].ID)
	if err != nil {
		return nil, err
	}
	return &Details{
		TMDBID:      movie.ID,
		Title:       movie.Title,
		Overview:    movie.Overview,
		ReleaseDate: movie.ReleaseDate,
		Rating:      movie.VoteAverage,
		PosterPath:  movie.PosterPath,
		PosterURL:   c.PosterURL(movie.PosterPath),
		Link:        MovieLink(movie.ID),
	}, nil
}

// PosterURL joins the image base URL and a poster path. It returns an
// empty string when path is empty.
func (c *Client) PosterURL(path string) string {
	path = strings.TrimLeft(strings.TrimSpace(path), "/")
	if path == "" {
		return ""
	}
	return c.cfg.ImageBaseURL + "/" + path
}

// MovieLink returns the public TMDB page of a movie.
func MovieLink(id int) string {
	if id <= 0 {
		return ""
	}
	return "https://www.themoviedb.org/movie/" + strconv.Itoa(id)
}

// get performs one API call with rate limiting and retries and decodes the
// JSON body into out. A 404 maps to ErrNotFound; every other error is a
// *Failure.
func (c *Client) get(ctx context.Context, op, subject, path string, params url.Values, out any) error {
	params.Set("api_key", c.cfg.APIKey)
	if c.cfg.Language != "" {
		params.Set("language", c.cfg.Language)
	}
	reqURL := c.cfg.BaseURL + path + "?" + params.Encode()
	logger := logging.Ctx(ctx)

	var lastErr error
	for attempt := 0; attempt <= c.cfg.RetryAttempts; attempt++ {
		if attempt > 0 {
			delay := c.cfg.RetryDelay * time.Duration(1<<(attempt-1))
			logger.Debug().
				Str("op", op).
				Int("attempt", attempt).
				Dur("delay", delay).
				Err(lastErr).
				Msg("Retrying TMDB request")
			select {
			case <-ctx.Done():
				return &Failure{Op: op, Title: subject, Err: ctx.Err()}
			case <-time.After(delay):
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return &Failure{Op: op, Title: subject, Err: fmt.Errorf("rate limiter: %w", err)}
		}

		retry, err := c.do(ctx, op, subject, reqURL, out)
		if err == nil {
			return nil
		}
		if !retry {
			return err
		}
		lastErr = err
	}
	return lastErr
}

// do executes a single request. retry reports whether a failure is
// transient.
func (c *Client) do(ctx context.Context, op, subject, reqURL string, out any) (retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return false, &Failure{Op: op, Title: subject, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(start)
	if err != nil {
		// Context cancellation is final; network errors are transient.
		return ctx.Err() == nil, &Failure{Op: op, Title: subject, Err: fmt.Errorf("execute request (latency=%v): %w", latency, err)}
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return false, ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return true, &Failure{Op: op, Title: subject, Status: resp.StatusCode, Err: errors.New(readBodyForError(resp.Body))}
	default:
		return false, &Failure{Op: op, Title: subject, Status: resp.StatusCode, Err: errors.New(readBodyForError(resp.Body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, &Failure{Op: op, Title: subject, Err: fmt.Errorf("decode tmdb response: %w", err)}
	}
	return false, nil
}

// readBodyForError reads at most maxErrorBodySize bytes of r.
func readBodyForError(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return "(failed to read response body)"
	}
	s := strings.TrimSpace(string(body))
	if s == "" {
		return "empty response body"
	}
	return s
}
