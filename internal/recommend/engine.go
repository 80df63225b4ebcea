// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// ErrEmptyCatalog is returned when the engine is built over no movies.
var ErrEmptyCatalog = errors.New("catalog is empty")

// ScoredMovie is one ranked recommendation.
type ScoredMovie struct {
	Index int     `json:"-"`
	ID    int     `json:"id"`
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

// IndexStats describes the built index.
type IndexStats struct {
	Movies         int           `json:"movies"`
	VocabularySize int           `json:"vocabulary_size"`
	ZeroVectors    int           `json:"zero_vectors"`
	MaxFeatures    int           `json:"max_features"`
	Workers        int           `json:"workers"`
	VectorizeTime  time.Duration `json:"vectorize_time"`
	SimilarityTime time.Duration `json:"similarity_time"`
	BuiltAt        time.Time     `json:"built_at"`
	Requests       int64         `json:"requests"`
	UnknownTitles  int64         `json:"unknown_titles"`
}

// Engine answers recommendation queries over a static catalog.
// It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	catalog    *catalog.Catalog
	vocabulary *Vocabulary
	counts     *CountMatrix
	similarity *SimilarityMatrix
	stats      IndexStats

	requestCount atomic.Int64
	unknownCount atomic.Int64
}

// NewEngine composes tag documents for every movie in cat, fits the
// vocabulary and builds the similarity matrix. The build is synchronous.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cat *catalog.Catalog, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cat == nil || cat.Len() == 0 {
		return nil, ErrEmptyCatalog
	}

	e := &Engine{
		config:  cfg,
		logger:  logger.With().Str("component", "recommend").Logger(),
		catalog: cat,
	}

	start := time.Now()
	docs := make([]string, cat.Len())
	for i := range docs {
		m := cat.At(i)
		docs[i] = ComposeTags(&m)
	}
	e.vocabulary, e.counts = Fit(docs, cfg.MaxFeatures)
	vectorizeTime := time.Since(start)
	metrics.RecordIndexStage("vectorize", vectorizeTime)

	start = time.Now()
	workers := cfg.workers()
	e.similarity = NewSimilarityMatrix(e.counts, workers)
	similarityTime := time.Since(start)
	metrics.RecordIndexStage("similarity", similarityTime)
	metrics.SetVocabularySize(e.vocabulary.Len())

	zero := 0
	for i := 0; i < e.counts.Rows(); i++ {
		if e.counts.Row(i).IsZero() {
			zero++
		}
	}
	if zero > 0 {
		e.logger.Warn().Int("zero_vectors", zero).Msg("movies without vocabulary terms will never be recommended")
	}

	e.stats = IndexStats{
		Movies:         cat.Len(),
		VocabularySize: e.vocabulary.Len(),
		ZeroVectors:    zero,
		MaxFeatures:    cfg.MaxFeatures,
		Workers:        workers,
		VectorizeTime:  vectorizeTime,
		SimilarityTime: similarityTime,
		BuiltAt:        time.Now(),
	}

	e.logger.Info().
		Int("movies", e.stats.Movies).
		Int("vocabulary", e.stats.VocabularySize).
		Int("workers", workers).
		Dur("vectorize", vectorizeTime).
		Dur("similarity", similarityTime).
		Msg("recommendation index built")

	return e, nil
}

// Recommend returns up to k titles most similar to title, best first.
// An unknown title yields an empty slice.
func (e *Engine) Recommend(title string, k int) []string {
	scored, _ := e.Similar(title, k)
	out := make([]string, len(scored))
	for i, s := range scored {
		out[i] = s.Title
	}
	return out
}

// Similar ranks the catalog against the first movie titled title and
// returns the top k, excluding that movie's own row. found is false when no
// movie has the title. k <= 0 selects the configured default; k is capped at
// MaxK. Equal scores keep catalog order.
func (e *Engine) Similar(title string, k int) (results []ScoredMovie, found bool) {
	start := time.Now()
	e.requestCount.Add(1)
	defer func() {
		metrics.RecordRecommendation(found, time.Since(start))
	}()

	idx, ok := e.catalog.IndexOf(title)
	if !ok {
		e.unknownCount.Add(1)
		e.logger.Debug().Str("title", title).Msg("unknown title")
		return []ScoredMovie{}, false
	}
	return e.rank(idx, e.config.clampK(k)), true
}

// SimilarByIndex ranks the catalog against row idx. It returns nil when idx
// is out of range.
func (e *Engine) SimilarByIndex(idx, k int) []ScoredMovie {
	if idx < 0 || idx >= e.catalog.Len() {
		return nil
	}
	return e.rank(idx, e.config.clampK(k))
}

// rank selects the k best rows of the similarity row of idx. Insertion only
// displaces strictly lower scores, so ties keep catalog order.
func (e *Engine) rank(idx, k int) []ScoredMovie {
	row := e.similarity.Row(idx)
	if k > len(row)-1 {
		k = len(row) - 1
	}

	type cand struct {
		index int
		score float32
	}
	top := make([]cand, 0, k+1)
	for j, score := range row {
		if j == idx || k == 0 {
			continue
		}
		if len(top) == k && score <= top[k-1].score {
			continue
		}
		pos := len(top)
		for pos > 0 && top[pos-1].score < score {
			pos--
		}
		top = append(top, cand{})
		copy(top[pos+1:], top[pos:])
		top[pos] = cand{index: j, score: score}
		if len(top) > k {
			top = top[:k]
		}
	}

	out := make([]ScoredMovie, len(top))
	for i, c := range top {
		m := e.catalog.At(c.index)
		out[i] = ScoredMovie{
			Index: c.index,
			ID:    m.ID,
			Title: m.Title,
			Score: float64(c.score),
		}
	}
	return out
}

// Score returns the similarity of catalog rows i and j.
func (e *Engine) Score(i, j int) float64 {
	return float64(e.similarity.At(i, j))
}

// Catalog returns the catalog the index was built over.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Vocabulary returns the frozen vocabulary.
func (e *Engine) Vocabulary() *Vocabulary {
	return e.vocabulary
}

// Counts returns the term-count matrix.
func (e *Engine) Counts() *CountMatrix {
	return e.counts
}

// Stats returns the index statistics and query counters.
func (e *Engine) Stats() IndexStats {
	s := e.stats
	s.Requests = e.requestCount.Load()
	s.UnknownTitles = e.unknownCount.Load()
	return s
}
