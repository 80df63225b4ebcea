// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

type statsOutput struct {
	Load   catalog.LoadStats    `json:"load"`
	Index  recommend.IndexStats `json:"index"`
	Genres int                  `json:"genres"`
	Years  int                  `json:"years"`
}

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show catalog load and index statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.ensureApp(cmd)
			if err != nil {
				return err
			}
			out := statsOutput{
				Load:   a.LoadStats,
				Index:  a.Engine.Stats(),
				Genres: len(a.Catalog.Genres()),
				Years:  len(a.Catalog.Years()),
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, out)
			}

			rows := [][]string{
				{"Movie rows", strconv.Itoa(out.Load.MovieRows)},
				{"Credit rows", strconv.Itoa(out.Load.CreditRows)},
				{"Joined rows", strconv.Itoa(out.Load.JoinedRows)},
				{"Dropped rows", strconv.Itoa(out.Load.Dropped)},
				{"Movies indexed", strconv.Itoa(out.Index.Movies)},
				{"Vocabulary", fmt.Sprintf("%d / %d", out.Index.VocabularySize, out.Index.MaxFeatures)},
				{"Empty tag vectors", strconv.Itoa(out.Index.ZeroVectors)},
				{"Genres", strconv.Itoa(out.Genres)},
				{"Years", strconv.Itoa(out.Years)},
				{"Load time", out.Load.Duration.Round(time.Millisecond).String()},
				{"Vectorize time", out.Index.VectorizeTime.Round(time.Millisecond).String()},
				{"Similarity time", out.Index.SimilarityTime.Round(time.Millisecond).String()},
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, renderTable(w, []string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}
}
