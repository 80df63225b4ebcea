// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tomtom215/reelmatch/internal/lookup"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

type recommendation struct {
	Rank   int             `json:"rank"`
	ID     int             `json:"id"`
	Title  string          `json:"title"`
	Score  float64         `json:"score"`
	Poster *lookup.Details `json:"poster,omitempty"`
}

type recommendOutput struct {
	Title           string           `json:"title"`
	Found           bool             `json:"found"`
	Recommendations []recommendation `json:"recommendations"`
}

func newRecommendCommand(ctx *commandContext) *cobra.Command {
	var k int
	var posters bool

	cmd := &cobra.Command{
		Use:   "recommend <title>",
		Short: "List the movies most similar to a title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.ensureApp(cmd)
			if err != nil {
				return err
			}

			title := args[0]
			scored, found := a.Engine.Similar(title, k)
			out := recommendOutput{
				Title:           title,
				Found:           found,
				Recommendations: toRecommendations(scored),
			}
			if posters && len(scored) > 0 {
				titles := make([]string, len(scored))
				for i, s := range scored {
					titles[i] = s.Title
				}
				resolved := a.Resolver.ResolveMany(cmd.Context(), titles)
				for i := range resolved {
					out.Recommendations[i].Poster = &resolved[i]
				}
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, out)
			}
			if !found {
				fmt.Fprintf(cmd.OutOrStdout(), "No movie titled %q in the catalog\n", title)
				return nil
			}
			return printRecommendations(cmd, out, posters)
		},
	}

	cmd.Flags().IntVarP(&k, "k", "k", 0, "Number of recommendations (default from config)")
	cmd.Flags().BoolVar(&posters, "posters", false, "Resolve poster URLs through TMDB")
	return cmd
}

func toRecommendations(scored []recommend.ScoredMovie) []recommendation {
	out := make([]recommendation, len(scored))
	for i, s := range scored {
		out[i] = recommendation{Rank: i + 1, ID: s.ID, Title: s.Title, Score: s.Score}
	}
	return out
}

func printRecommendations(cmd *cobra.Command, out recommendOutput, posters bool) error {
	headers := []string{"#", "Title", "ID", "Score"}
	aligns := []columnAlignment{alignRight, alignLeft, alignRight, alignRight}
	if posters {
		headers = append(headers, "Poster")
		aligns = append(aligns, alignLeft)
	}

	rows := make([][]string, 0, len(out.Recommendations))
	for _, r := range out.Recommendations {
		row := []string{
			strconv.Itoa(r.Rank),
			r.Title,
			strconv.Itoa(r.ID),
			strconv.FormatFloat(r.Score, 'f', 4, 64),
		}
		if posters && r.Poster != nil {
			row = append(row, r.Poster.PosterURL)
		}
		rows = append(rows, row)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Because you liked %s:\n", out.Title)
	fmt.Fprintln(w, renderTable(w, headers, rows, aligns))
	return nil
}
