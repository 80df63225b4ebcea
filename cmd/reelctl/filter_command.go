// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/reelmatch/internal/catalog"
)

func newFilterCommand(ctx *commandContext) *cobra.Command {
	var criteria catalog.Criteria
	var sortBy string
	minRating := -1.0

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter the catalog by year, genre, rating and title",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, ok := catalog.ParseSortKey(sortBy)
			if !ok {
				return fmt.Errorf("unknown sort %q (use rating or revenue)", sortBy)
			}
			a, err := ctx.ensureApp(cmd)
			if err != nil {
				return err
			}

			criteria.SortBy = key
			criteria.MinRating = a.Config.Filter.DefaultMinRating
			if minRating >= 0 {
				criteria.MinRating = minRating
			}
			if criteria.Limit <= 0 {
				criteria.Limit = a.Config.Filter.DefaultLimit
			}

			movies := a.Catalog.Filter(criteria)
			if ctx.jsonOutput() {
				return writeJSON(cmd, movies)
			}
			if len(movies) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No movies match")
				return nil
			}
			return printMovies(cmd, movies)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&criteria.Year, "year", "", "Release year (YYYY)")
	flags.StringVar(&criteria.Genre, "genre", "", "Genre, case and spaces ignored")
	flags.Float64Var(&minRating, "min-rating", -1, "Minimum rating 0-10 (default from config)")
	flags.StringVarP(&criteria.Query, "query", "q", "", "Case-insensitive title substring")
	flags.StringVar(&sortBy, "sort", "", "Sort descending by rating or revenue")
	flags.IntVar(&criteria.Limit, "limit", 0, "Maximum rows (default from config)")
	return cmd
}

func printMovies(cmd *cobra.Command, movies []catalog.Movie) error {
	headers := []string{"ID", "Title", "Year", "Rating", "Revenue", "Genres"}
	aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignLeft}

	rows := make([][]string, 0, len(movies))
	for _, m := range movies {
		rows = append(rows, []string{
			strconv.Itoa(m.ID),
			m.Title,
			m.ReleaseYear,
			strconv.FormatFloat(m.Rating, 'f', 1, 64),
			strconv.FormatInt(m.Revenue, 10),
			strings.Join(m.Genres, ", "),
		})
	}
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, renderTable(w, headers, rows, aligns))
	return nil
}
