// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/reelmatch/internal/details"
)

const detailsPrompt = "title> "

func newDetailsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "details [title]",
		Short: "Show details for a title, or read titles from stdin",
		Long: "Show TMDB details for a title. Without an argument, titles are read " +
			"one per line from stdin until EOF; an empty line is ignored.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.ensureApp(cmd)
			if err != nil {
				return err
			}
			session := details.NewSession(a.Catalog, a.Resolver)

			if len(args) == 1 {
				return showDetails(cmd, ctx, session, args[0])
			}

			in := cmd.InOrStdin()
			interactive := isTerminal(in)
			scanner := bufio.NewScanner(in)
			for {
				if interactive {
					fmt.Fprint(cmd.OutOrStdout(), detailsPrompt)
				}
				if !scanner.Scan() {
					break
				}
				title := strings.TrimSpace(scanner.Text())
				if title == "" {
					continue
				}
				if err := showDetails(cmd, ctx, session, title); err != nil {
					return err
				}
			}
			return scanner.Err()
		},
	}
}

// showDetails runs one request and render cycle of session.
func showDetails(cmd *cobra.Command, ctx *commandContext, session *details.Session, title string) error {
	if err := session.Request(title); err != nil {
		return err
	}
	panel, err := session.Render(cmd.Context())
	if err != nil {
		_ = session.Cancel()
		return err
	}

	if ctx.jsonOutput() {
		return writeJSON(cmd, panel)
	}
	printPanel(cmd.OutOrStdout(), panel)
	return nil
}

func printPanel(w io.Writer, panel details.Panel) {
	if !panel.Found {
		fmt.Fprintf(w, "No details for %q\n", panel.Title)
		return
	}

	d := panel.Details
	rows := [][]string{
		{"Title", panel.Title},
		{"Released", d.ReleaseDate},
		{"Rating", strconv.FormatFloat(d.Rating, 'f', 1, 64)},
		{"Overview", d.Overview},
		{"Poster", d.PosterURL},
	}
	if d.Link != "" {
		rows = append(rows, []string{"TMDB", d.Link})
	}
	if m := panel.Movie; m != nil {
		rows = append(rows,
			[]string{"Genres", strings.Join(m.Genres, ", ")},
			[]string{"Cast", strings.Join(m.Cast, ", ")},
			[]string{"Director", strings.Join(m.Directors, ", ")},
		)
	}
	fmt.Fprintln(w, renderTable(w, []string{"Field", "Value"}, rows, nil))
}
