// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var opts globalOptions
	ctx := newCommandContext(&opts)

	rootCmd := &cobra.Command{
		Use:           "reelctl",
		Short:         "Query movie recommendations from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx.initLogging(cmd.ErrOrStderr())
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Configuration file path")
	flags.BoolVar(&opts.json, "json", false, "Write JSON instead of tables")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level written to stderr")

	rootCmd.AddCommand(newRecommendCommand(ctx))
	rootCmd.AddCommand(newFilterCommand(ctx))
	rootCmd.AddCommand(newStatsCommand(ctx))
	rootCmd.AddCommand(newDetailsCommand(ctx))

	return rootCmd
}
