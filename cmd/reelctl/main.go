// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Command reelctl queries the movie catalog and recommendation index from
// the command line, without running the HTTP server.
//
//	reelctl recommend "The Dark Knight Rises" -k 10
//	reelctl filter --genre drama --min-rating 7 --sort rating
//	reelctl stats
//	reelctl details Avatar
//	reelctl details            # interactive: one title per line
//
// Every command accepts --config and --json. Configuration is layered
// exactly like the server's.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
