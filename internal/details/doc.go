// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package details drives the "show details" flow for a single movie.

A Session is a two-state machine:

	Idle --Request(title)--> DetailsRequested(title) --Render/Cancel--> Idle

Request records the selected title. Render resolves the title through a
lookup.Resolver, merges in what the local catalog knows about the movie and
returns a Panel, leaving the session Idle again. Any transition not listed
above returns ErrInvalidTransition and leaves the state untouched.

The HTTP details endpoint runs one full cycle per request with Show. The
reelctl CLI keeps a Session across an interactive prompt.
*/
package details
