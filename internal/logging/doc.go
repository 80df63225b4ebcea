// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package logging provides the process-wide zerolog logger for Reelmatch.
//
// Every package logs through the global logger so output format and level
// are controlled in one place:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Int("movies", n).Msg("Catalog loaded")
//	logging.Warn().Err(err).Str("title", title).Msg("Metadata lookup failed")
//
// Request-scoped logging picks up the request and correlation IDs stored in
// the context by the HTTP middleware:
//
//	logging.Ctx(r.Context()).Info().Msg("Recommendations served")
//
// Libraries that speak log/slog (the suture supervisor via sutureslog) are
// bridged through NewSlogLogger, which writes into the same zerolog sink.
//
// Environment variables (through internal/config):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include caller file and line (default: false)
//
// Always finish an event with Msg or Send; an unfinished event is dropped.
package logging
