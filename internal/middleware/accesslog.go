// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/reelmatch/internal/logging"
)

// AccessLog logs each request at debug level and requests slower than
// slowThreshold at warn. A zero threshold disables slow request warnings.
func AccessLog(slowThreshold time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapper := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapper, r)

			duration := time.Since(start)
			logger := logging.Ctx(r.Context())
			event := logger.Debug()
			msg := "Request completed"
			if slowThreshold > 0 && duration > slowThreshold {
				event = logger.Warn()
				msg = "Slow request detected"
			}
			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("route", RoutePattern(r)).
				Int("status", wrapper.statusCode).
				Dur("duration", duration).
				Str("remote_addr", r.RemoteAddr).
				Msg(msg)
		})
	}
}
