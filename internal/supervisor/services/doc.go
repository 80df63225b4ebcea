// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package services provides suture.Service wrappers for the reelmatch server.

Each wrapper translates a component lifecycle into suture's context-aware
Serve(ctx) error and names itself through fmt.Stringer for supervisor logs.

HTTPServerService:
  - runs ListenAndServe of an *http.Server
  - drains connections with Shutdown when the context ends
  - returns startup failures so the supervisor can restart it

CacheGCService:
  - runs cache.Store.GC on a fixed interval
  - publishes the live entry count to the lookup cache gauge
  - tolerates GC errors; only a closed store stops it
*/
package services
