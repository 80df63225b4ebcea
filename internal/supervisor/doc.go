// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package supervisor provides process supervision for reelmatch using suture v4.

The supervisor tree keeps the long-running services of the server alive:

	RootSupervisor ("reelmatch")
	├── DataSupervisor ("data-layer")
	│   └── CacheGCService (lookup cache expiry and reclamation)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

The catalog and recommendation index are built before the tree starts and
are immutable, so they need no supervision. A failing cache GC restarts in
the data layer without touching the HTTP server.

Crashed services restart with suture's backoff; context cancellation shuts
the tree down in order. Supervisor events are logged through sutureslog on
the slog adapter of the logging package.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddDataService(services.NewCacheGCService(store, time.Minute))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	err = tree.Serve(ctx)
*/
package supervisor
