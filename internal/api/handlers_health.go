// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// LiveStatus is the liveness probe payload.
type LiveStatus struct {
	Alive  bool    `json:"alive"`
	Uptime float64 `json:"uptime_seconds"`
}

// ReadyStatus is the readiness probe payload.
type ReadyStatus struct {
	Ready  bool                  `json:"ready"`
	Uptime float64               `json:"uptime_seconds"`
	Index  *recommend.IndexStats `json:"index,omitempty"`
}

// HealthLive handles liveness probe requests.
// Returns 200 OK if the process is alive, regardless of the index.
//
// @Summary Liveness probe
// @Description Returns 200 while the process is running, whether or not the index is built.
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse{data=LiveStatus} "Process is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(LiveStatus{
		Alive:  true,
		Uptime: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests.
// Returns 200 OK once the catalog is loaded and the index built, 503 before.
//
// @Summary Readiness probe
// @Description Returns 200 with index statistics once the catalog is loaded and the similarity index is built.
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse{data=ReadyStatus} "Index ready"
// @Failure 503 {object} APIResponse{data=ReadyStatus} "Index not built"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	status := ReadyStatus{
		Ready:  h.ready(),
		Uptime: time.Since(h.startTime).Seconds(),
	}
	if !status.Ready {
		NewResponseWriter(w, r).Status(http.StatusServiceUnavailable, status)
		return
	}
	stats := h.engine.Stats()
	status.Index = &stats
	NewResponseWriter(w, r).Success(status)
}
