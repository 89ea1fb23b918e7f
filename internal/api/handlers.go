// GameGate - Casual Games Catalog and Recommendation Service
// Copyright 2026 GameGate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamegate/gamegate

// Package api provides the HTTP handlers and Chi routing for the service.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response envelope and parameter helpers
//   - handlers_games.go: catalog endpoints
//   - handlers_user.go: session profile endpoints
//   - handlers_health.go: health endpoints
package api

import (
	"time"

	"github.com/gamegate/gamegate/internal/cache"
	"github.com/gamegate/gamegate/internal/catalog"
	"github.com/gamegate/gamegate/internal/config"
	"github.com/gamegate/gamegate/internal/logging"
	"github.com/gamegate/gamegate/internal/recommend"
	"github.com/gamegate/gamegate/internal/session"
)

// Handler carries the dependencies for all API endpoints.
type Handler struct {
	catalogs  *catalog.Store
	sessions  *session.Manager
	scorer    *recommend.Scorer
	config    *config.Config
	cache     *cache.Cache
	startTime time.Time
}

// NewHandler wires the handler with its dependencies. The response cache
// holds expensive aggregations (category stats, tag cloud) with the
// configured TTL.
func NewHandler(catalogs *catalog.Store, sessions *session.Manager, scorer *recommend.Scorer, cfg *config.Config) *Handler {
	ttl := cfg.API.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &Handler{
		catalogs:  catalogs,
		sessions:  sessions,
		scorer:    scorer,
		config:    cfg,
		cache:     cache.New(ttl),
		startTime: time.Now(),
	}
}

// ClearCache drops every cached aggregation; the next request recomputes.
func (h *Handler) ClearCache() {
	if h.cache != nil {
		h.cache.Clear()
		logging.Info().Msg("Response cache cleared")
	}
}

// Close stops the response cache's background sweeper.
func (h *Handler) Close() {
	if h.cache != nil {
		h.cache.Close()
	}
}
