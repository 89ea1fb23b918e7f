// GameGate - Casual Games Catalog and Recommendation Service
// Copyright 2026 GameGate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamegate/gamegate

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gamegate/gamegate/internal/config"
	"github.com/gamegate/gamegate/internal/middleware"
)

// Router wires handlers and middleware into the Chi route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil security config falls back to the
// locked-down defaults.
func NewRouter(handler *Handler, security *config.SecurityConfig) *Router {
	mwConfig := DefaultChiMiddlewareConfig()
	if security != nil {
		mwConfig.CORSAllowedOrigins = security.CORSOrigins
		if security.RateLimitRequests > 0 {
			mwConfig.RateLimitRequests = security.RateLimitRequests
		}
		if security.RateLimitWindow > 0 {
			mwConfig.RateLimitWindow = security.RateLimitWindow
		}
		mwConfig.RateLimitDisabled = security.RateLimitDisabled
	}

	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(mwConfig),
	}
}

// chiMiddlewareAdapter adapts http.HandlerFunc middleware to Chi's
// func(http.Handler) http.Handler so it can be used with r.Use().
func chiMiddlewareAdapter(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures the full HTTP route tree.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight works everywhere

	// Health endpoints: permissive rate limiting for monitoring tools.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/", router.handler.Health)
	})

	// Catalog endpoints: read-only, cached, generous budget.
	r.Route("/api/v1/games", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitCatalog())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddlewareAdapter(middleware.PrometheusMetrics))
		r.Use(chiMiddlewareAdapter(middleware.Compression))

		r.Get("/", router.handler.ListGames)
		r.Get("/popular/top", router.handler.PopularTop)
		r.Get("/quick", router.handler.QuickGames)
		r.Get("/quick/{minutes}", router.handler.QuickGames)
		r.Get("/scenario/{scenario}", router.handler.GamesByScenario)
		r.Get("/search/{query}", router.handler.SearchGames)
		r.Get("/stats/categories", router.handler.CategoryStats)
		r.Get("/tags/cloud", router.handler.TagCloud)
		r.Get("/categories", router.handler.Categories)
		r.Get("/{id}", router.handler.GameByID)
	})

	// User endpoints: session reads and mutations.
	r.Route("/api/v1/user", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Use(chiMiddlewareAdapter(middleware.PrometheusMetrics))
		r.Use(chiMiddlewareAdapter(middleware.Compression))

		r.With(router.chiMiddleware.RateLimit()).Get("/profile", router.handler.Profile)
		r.With(router.chiMiddleware.RateLimit()).Get("/recommendations", router.handler.Recommendations)
		r.With(router.chiMiddleware.RateLimit()).Get("/stats", router.handler.UserStats)

		r.With(router.chiMiddleware.RateLimitWrite()).Post("/preferences", router.handler.UpdatePreferences)
		r.With(router.chiMiddleware.RateLimitWrite()).Post("/play-game", router.handler.PlayGame)
		r.With(router.chiMiddleware.RateLimitWrite()).Delete("/clear", router.handler.ClearUser)
	})

	// Prometheus scrape endpoint, outside the versioned API surface.
	r.Handle("/metrics", promhttp.Handler())

	return r
}
