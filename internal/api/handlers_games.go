// GameGate - Casual Games Catalog and Recommendation Service
// Copyright 2026 GameGate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamegate/gamegate

package api

import (
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gamegate/gamegate/internal/metrics"
	"github.com/gamegate/gamegate/internal/models"
	"github.com/gamegate/gamegate/internal/query"
)

// ListGames returns the filtered, sorted, paginated catalog.
//
// Method: GET
// Path: /api/v1/games
// Query: scenario, category, difficulty, maxTime, search, sortBy, page, limit, locale
func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	start := time.Now()
	c := h.localeCatalog(r)

	q := r.URL.Query()
	req := query.ListRequest{
		Filters: query.Filters{
			Scenario:   q.Get("scenario"),
			Category:   q.Get("category"),
			Difficulty: q.Get("difficulty"),
			Search:     q.Get("search"),
			SortBy:     q.Get("sortBy"),
			MaxTime:    getIntParam(r, "maxTime", 0),
		},
		Page:  getIntParam(r, "page", query.DefaultPage),
		Limit: getIntParam(r, "limit", h.config.API.DefaultPageSize),
	}
	if req.Limit > h.config.API.MaxPageSize {
		req.Limit = h.config.API.MaxPageSize
	}

	result, err := query.List(c, req)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	metrics.RecordCatalogQuery("list", c.Locale(), time.Since(start))

	respondSuccess(w, result, start, false)
}

// GameByID returns a single catalog entry.
//
// Method: GET
// Path: /api/v1/games/{id}
func (h *Handler) GameByID(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	start := time.Now()
	c := h.localeCatalog(r)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, CodeNotFound, "The requested game does not exist", nil)
		return
	}

	game, err := c.ByID(id)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondSuccess(w, game, start, false)
}

// scenarioGamesResponse is the payload for scenario recommendations.
type scenarioGamesResponse struct {
	Scenario string                   `json:"scenario"`
	Games    []models.RecommendedGame `json:"games"`
	Count    int                      `json:"count"`
}

// GamesByScenario returns games curated for a play scenario.
//
// Method: GET
// Path: /api/v1/games/scenario/{scenario}
// Query: limit (default 6), locale
func (h *Handler) GamesByScenario(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	start := time.Now()
	c := h.localeCatalog(r)

	scenario := chi.URLParam(r, "scenario")
	limit := getIntParam(r, "limit", query.DefaultScenarioLimit)

	games, err := query.ByScenario(c, scenario, limit)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	metrics.RecordCatalogQuery("scenario", c.Locale(), time.Since(start))

	respondSuccess(w, scenarioGamesResponse{
		Scenario: scenario,
		Games:    games,
		Count:    len(games),
	}, start, false)
}

// quickGamesResponse is the payload for the quick-games endpoint.
type quickGamesResponse struct {
	MaxTime int           `json:"maxTime"`
	Games   []models.Game `json:"games"`
	Count   int           `json:"count"`
	Message string        `json:"message"`
}

// QuickGames returns games playable within a time budget, shortest first.
//
// Method: GET
// Path: /api/v1/games/quick/{minutes} and /api/v1/games/quick
func (h *Handler) QuickGames(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	start := time.Now()
	c := h.localeCatalog(r)

	minutes := query.DefaultQuickMinutes
	if raw := chi.URLParam(r, "minutes"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, CodeInvalidTimeRange, "Play time must be between 1 and 30 minutes", nil)
			return
		}
		minutes = parsed
	}

	games, err := query.Quick(c, minutes)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondSuccess(w, quickGamesResponse{
		MaxTime: minutes,
		Games:   games,
		Count:   len(games),
		Message: localizef(c.Locale(), "%d分钟内可完成的游戏", "Games you can finish in %d minutes", minutes),
	}, start, false)
}

// Popularity period filters.
const (
	periodAll   = "all"
	periodToday = "today"
	periodWeek  = "week"

	popularTodayLimit = 5
	popularWeekLimit  = 8
)

// popularGamesResponse is the payload for the popularity ranking.
type popularGamesResponse struct {
	Period     string      `json:"period"`
	Games      interface{} `json:"games"`
	UpdateTime time.Time   `json:"updateTime"`
}

// PopularTop returns the popularity ranking. The today period decorates the
// top entries with synthetic trend values; week narrows the list.
//
// Method: GET
// Path: /api/v1/games/popular/top
// Query: limit (default 10), period=all|today|week
func (h *Handler) PopularTop(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	start := time.Now()
	c := h.localeCatalog(r)

	limit := getIntParam(r, "limit", query.DefaultPopularLimit)
	period := r.URL.Query().Get("period")
	if period == "" {
		period = periodAll
	}

	games := query.Popular(c, limit)

	var payload interface{}
	switch period {
	case periodToday:
		if len(games) > popularTodayLimit {
			games = games[:popularTodayLimit]
		}
		trending := make([]models.TrendingGame, len(games))
		for i, g := range games {
			trending[i] = models.TrendingGame{
				Game:       g,
				Trend:      "up",
				TrendValue: rand.Intn(50) + 10,
			}
		}
		payload = trending
	case periodWeek:
		if len(games) > popularWeekLimit {
			games = games[:popularWeekLimit]
		}
		payload = games
	default:
		payload = games
	}

	respondSuccess(w, popularGamesResponse{
		Period:     period,
		Games:      payload,
		UpdateTime: time.Now(),
	}, start, false)
}

// searchGamesResponse is the payload for catalog search.
type searchGamesResponse struct {
	Query       string        `json:"query"`
	Results     []models.Game `json:"results"`
	Count       int           `json:"count"`
	Suggestions []string      `json:"suggestions"`
}

// SearchGames matches the query against titles, descriptions and tags, and
// offers tag/category suggestions alongside.
//
// Method: GET
// Path: /api/v1/games/search/{query}
// Query: limit (default 10), locale
func (h *Handler) SearchGames(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	start := time.Now()
	c := h.localeCatalog(r)

	q := chi.URLParam(r, "query")
	limit := getIntParam(r, "limit", query.DefaultSearchLimit)

	results, err := query.Search(c, q, limit)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	metrics.RecordCatalogQuery("search", c.Locale(), time.Since(start))

	respondSuccess(w, searchGamesResponse{
		Query:       q,
		Results:     results,
		Count:       len(results),
		Suggestions: query.Suggestions(c, q),
	}, start, false)
}

// categoryStatsResponse is the payload for category aggregation.
type categoryStatsResponse struct {
	Categories      []models.CategoryStats `json:"categories"`
	TotalGames      int                    `json:"totalGames"`
	TotalCategories int                    `json:"totalCategories"`
}

// CategoryStats returns per-category aggregates. Results are served from
// the response cache when fresh.
//
// Method: GET
// Path: /api/v1/games/stats/categories
func (h *Handler) CategoryStats(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	start := time.Now()
	c := h.localeCatalog(r)

	cacheKey := "stats:categories:" + c.Locale()
	if cached, ok := h.cache.Get(cacheKey); ok {
		metrics.RecordCacheLookup(true)
		respondSuccess(w, cached, start, true)
		return
	}
	metrics.RecordCacheLookup(false)

	stats := query.CategoryStats(c)
	payload := categoryStatsResponse{
		Categories:      stats,
		TotalGames:      c.Len(),
		TotalCategories: len(stats),
	}
	h.cache.Set(cacheKey, payload)
	metrics.RecordCatalogQuery("category_stats", c.Locale(), time.Since(start))

	respondSuccess(w, payload, start, false)
}

// tagCloudResponse is the payload for the tag cloud endpoint.
type tagCloudResponse struct {
	Tags      []models.TagCloudEntry `json:"tags"`
	TotalTags int                    `json:"totalTags"`
}

// TagCloud returns the most frequent tags with layout weights. Results are
// served from the response cache when fresh.
//
// Method: GET
// Path: /api/v1/games/tags/cloud
func (h *Handler) TagCloud(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	start := time.Now()
	c := h.localeCatalog(r)

	cacheKey := "tags:cloud:" + c.Locale()
	if cached, ok := h.cache.Get(cacheKey); ok {
		metrics.RecordCacheLookup(true)
		respondSuccess(w, cached, start, true)
		return
	}
	metrics.RecordCacheLookup(false)

	entries, totalTags := query.TagCloud(c, query.DefaultTagCloudLimit)
	payload := tagCloudResponse{
		Tags:      entries,
		TotalTags: totalTags,
	}
	h.cache.Set(cacheKey, payload)

	respondSuccess(w, payload, start, false)
}

// categoriesResponse lists the distinct catalog categories.
type categoriesResponse struct {
	Categories []string `json:"categories"`
	Locale     string   `json:"locale"`
}

// Categories returns the distinct categories of the locale's catalog.
//
// Method: GET
// Path: /api/v1/games/categories
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	start := time.Now()
	c := h.localeCatalog(r)

	respondSuccess(w, categoriesResponse{
		Categories: c.Categories(),
		Locale:     c.Locale(),
	}, start, false)
}
