// GameGate - Casual Games Catalog and Recommendation Service
// Copyright 2026 GameGate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamegate/gamegate

package api

import (
	"math"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/gamegate/gamegate/internal/catalog"
	"github.com/gamegate/gamegate/internal/logging"
	"github.com/gamegate/gamegate/internal/metrics"
	"github.com/gamegate/gamegate/internal/models"
	"github.com/gamegate/gamegate/internal/recommend"
	"github.com/gamegate/gamegate/internal/session"
)

// profileResponse wraps the session profile for the profile endpoint.
type profileResponse struct {
	Success   bool                   `json:"success"`
	User      *models.SessionProfile `json:"user"`
	SessionID string                 `json:"sessionId"`
}

// Profile returns the caller's session profile, minting a fresh session
// when no X-Session-Id header or sessionId query parameter is present.
//
// Method: GET
// Path: /api/v1/user/profile
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	start := time.Now()

	profile, created, err := h.sessions.GetOrCreate(r.Context(), sessionIDFrom(r))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if created {
		metrics.SessionsCreated.Inc()
		logging.Ctx(r.Context()).Debug().Str("session_id", profile.ID).Msg("Session created")
	}

	respondSuccess(w, profileResponse{
		Success:   true,
		User:      profile,
		SessionID: profile.ID,
	}, start, false)
}

// preferencesResponse confirms a preferences update.
type preferencesResponse struct {
	Success     bool               `json:"success"`
	Preferences models.Preferences `json:"preferences"`
	Message     string             `json:"message"`
}

// UpdatePreferences merges the posted preference fields into the session
// profile. Out-of-range or unknown values are ignored rather than rejected.
//
// Method: POST
// Path: /api/v1/user/preferences
func (h *Handler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	start := time.Now()
	c := h.localeCatalog(r)

	var update session.PreferencesUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondError(w, http.StatusBadRequest, CodeValidationError, "Invalid request body", err)
		return
	}
	if apiErr := validateRequest(&update); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	profile, created, err := h.sessions.GetOrCreate(r.Context(), sessionIDFrom(r))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if created {
		metrics.SessionsCreated.Inc()
	}

	profile, err = h.sessions.UpdatePreferences(r.Context(), profile.ID, update)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	w.Header().Set("X-Session-Id", profile.ID)
	respondSuccess(w, preferencesResponse{
		Success:     true,
		Preferences: profile.Preferences,
		Message:     localizef(c.Locale(), "偏好设置已更新", "Preferences updated"),
	}, start, false)
}

// playGameResponse confirms a recorded play.
type playGameResponse struct {
	Success bool         `json:"success"`
	Stats   models.Stats `json:"stats"`
	Message string       `json:"message"`
}

// PlayGame records one finished round against the session profile and
// reports the updated stats, including any freshly unlocked achievements.
//
// Method: POST
// Path: /api/v1/user/play-game
func (h *Handler) PlayGame(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	start := time.Now()
	c := h.localeCatalog(r)

	var req session.PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, CodeValidationError, "Invalid request body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	profile, created, err := h.sessions.GetOrCreate(r.Context(), sessionIDFrom(r))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if created {
		metrics.SessionsCreated.Inc()
	}
	before := profile.Stats.Achievements

	profile, err = h.sessions.RecordPlay(r.Context(), profile.ID, req)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	metrics.PlaysRecorded.Inc()
	metrics.RecordAchievements(before, profile.Stats.Achievements)

	w.Header().Set("X-Session-Id", profile.ID)
	respondSuccess(w, playGameResponse{
		Success: true,
		Stats:   profile.Stats,
		Message: localizef(c.Locale(),
			"游戏记录已保存，总游戏时间: %d分钟",
			"Play recorded, total play time: %d minutes",
			profile.Stats.TotalPlayTime),
	}, start, false)
}

// recommendationBasis echoes the preferences the scorer ranked against.
type recommendationBasis struct {
	FavoriteCategories []string `json:"favoriteCategories"`
	PlayTimePreference int      `json:"playTimePreference"`
	Difficulty         string   `json:"difficulty"`
	Scenario           string   `json:"scenario"`
}

// recommendationsResponse is the payload for personalized recommendations.
type recommendationsResponse struct {
	Recommendations  []models.RecommendedGame `json:"recommendations"`
	BasedOn          recommendationBasis      `json:"basedOn"`
	TotalGamesPlayed int                      `json:"totalGamesPlayed"`
}

// Recommendations ranks the locale's catalog against the session profile
// and caches the head of the list on the profile.
//
// Method: GET
// Path: /api/v1/user/recommendations
// Query: limit (default 12), locale
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	start := time.Now()
	c := h.localeCatalog(r)

	profile, created, err := h.sessions.GetOrCreate(r.Context(), sessionIDFrom(r))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if created {
		metrics.SessionsCreated.Inc()
	}

	limit := getIntParam(r, "limit", h.config.Recommend.DefaultLimit)
	recs := h.scorer.ForProfile(c, profile, limit)

	if err := h.sessions.SaveRecommendations(r.Context(), profile.ID, recs, recommend.CachedLimit); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Failed to cache recommendations on profile")
	}
	metrics.RecommendationsServed.Inc()

	w.Header().Set("X-Session-Id", profile.ID)
	respondSuccess(w, recommendationsResponse{
		Recommendations: recs,
		BasedOn: recommendationBasis{
			FavoriteCategories: profile.Preferences.FavoriteCategories,
			PlayTimePreference: profile.Preferences.PlayTimePreference,
			Difficulty:         profile.Preferences.Difficulty,
			Scenario:           profile.Preferences.Scenario,
		},
		TotalGamesPlayed: profile.Stats.GamesPlayed,
	}, start, false)
}

// userStatsPayload extends the raw stats with derived fields. The outer
// Achievements field shadows the embedded string slice with the decorated
// form.
type userStatsPayload struct {
	models.Stats
	AvgGameTime        float64               `json:"avgGameTime"`
	MostPlayedCategory string                `json:"mostPlayedCategory"`
	CurrentStreak      int                   `json:"currentStreak"`
	Achievements       []session.Achievement `json:"achievements"`
}

// userStatsResponse is the payload for the user stats endpoint.
type userStatsResponse struct {
	Success        bool                `json:"success"`
	Stats          userStatsPayload    `json:"stats"`
	Preferences    models.Preferences  `json:"preferences"`
	RecentActivity []models.PlayRecord `json:"recentActivity"`
}

// Number of recent plays echoed in the stats payload.
const recentActivityLimit = 5

// UserStats returns play statistics with derived aggregates and the
// decorated achievement list.
//
// Method: GET
// Path: /api/v1/user/stats
func (h *Handler) UserStats(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	start := time.Now()
	c := h.localeCatalog(r)

	profile, err := h.sessions.Get(r.Context(), sessionIDFrom(r))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	avg := 0.0
	if profile.Stats.GamesPlayed > 0 {
		avg = math.Round(float64(profile.Stats.TotalPlayTime)/float64(profile.Stats.GamesPlayed)*10) / 10
	}

	decorated := make([]session.Achievement, 0, len(profile.Stats.Achievements))
	for _, id := range profile.Stats.Achievements {
		decorated = append(decorated, session.Achievement{
			ID:          id,
			Name:        session.AchievementName(id, c.Locale()),
			Description: session.AchievementDescription(id, c.Locale()),
			UnlockedAt:  profile.Stats.LastPlayTime,
		})
	}

	recent := profile.RecentGames
	if len(recent) > recentActivityLimit {
		recent = recent[:recentActivityLimit]
	}

	respondSuccess(w, userStatsResponse{
		Success: true,
		Stats: userStatsPayload{
			Stats:              profile.Stats,
			AvgGameTime:        avg,
			MostPlayedCategory: h.mostPlayedCategory(c, profile),
			CurrentStreak:      profile.Stats.PlayStreak,
			Achievements:       decorated,
		},
		Preferences:    profile.Preferences,
		RecentActivity: recent,
	}, start, false)
}

// mostPlayedCategory aggregates play time per category over the recent
// history; ties go to the category seen earlier in the history. Falls back
// to the first favorite category, then a locale default, when no history
// resolves to a catalog entry.
func (h *Handler) mostPlayedCategory(c *catalog.Catalog, profile *models.SessionProfile) string {
	playTime := make(map[string]int)
	var order []string
	for _, record := range profile.RecentGames {
		game, err := c.ByID(record.GameID)
		if err != nil {
			continue
		}
		if _, seen := playTime[game.Category]; !seen {
			order = append(order, game.Category)
		}
		playTime[game.Category] += record.PlayTime
	}

	best, bestTime := "", 0
	for _, category := range order {
		if total := playTime[category]; total > bestTime {
			best, bestTime = category, total
		}
	}
	if best != "" {
		return best
	}
	if len(profile.Preferences.FavoriteCategories) > 0 {
		return profile.Preferences.FavoriteCategories[0]
	}
	return localizef(c.Locale(), "益智", "Puzzle")
}

// clearResponse confirms session deletion.
type clearResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ClearUser deletes the session profile. Requires an existing session.
//
// Method: DELETE
// Path: /api/v1/user/clear
func (h *Handler) ClearUser(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodDelete) {
		return
	}
	start := time.Now()
	c := h.localeCatalog(r)

	sessionID := sessionIDFrom(r)
	if _, err := h.sessions.Get(r.Context(), sessionID); err != nil {
		respondDomainError(w, err)
		return
	}
	if err := h.sessions.Clear(r.Context(), sessionID); err != nil {
		respondDomainError(w, err)
		return
	}

	respondSuccess(w, clearResponse{
		Success: true,
		Message: localizef(c.Locale(), "用户数据已清除", "User data cleared"),
	}, start, false)
}
