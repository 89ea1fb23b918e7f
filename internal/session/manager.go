// GameGate - Casual Games Catalog and Recommendation Service
// Copyright 2026 GameGate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamegate/gamegate

package session

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gamegate/gamegate/internal/catalog"
	"github.com/gamegate/gamegate/internal/models"
)

// PreferencesUpdate is a partial preferences change. Zero-valued fields are
// left untouched; unknown enum values are silently ignored so a sloppy
// client cannot corrupt a profile. The validate tags bound field sizes only;
// enum membership is the manager's job.
type PreferencesUpdate struct {
	Category   string `json:"category" validate:"omitempty,max=50"`
	PlayTime   int    `json:"playTime" validate:"omitempty,gte=0,lte=1440"`
	Difficulty string `json:"difficulty" validate:"omitempty,max=20"`
	Scenario   string `json:"scenario" validate:"omitempty,max=30"`
}

// PlayRequest records one finished game round. Absent gameId/playTime are
// the manager's ErrMissingField; present-but-out-of-domain values fail
// validation.
type PlayRequest struct {
	GameID    int      `json:"gameId" validate:"omitempty,gte=1"`
	PlayTime  int      `json:"playTime" validate:"omitempty,gte=1,lte=1440"` // minutes
	Completed bool     `json:"completed"`
	Rating    *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
}

// Play-time preference bounds (minutes).
const (
	minPlayTimePreference = 1
	maxPlayTimePreference = 30
)

// Manager coordinates profile reads and writes. Each mutation runs under a
// per-session lock so concurrent requests for the same session serialize
// while distinct sessions proceed in parallel.
type Manager struct {
	store    Store
	catalogs *catalog.Store

	mu    sync.Mutex
	locks map[string]*sync.Mutex

	// now is swappable in tests.
	now func() time.Time
}

// NewManager wraps the store with per-session locking. The catalog store is
// used to validate scenario preferences against the locale enums.
func NewManager(store Store, catalogs *catalog.Store) *Manager {
	return &Manager{
		store:    store,
		catalogs: catalogs,
		locks:    make(map[string]*sync.Mutex),
		now:      time.Now,
	}
}

// lockSession acquires the mutex for id, creating it on first use.
func (m *Manager) lockSession(id string) func() {
	m.mu.Lock()
	l, ok := m.locks[id]
	if !ok {
		l = &sync.Mutex{}
		m.locks[id] = l
	}
	m.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// forgetLock drops the lock entry for id. Unknown session IDs must not
// retain entries or attacker-chosen IDs grow the map without bound.
func (m *Manager) forgetLock(id string) {
	m.mu.Lock()
	delete(m.locks, id)
	m.mu.Unlock()
}

// GetOrCreate returns the profile for sessionID, minting a new session when
// the ID is empty. A non-empty ID that the store does not know yields
// ErrSessionExpired; the client must start over.
func (m *Manager) GetOrCreate(ctx context.Context, sessionID string) (*models.SessionProfile, bool, error) {
	if sessionID == "" {
		id := uuid.NewString()
		profile := models.NewSessionProfile(id, m.now())
		if err := m.store.Put(ctx, profile); err != nil {
			return nil, false, fmt.Errorf("create profile: %w", err)
		}
		return profile, true, nil
	}

	profile, err := m.store.Get(ctx, sessionID)
	if errors.Is(err, ErrProfileNotFound) {
		return nil, false, ErrSessionExpired
	}
	if err != nil {
		return nil, false, fmt.Errorf("load profile: %w", err)
	}
	return profile, false, nil
}

// Get returns the profile for an existing session, or ErrSessionExpired.
func (m *Manager) Get(ctx context.Context, sessionID string) (*models.SessionProfile, error) {
	if sessionID == "" {
		return nil, ErrSessionExpired
	}
	return m.load(ctx, sessionID)
}

// UpdatePreferences applies a partial preferences change. Each field is
// validated independently: a new category joins the favorites (distinct,
// oldest evicted past the cap), playTime must be within [1,30] minutes,
// difficulty and scenario must be enum members. Invalid fields are dropped
// without failing the request.
func (m *Manager) UpdatePreferences(ctx context.Context, sessionID string, update PreferencesUpdate) (*models.SessionProfile, error) {
	unlock := m.lockSession(sessionID)
	defer unlock()

	profile, err := m.load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionExpired) {
			m.forgetLock(sessionID)
		}
		return nil, err
	}

	if update.Category != "" && !profile.HasFavoriteCategory(update.Category) {
		cats := append(profile.Preferences.FavoriteCategories, update.Category)
		if len(cats) > models.MaxFavoriteCategories {
			cats = cats[len(cats)-models.MaxFavoriteCategories:]
		}
		profile.Preferences.FavoriteCategories = cats
	}

	if update.PlayTime >= minPlayTimePreference && update.PlayTime <= maxPlayTimePreference {
		profile.Preferences.PlayTimePreference = update.PlayTime
	}

	// Difficulty preferences, like scenarios, accept any locale's enum.
	switch update.Difficulty {
	case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard,
		models.DifficultyEasyZH, models.DifficultyMediumZH, models.DifficultyHardZH:
		profile.Preferences.Difficulty = update.Difficulty
	}

	if update.Scenario != "" && m.validScenario(update.Scenario) {
		profile.Preferences.Scenario = update.Scenario
	}

	if err := m.store.Put(ctx, profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return profile, nil
}

// validScenario accepts a scenario present in any locale's enum; scenario
// preferences are plain strings shared across locales.
func (m *Manager) validScenario(scenario string) bool {
	for _, locale := range m.catalogs.Locales() {
		if m.catalogs.Catalog(locale).ValidScenario(scenario) {
			return true
		}
	}
	return false
}

// RecordPlay records a finished round: statistics, recent history, favorite
// ranking and achievements all update in one step. The profile is written
// back only after every field has been computed.
func (m *Manager) RecordPlay(ctx context.Context, sessionID string, req PlayRequest) (*models.SessionProfile, error) {
	if req.GameID <= 0 {
		return nil, fmt.Errorf("%w: gameId", ErrMissingField)
	}
	if req.PlayTime <= 0 {
		return nil, fmt.Errorf("%w: playTime", ErrMissingField)
	}

	unlock := m.lockSession(sessionID)
	defer unlock()

	profile, err := m.load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionExpired) {
			m.forgetLock(sessionID)
		}
		return nil, err
	}

	now := m.now()
	prevLastPlay := profile.Stats.LastPlayTime

	profile.Stats.TotalPlayTime += req.PlayTime
	profile.Stats.GamesPlayed++
	profile.Stats.LastPlayTime = &now

	// Re-recording a game moves it to the front of the history.
	recent := make([]models.PlayRecord, 0, len(profile.RecentGames)+1)
	recent = append(recent, models.PlayRecord{
		GameID:    req.GameID,
		PlayTime:  req.PlayTime,
		Completed: req.Completed,
		Rating:    req.Rating,
		Timestamp: now,
	})
	for _, r := range profile.RecentGames {
		if r.GameID != req.GameID {
			recent = append(recent, r)
		}
	}
	if len(recent) > models.MaxRecentGames {
		recent = recent[:models.MaxRecentGames]
	}
	profile.RecentGames = recent

	m.bumpFavorite(profile, req, now)
	evaluateAchievements(profile, prevLastPlay, now)

	if err := m.store.Put(ctx, profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return profile, nil
}

// bumpFavorite updates the per-game cumulative stats and keeps the list
// ordered by play count, truncated to the cap.
func (m *Manager) bumpFavorite(profile *models.SessionProfile, req PlayRequest, now time.Time) {
	found := false
	for i := range profile.Stats.FavoriteGames {
		if profile.Stats.FavoriteGames[i].GameID == req.GameID {
			profile.Stats.FavoriteGames[i].PlayCount++
			profile.Stats.FavoriteGames[i].TotalTime += req.PlayTime
			profile.Stats.FavoriteGames[i].LastPlayed = now
			found = true
			break
		}
	}
	if !found {
		profile.Stats.FavoriteGames = append(profile.Stats.FavoriteGames, models.FavoriteGame{
			GameID:     req.GameID,
			PlayCount:  1,
			TotalTime:  req.PlayTime,
			LastPlayed: now,
		})
	}

	sort.SliceStable(profile.Stats.FavoriteGames, func(i, j int) bool {
		return profile.Stats.FavoriteGames[i].PlayCount > profile.Stats.FavoriteGames[j].PlayCount
	})
	if len(profile.Stats.FavoriteGames) > models.MaxFavoriteGames {
		profile.Stats.FavoriteGames = profile.Stats.FavoriteGames[:models.MaxFavoriteGames]
	}
}

// SaveRecommendations caches the session's latest top recommendations.
func (m *Manager) SaveRecommendations(ctx context.Context, sessionID string, recs []models.RecommendedGame, keep int) error {
	unlock := m.lockSession(sessionID)
	defer unlock()

	profile, err := m.load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionExpired) {
			m.forgetLock(sessionID)
		}
		return err
	}

	if keep > 0 && len(recs) > keep {
		recs = recs[:keep]
	}
	profile.Recommendations = recs

	if err := m.store.Put(ctx, profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// Clear deletes the profile and forgets its lock.
func (m *Manager) Clear(ctx context.Context, sessionID string) error {
	unlock := m.lockSession(sessionID)
	defer unlock()

	if err := m.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}

	m.forgetLock(sessionID)
	return nil
}

// ActiveSessions returns the number of stored profiles.
func (m *Manager) ActiveSessions(ctx context.Context) (int, error) {
	return m.store.Count(ctx)
}

// load fetches the profile, translating a miss into ErrSessionExpired.
func (m *Manager) load(ctx context.Context, sessionID string) (*models.SessionProfile, error) {
	profile, err := m.store.Get(ctx, sessionID)
	if errors.Is(err, ErrProfileNotFound) {
		return nil, ErrSessionExpired
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return profile, nil
}
