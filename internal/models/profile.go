// GameGate - Casual Games Catalog and Recommendation Service
// Copyright 2026 GameGate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamegate/gamegate

package models

import (
	"time"
)

// Limits on the mutable parts of a session profile.
const (
	// MaxFavoriteCategories bounds the favorite-categories preference list.
	// Oldest entries are evicted first.
	MaxFavoriteCategories = 5

	// MaxFavoriteGames bounds the per-profile favorite games ranking.
	MaxFavoriteGames = 10

	// MaxRecentGames bounds the recent play history.
	MaxRecentGames = 20
)

// Default preference values for a freshly minted profile.
const (
	DefaultPlayTimePreference = 5
	DefaultDifficulty         = DifficultyEasy
	DefaultScenario           = "office"
)

// Preferences holds the tunable part of a session profile.
//
// FavoriteCategories is an ordered sequence bounded to the last
// MaxFavoriteCategories distinct entries with FIFO eviction.
type Preferences struct {
	FavoriteCategories []string `json:"favoriteCategories"`
	PlayTimePreference int      `json:"playTimePreference"` // minutes
	Difficulty         string   `json:"difficulty"`
	Scenario           string   `json:"scenario"`
}

// FavoriteGame tracks cumulative play statistics for a single game within
// one session. The per-profile list is kept sorted descending by PlayCount
// and truncated to MaxFavoriteGames.
type FavoriteGame struct {
	GameID     int       `json:"gameId"`
	PlayCount  int       `json:"playCount"`
	TotalTime  int       `json:"totalTime"` // minutes
	LastPlayed time.Time `json:"lastPlayed"`
}

// Stats holds cumulative play statistics for a session.
type Stats struct {
	TotalPlayTime int            `json:"totalPlayTime"` // minutes
	GamesPlayed   int            `json:"gamesPlayed"`
	FavoriteGames []FavoriteGame `json:"favoriteGames"`
	LastPlayTime  *time.Time     `json:"lastPlayTime"`
	Achievements  []string       `json:"achievements"`
	PlayStreak    int            `json:"playStreak"`
}

// PlayRecord is a single entry in the recent-games history.
// The history is most-recent-first, de-duplicated by GameID (re-recording
// moves the entry to the front) and capped at MaxRecentGames.
type PlayRecord struct {
	GameID    int       `json:"gameId"`
	PlayTime  int       `json:"playTime"` // minutes
	Completed bool      `json:"completed"`
	Rating    *float64  `json:"rating"`
	Timestamp time.Time `json:"timestamp"`
}

// SessionProfile is the per-session mutable state: preferences, play
// statistics and recent history. Profiles are created lazily on first
// contact and live until explicitly cleared.
type SessionProfile struct {
	ID              string            `json:"id"`
	CreatedAt       time.Time         `json:"createdAt"`
	Preferences     Preferences       `json:"preferences"`
	Stats           Stats             `json:"stats"`
	RecentGames     []PlayRecord      `json:"recentGames"`
	Recommendations []RecommendedGame `json:"recommendations"`
}

// NewSessionProfile returns a profile with default preferences and empty
// statistics for the given session ID.
func NewSessionProfile(id string, now time.Time) *SessionProfile {
	return &SessionProfile{
		ID:        id,
		CreatedAt: now,
		Preferences: Preferences{
			FavoriteCategories: []string{},
			PlayTimePreference: DefaultPlayTimePreference,
			Difficulty:         DefaultDifficulty,
			Scenario:           DefaultScenario,
		},
		Stats: Stats{
			FavoriteGames: []FavoriteGame{},
			Achievements:  []string{},
		},
		RecentGames:     []PlayRecord{},
		Recommendations: []RecommendedGame{},
	}
}

// Clone returns a deep copy of the profile. Stores hand out clones so
// callers never share slice backing arrays with persisted state.
func (p *SessionProfile) Clone() SessionProfile {
	cp := *p
	// Empty slices stay non-nil so they serialize as [] rather than null.
	cp.Preferences.FavoriteCategories = append([]string{}, p.Preferences.FavoriteCategories...)
	cp.Stats.FavoriteGames = append([]FavoriteGame{}, p.Stats.FavoriteGames...)
	cp.Stats.Achievements = append([]string{}, p.Stats.Achievements...)
	cp.RecentGames = append([]PlayRecord{}, p.RecentGames...)
	cp.Recommendations = append([]RecommendedGame{}, p.Recommendations...)
	if p.Stats.LastPlayTime != nil {
		t := *p.Stats.LastPlayTime
		cp.Stats.LastPlayTime = &t
	}
	return cp
}

// HasPlayed reports whether the game appears in the recent-games history.
func (p *SessionProfile) HasPlayed(gameID int) bool {
	for _, r := range p.RecentGames {
		if r.GameID == gameID {
			return true
		}
	}
	return false
}

// HasFavoriteCategory reports whether the category is among the profile's
// favorite categories.
func (p *SessionProfile) HasFavoriteCategory(category string) bool {
	for _, c := range p.Preferences.FavoriteCategories {
		if c == category {
			return true
		}
	}
	return false
}

// HasAchievement reports whether the achievement has been unlocked.
func (p *SessionProfile) HasAchievement(id string) bool {
	for _, a := range p.Stats.Achievements {
		if a == id {
			return true
		}
	}
	return false
}
