// GameGate - Casual Games Catalog and Recommendation Service
// Copyright 2026 GameGate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamegate/gamegate

package models

import (
	"fmt"
	"time"
)

// Difficulty levels. Each locale's catalog carries its own difficulty
// strings; preferences accept members of either enum.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"

	DifficultyEasyZH   = "简单"
	DifficultyMediumZH = "中等"
	DifficultyHardZH   = "困难"
)

// Date is a calendar date serialized as "2006-01-02".
// Game release dates carry no time-of-day component on the wire.
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month, day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON serializes the date as a quoted "2006-01-02" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

// UnmarshalJSON parses a quoted "2006-01-02" string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date literal: %s", s)
	}
	t, err := time.Parse("2006-01-02", s[1:len(s)-1])
	if err != nil {
		return fmt.Errorf("parse date: %w", err)
	}
	d.Time = t
	return nil
}

// Game is a single catalog entry. Catalog records are immutable after
// startup; per-session play counters live on the SessionProfile, never here.
type Game struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	PlayTime    int      `json:"playTime"` // minutes
	Difficulty  string   `json:"difficulty"`
	Rating      float64  `json:"rating"`     // 0-5
	Popularity  float64  `json:"popularity"` // relative ranking score
	Thumbnail   string   `json:"thumbnail"`
	URL         string   `json:"url"`
	Tags        []string `json:"tags"`
	ReleasedAt  Date     `json:"releasedAt"`
	Features    []string `json:"features,omitempty"`
	Scenarios   []string `json:"scenarios"`
	Languages   []string `json:"languages,omitempty"`
	FileSize    string   `json:"fileSize,omitempty"`
	Developer   string   `json:"developer,omitempty"`
	Version     string   `json:"version,omitempty"`
}

// HasScenario reports whether the game is tagged for the given scenario.
func (g *Game) HasScenario(scenario string) bool {
	for _, s := range g.Scenarios {
		if s == scenario {
			return true
		}
	}
	return false
}

// HasTag reports whether the game carries the given tag (exact match).
func (g *Game) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// RecommendedGame decorates a catalog entry with a human-readable
// recommendation reason. The reason is pure response formatting and is
// never stored on the catalog record.
type RecommendedGame struct {
	Game
	RecommendationReason     string `json:"recommendationReason"`
	IsPersonalRecommendation bool   `json:"isPersonalRecommendation,omitempty"`
}

// TrendingGame decorates a catalog entry with mock trend information for
// the "today" popular-games period.
type TrendingGame struct {
	Game
	Trend      string `json:"trend"`
	TrendValue int    `json:"trendValue"`
}

// CategoryStats aggregates catalog records per category.
type CategoryStats struct {
	Name          string        `json:"name"`
	Count         int           `json:"count"`
	AvgRating     float64       `json:"avgRating"`
	TotalPlayTime int           `json:"totalPlayTime"`
	AvgPlayTime   float64       `json:"avgPlayTime"`
	PopularGames  []PopularGame `json:"popularGames"`
}

// PopularGame is the compact game reference used inside CategoryStats.
type PopularGame struct {
	ID         int     `json:"id"`
	Title      string  `json:"title"`
	Popularity float64 `json:"popularity"`
}

// TagCloudEntry is a weighted tag for the tag cloud endpoint.
type TagCloudEntry struct {
	Tag    string  `json:"tag"`
	Count  int     `json:"count"`
	Weight float64 `json:"weight"`
	Size   int     `json:"size"` // suggested font size, clamped to 12-24
}
