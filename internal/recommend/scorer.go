// GameGate - Casual Games Catalog and Recommendation Service
// Copyright 2026 GameGate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamegate/gamegate

// Package recommend ranks the catalog for a session profile.
//
// Ranking is a chain of four stable sort passes, each refining the order
// the previous pass produced. Later passes dominate: a pass only reorders
// games its own key distinguishes, so the earlier ordering survives as the
// tie-break. The chain is, from weakest to strongest key:
//
//  1. favorite-category membership (skipped when the profile has none)
//  2. distance between playTime and the play-time preference
//  3. preferred-difficulty match
//  4. unplayed before already-played
//
// An empty profile therefore degrades gracefully: passes 2 and 3 rank the
// catalog against the default preferences, pass 4 is a no-op.
package recommend

import (
	"fmt"
	"sort"

	"github.com/gamegate/gamegate/internal/catalog"
	"github.com/gamegate/gamegate/internal/models"
)

// Scorer ranks catalog games against a session profile.
type Scorer struct {
	cfg Config
}

// NewScorer returns a Scorer using cfg; zero limits fall back to defaults.
func NewScorer(cfg Config) *Scorer {
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = DefaultLimit
	}
	return &Scorer{cfg: cfg}
}

// ForProfile returns the top personalized recommendations for the profile,
// each carrying the first matching reason. limit <= 0 uses the configured
// default. The catalog itself is never mutated.
func (s *Scorer) ForProfile(c *catalog.Catalog, p *models.SessionProfile, limit int) []models.RecommendedGame {
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}

	games := c.Games()

	if len(p.Preferences.FavoriteCategories) > 0 {
		sort.SliceStable(games, func(i, j int) bool {
			return p.HasFavoriteCategory(games[i].Category) && !p.HasFavoriteCategory(games[j].Category)
		})
	}

	preferred := p.Preferences.PlayTimePreference
	sort.SliceStable(games, func(i, j int) bool {
		return absDiff(games[i].PlayTime, preferred) < absDiff(games[j].PlayTime, preferred)
	})

	if p.Preferences.Difficulty != "" {
		sort.SliceStable(games, func(i, j int) bool {
			return games[i].Difficulty == p.Preferences.Difficulty && games[j].Difficulty != p.Preferences.Difficulty
		})
	}

	sort.SliceStable(games, func(i, j int) bool {
		return !p.HasPlayed(games[i].ID) && p.HasPlayed(games[j].ID)
	})

	if len(games) > limit {
		games = games[:limit]
	}

	out := make([]models.RecommendedGame, len(games))
	for i, g := range games {
		out[i] = models.RecommendedGame{
			Game:                     g,
			RecommendationReason:     s.reason(c.Locale(), &g, p),
			IsPersonalRecommendation: true,
		}
	}
	return out
}

// reason picks the first explanation that applies to the game, falling
// back to a generic popularity blurb.
func (s *Scorer) reason(locale string, g *models.Game, p *models.SessionProfile) string {
	zh := locale == catalog.LocaleZH

	switch {
	case p.HasFavoriteCategory(g.Category):
		if zh {
			return "基于你的喜好"
		}
		return "Based on your preferences"
	case absDiff(g.PlayTime, p.Preferences.PlayTimePreference) <= timeFitWindow:
		if zh {
			return fmt.Sprintf("%d分钟，正好适合你", g.PlayTime)
		}
		return fmt.Sprintf("%d minutes, just right for you", g.PlayTime)
	case g.Difficulty == p.Preferences.Difficulty:
		if zh {
			return "难度正好适合你"
		}
		return "Just the right difficulty for you"
	default:
		if zh {
			return "热门推荐"
		}
		return "Popular pick"
	}
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
