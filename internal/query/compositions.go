// GameGate - Casual Games Catalog and Recommendation Service
// Copyright 2026 GameGate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamegate/gamegate

package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gamegate/gamegate/internal/catalog"
	"github.com/gamegate/gamegate/internal/models"
)

// Default result caps for the named convenience queries.
const (
	DefaultSearchLimit   = 10
	DefaultScenarioLimit = 6
	DefaultPopularLimit  = 10
	DefaultQuickMinutes  = 5
)

// Search returns up to limit games matching the query, in catalog order.
// The query must be at least MinQueryLength characters.
func Search(c *catalog.Catalog, q string, limit int) ([]models.Game, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	games, err := applySearch(c.Games(), q)
	if err != nil {
		return nil, err
	}
	if len(games) > limit {
		games = games[:limit]
	}
	return games, nil
}

// Quick returns all games playable within maxMinutes, shortest first.
// maxMinutes must be in [1,30].
func Quick(c *catalog.Catalog, maxMinutes int) ([]models.Game, error) {
	if maxMinutes < MinPlayTime || maxMinutes > MaxPlayTime {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTimeRange, maxMinutes)
	}

	games, err := applyMaxTime(c.Games(), maxMinutes)
	if err != nil {
		return nil, err
	}
	sortGames(games, SortPlayTime)
	return games, nil
}

// ByScenario returns up to limit games tagged with the scenario, each
// decorated with a human-readable recommendation reason naming the
// scenario. The scenario must be in the locale's enum.
func ByScenario(c *catalog.Catalog, scenario string, limit int) ([]models.RecommendedGame, error) {
	if limit <= 0 {
		limit = DefaultScenarioLimit
	}
	if !c.ValidScenario(scenario) {
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrInvalidScenario, scenario, strings.Join(c.Scenarios(), ", "))
	}

	games := c.ByScenario(scenario)
	if len(games) > limit {
		games = games[:limit]
	}

	out := make([]models.RecommendedGame, len(games))
	for i, g := range games {
		out[i] = models.RecommendedGame{
			Game:                 g,
			RecommendationReason: scenarioReason(c.Locale(), scenario, g.PlayTime),
		}
	}
	return out, nil
}

// scenarioReason formats the per-locale scenario recommendation blurb.
func scenarioReason(locale, scenario string, playTime int) string {
	if locale == catalog.LocaleZH {
		return fmt.Sprintf("最适合%s时间的小游戏，只需%d分钟", scenario, playTime)
	}
	return fmt.Sprintf("A perfect fit for your %s time, just %d minutes", scenario, playTime)
}

// Popular returns the top games by popularity, catalog order breaking ties.
func Popular(c *catalog.Catalog, limit int) []models.Game {
	if limit <= 0 {
		limit = DefaultPopularLimit
	}

	games := c.Games()
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].Popularity > games[j].Popularity
	})
	if len(games) > limit {
		games = games[:limit]
	}
	return games
}
