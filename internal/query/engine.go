// GameGate - Casual Games Catalog and Recommendation Service
// Copyright 2026 GameGate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamegate/gamegate

// Package query implements the catalog query engine: filtering, search,
// sorting and pagination over a locale's game catalog.
//
// All operations are pure functions over catalog snapshots; nothing here
// mutates shared state. Filters compose in a fixed precedence order, each
// applying to the output of the previous one:
//
//  1. scenario filter
//  2. search filter
//  3. category / difficulty filters
//  4. max-time filter
//  5. stable sort
//  6. pagination
package query

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gamegate/gamegate/internal/catalog"
	"github.com/gamegate/gamegate/internal/models"
)

// Validation errors surfaced directly to the caller.
var (
	// ErrInvalidScenario indicates a scenario outside the locale's enum.
	ErrInvalidScenario = errors.New("invalid scenario")

	// ErrInvalidTimeRange indicates a max play time outside 1-30 minutes.
	ErrInvalidTimeRange = errors.New("play time must be between 1 and 30 minutes")

	// ErrQueryTooShort indicates a search query shorter than 2 characters.
	ErrQueryTooShort = errors.New("search query must be at least 2 characters")
)

// Sentinel filter value meaning "no restriction".
const FilterAll = "all"

// Sort orders accepted by List.
const (
	SortPopularity = "popularity" // descending (default)
	SortRating     = "rating"     // descending
	SortPlayTime   = "playTime"   // ascending
	SortNewest     = "newest"     // release date descending
)

// Bounds for the max-time filter, in minutes.
const (
	MinPlayTime = 1
	MaxPlayTime = 30
)

// Default pagination parameters.
const (
	DefaultPage  = 1
	DefaultLimit = 12
)

// MinQueryLength is the minimum accepted search query length in characters.
const MinQueryLength = 2

// Filters holds the optional restrictions for a catalog listing.
// String fields use the sentinel "all" (or empty) for "no restriction";
// MaxTime uses 0.
type Filters struct {
	Scenario   string `json:"scenario,omitempty"`
	Search     string `json:"search,omitempty"`
	Category   string `json:"category,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	MaxTime    int    `json:"maxTime,omitempty"`
	SortBy     string `json:"sortBy,omitempty"`
}

// ListRequest is a full catalog listing request: filters plus pagination.
type ListRequest struct {
	Filters
	Page  int
	Limit int
}

// ListResult is a single page of a filtered, sorted catalog listing.
type ListResult struct {
	Games      []models.Game     `json:"games"`
	Pagination models.Pagination `json:"pagination"`
	Filters    Filters           `json:"filters"`
}

// List produces a filtered, sorted, paginated view of the catalog.
//
// Page and limit are not independently validated: an out-of-range page
// yields an empty slice with correct pagination metadata, not an error.
func List(c *catalog.Catalog, req ListRequest) (*ListResult, error) {
	games := c.Games()

	var err error
	if games, err = applyScenario(c, games, req.Scenario); err != nil {
		return nil, err
	}
	if games, err = applySearch(games, req.Search); err != nil {
		return nil, err
	}
	games = applyCategory(games, req.Category)
	games = applyDifficulty(games, req.Difficulty)
	if games, err = applyMaxTime(games, req.MaxTime); err != nil {
		return nil, err
	}

	sortGames(games, req.SortBy)

	page, limit := req.Page, req.Limit
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	pageGames, pagination := Paginate(games, page, limit)

	return &ListResult{
		Games:      pageGames,
		Pagination: pagination,
		Filters:    req.Filters,
	}, nil
}

// applyScenario restricts to games tagged with the scenario. The sentinel
// "all" (or empty) disables the filter; anything else must be in the
// locale's scenario enum.
func applyScenario(c *catalog.Catalog, games []models.Game, scenario string) ([]models.Game, error) {
	if scenario == "" || scenario == FilterAll {
		return games, nil
	}
	if !c.ValidScenario(scenario) {
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrInvalidScenario, scenario, strings.Join(c.Scenarios(), ", "))
	}

	out := games[:0]
	for _, g := range games {
		if g.HasScenario(scenario) {
			out = append(out, g)
		}
	}
	return out, nil
}

// applySearch keeps games where the lowercased query is a substring of the
// title, description, category or any tag.
func applySearch(games []models.Game, query string) ([]models.Game, error) {
	if query == "" {
		return games, nil
	}
	if len([]rune(query)) < MinQueryLength {
		return nil, fmt.Errorf("%w: %q", ErrQueryTooShort, query)
	}

	q := strings.ToLower(query)
	out := games[:0]
	for _, g := range games {
		if matchesQuery(&g, q) {
			out = append(out, g)
		}
	}
	return out, nil
}

// matchesQuery reports whether the lowercased query matches the game.
func matchesQuery(g *models.Game, q string) bool {
	if strings.Contains(strings.ToLower(g.Title), q) ||
		strings.Contains(strings.ToLower(g.Description), q) ||
		strings.Contains(strings.ToLower(g.Category), q) {
		return true
	}
	for _, tag := range g.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func applyCategory(games []models.Game, category string) []models.Game {
	if category == "" || category == FilterAll {
		return games
	}
	out := games[:0]
	for _, g := range games {
		if g.Category == category {
			out = append(out, g)
		}
	}
	return out
}

func applyDifficulty(games []models.Game, difficulty string) []models.Game {
	if difficulty == "" || difficulty == FilterAll {
		return games
	}
	out := games[:0]
	for _, g := range games {
		if g.Difficulty == difficulty {
			out = append(out, g)
		}
	}
	return out
}

// applyMaxTime keeps games playable within maxTime minutes. Zero disables
// the filter; any other value outside [1,30] is rejected.
func applyMaxTime(games []models.Game, maxTime int) ([]models.Game, error) {
	if maxTime == 0 {
		return games, nil
	}
	if maxTime < MinPlayTime || maxTime > MaxPlayTime {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTimeRange, maxTime)
	}

	out := games[:0]
	for _, g := range games {
		if g.PlayTime <= maxTime {
			out = append(out, g)
		}
	}
	return out, nil
}

// sortGames orders games in place by the requested key. The sort is stable
// so equal keys preserve catalog order. Unknown keys fall back to the
// popularity default rather than erroring.
func sortGames(games []models.Game, sortBy string) {
	switch sortBy {
	case SortRating:
		sort.SliceStable(games, func(i, j int) bool {
			return games[i].Rating > games[j].Rating
		})
	case SortPlayTime:
		sort.SliceStable(games, func(i, j int) bool {
			return games[i].PlayTime < games[j].PlayTime
		})
	case SortNewest:
		sort.SliceStable(games, func(i, j int) bool {
			return games[i].ReleasedAt.After(games[j].ReleasedAt.Time)
		})
	default:
		sort.SliceStable(games, func(i, j int) bool {
			return games[i].Popularity > games[j].Popularity
		})
	}
}

// Paginate slices a 1-based page out of games and computes pagination
// metadata. Out-of-range pages yield an empty (non-nil) slice.
func Paginate(games []models.Game, page, limit int) ([]models.Game, models.Pagination) {
	total := len(games)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	out := make([]models.Game, end-start)
	copy(out, games[start:end])

	return out, models.Pagination{
		Current:    page,
		Total:      totalPages,
		Limit:      limit,
		TotalItems: total,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
