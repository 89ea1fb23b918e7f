// GameGate - Casual Games Catalog and Recommendation Service
// Copyright 2026 GameGate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamegate/gamegate

package catalog

import (
	"fmt"
	"sort"

	"github.com/gamegate/gamegate/internal/models"
)

// Catalog is one locale's immutable game collection plus derived indexes.
type Catalog struct {
	locale         string
	games          []models.Game
	byID           map[int]int // game ID -> index into games
	scenarioIndex  map[string][]int
	validScenarios map[string]struct{}
	scenarioList   []string
}

// newCatalog builds a catalog and its indexes from seed data.
func newCatalog(locale string, games []models.Game, scenarios []string) *Catalog {
	c := &Catalog{
		locale:         locale,
		games:          games,
		byID:           make(map[int]int, len(games)),
		scenarioIndex:  make(map[string][]int),
		validScenarios: make(map[string]struct{}, len(scenarios)),
		scenarioList:   scenarios,
	}

	for i := range games {
		c.byID[games[i].ID] = i
		for _, s := range games[i].Scenarios {
			c.scenarioIndex[s] = append(c.scenarioIndex[s], i)
		}
	}
	for _, s := range scenarios {
		c.validScenarios[s] = struct{}{}
	}

	return c
}

// validate checks the catalog invariants: unique IDs, positive play times,
// ratings within [0,5].
func (c *Catalog) validate() error {
	seen := make(map[int]struct{}, len(c.games))
	for i := range c.games {
		g := &c.games[i]
		if g.ID <= 0 {
			return fmt.Errorf("game %q: non-positive id %d", g.Title, g.ID)
		}
		if _, dup := seen[g.ID]; dup {
			return fmt.Errorf("duplicate game id %d", g.ID)
		}
		seen[g.ID] = struct{}{}
		if g.PlayTime <= 0 {
			return fmt.Errorf("game %d: non-positive play time", g.ID)
		}
		if g.Rating < 0 || g.Rating > 5 {
			return fmt.Errorf("game %d: rating %v outside [0,5]", g.ID, g.Rating)
		}
	}
	return nil
}

// Locale returns the catalog's locale key.
func (c *Catalog) Locale() string {
	return c.locale
}

// Len returns the number of games in the catalog.
func (c *Catalog) Len() int {
	return len(c.games)
}

// Games returns a copy of the full catalog in seed order. Callers may
// reorder or truncate the returned slice freely.
func (c *Catalog) Games() []models.Game {
	out := make([]models.Game, len(c.games))
	copy(out, c.games)
	return out
}

// ByID returns a copy of the game with the given ID, or ErrGameNotFound.
func (c *Catalog) ByID(id int) (models.Game, error) {
	i, ok := c.byID[id]
	if !ok {
		return models.Game{}, fmt.Errorf("%w: %d", ErrGameNotFound, id)
	}
	return c.games[i], nil
}

// ByScenario returns all games tagged with the given scenario, in seed
// order. The scenario is not validated here; unknown scenarios yield an
// empty slice. Validation against the enum is the query engine's concern.
func (c *Catalog) ByScenario(scenario string) []models.Game {
	idxs := c.scenarioIndex[scenario]
	out := make([]models.Game, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, c.games[i])
	}
	return out
}

// ValidScenario reports whether the scenario is in this locale's enum.
func (c *Catalog) ValidScenario(scenario string) bool {
	_, ok := c.validScenarios[scenario]
	return ok
}

// Scenarios returns this locale's valid scenario values in declaration order.
func (c *Catalog) Scenarios() []string {
	out := make([]string, len(c.scenarioList))
	copy(out, c.scenarioList)
	return out
}

// Categories returns the distinct category names in the catalog, sorted.
func (c *Catalog) Categories() []string {
	set := make(map[string]struct{})
	for i := range c.games {
		set[c.games[i].Category] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for cat := range set {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}
