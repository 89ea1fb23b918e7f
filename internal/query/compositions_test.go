// GameGate - Casual Games Catalog and Recommendation Service
// Copyright 2026 GameGate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamegate/gamegate

package query

import (
	"errors"
	"strings"
	"testing"
)

func TestSearch(t *testing.T) {
	c := testCatalog(t)

	t.Run("title match", func(t *testing.T) {
		games, err := Search(c, "2048", 0)
		if err != nil {
			t.Fatalf("Search() error: %v", err)
		}
		if len(games) == 0 {
			t.Fatal("expected at least one match for 2048")
		}
		if games[0].ID != 101 {
			t.Errorf("first match = %d, want 101", games[0].ID)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		lower, err := Search(c, "puzzle", 0)
		if err != nil {
			t.Fatalf("Search() error: %v", err)
		}
		upper, err := Search(c, "PUZZLE", 0)
		if err != nil {
			t.Fatalf("Search() error: %v", err)
		}
		if len(lower) != len(upper) {
			t.Errorf("case changed result count: %d vs %d", len(lower), len(upper))
		}
	})

	t.Run("no matches", func(t *testing.T) {
		games, err := Search(c, "xyzzy_not_present", 0)
		if err != nil {
			t.Fatalf("Search() error: %v", err)
		}
		if len(games) != 0 {
			t.Errorf("expected empty result, got %d games", len(games))
		}
	})

	t.Run("too short", func(t *testing.T) {
		if _, err := Search(c, "a", 0); !errors.Is(err, ErrQueryTooShort) {
			t.Errorf("expected ErrQueryTooShort, got %v", err)
		}
	})

	t.Run("limit respected", func(t *testing.T) {
		games, err := Search(c, "game", 2)
		if err != nil {
			t.Fatalf("Search() error: %v", err)
		}
		if len(games) > 2 {
			t.Errorf("limit ignored: got %d games", len(games))
		}
	})
}

func TestQuick(t *testing.T) {
	c := testCatalog(t)

	t.Run("bounds", func(t *testing.T) {
		for _, minutes := range []int{0, -3, 31} {
			if _, err := Quick(c, minutes); !errors.Is(err, ErrInvalidTimeRange) {
				t.Errorf("Quick(%d): expected ErrInvalidTimeRange, got %v", minutes, err)
			}
		}
	})

	t.Run("filter and order", func(t *testing.T) {
		games, err := Quick(c, 5)
		if err != nil {
			t.Fatalf("Quick() error: %v", err)
		}
		if len(games) == 0 {
			t.Fatal("expected quick games within 5 minutes")
		}
		for i, g := range games {
			if g.PlayTime > 5 {
				t.Errorf("game %d playTime %d exceeds 5", g.ID, g.PlayTime)
			}
			if i > 0 && games[i-1].PlayTime > g.PlayTime {
				t.Errorf("games not sorted by playTime asc at index %d", i)
			}
		}
	})
}

func TestByScenario(t *testing.T) {
	c := testCatalog(t)

	t.Run("invalid scenario", func(t *testing.T) {
		if _, err := ByScenario(c, "not_a_scenario", 0); !errors.Is(err, ErrInvalidScenario) {
			t.Errorf("expected ErrInvalidScenario, got %v", err)
		}
	})

	t.Run("commute", func(t *testing.T) {
		recs, err := ByScenario(c, "commute", 1)
		if err != nil {
			t.Fatalf("ByScenario() error: %v", err)
		}
		if len(recs) != 1 {
			t.Fatalf("limit ignored: got %d recommendations", len(recs))
		}
		rec := recs[0]
		if rec.ID != 101 {
			t.Errorf("top commute game = %d, want 101", rec.ID)
		}
		if !rec.HasScenario("commute") {
			t.Errorf("game %d not tagged for commute", rec.ID)
		}
		if !strings.Contains(rec.RecommendationReason, "commute") {
			t.Errorf("reason %q does not mention the scenario", rec.RecommendationReason)
		}
		if !strings.Contains(rec.RecommendationReason, "5 minutes") {
			t.Errorf("reason %q does not mention the play time", rec.RecommendationReason)
		}
		if rec.IsPersonalRecommendation {
			t.Error("scenario picks are not personal recommendations")
		}
	})

	t.Run("all tagged", func(t *testing.T) {
		recs, err := ByScenario(c, "lunch", 0)
		if err != nil {
			t.Fatalf("ByScenario() error: %v", err)
		}
		if len(recs) == 0 || len(recs) > DefaultScenarioLimit {
			t.Fatalf("unexpected recommendation count %d", len(recs))
		}
		for _, r := range recs {
			if !r.HasScenario("lunch") {
				t.Errorf("game %d not tagged for lunch", r.ID)
			}
		}
	})
}

func TestPopular(t *testing.T) {
	c := testCatalog(t)

	games := Popular(c, 3)
	if len(games) != 3 {
		t.Fatalf("Popular(3) returned %d games", len(games))
	}
	for i := 1; i < len(games); i++ {
		if games[i-1].Popularity < games[i].Popularity {
			t.Errorf("not sorted by popularity at index %d", i)
		}
	}

	all := Popular(c, 0)
	if len(all) != DefaultPopularLimit {
		t.Errorf("default limit: got %d, want %d", len(all), DefaultPopularLimit)
	}
}
