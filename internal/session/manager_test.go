// GameGate - Casual Games Catalog and Recommendation Service
// Copyright 2026 GameGate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamegate/gamegate

package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gamegate/gamegate/internal/catalog"
	"github.com/gamegate/gamegate/internal/models"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	catalogs, err := catalog.NewStore(catalog.LocaleEN)
	if err != nil {
		t.Fatalf("NewStore() error: %v", err)
	}
	return NewManager(NewMemoryStore(), catalogs)
}

func mustCreate(t *testing.T, m *Manager) *models.SessionProfile {
	t.Helper()
	profile, created, err := m.GetOrCreate(context.Background(), "")
	if err != nil {
		t.Fatalf("GetOrCreate() error: %v", err)
	}
	if !created {
		t.Fatal("expected a freshly minted session")
	}
	return profile
}

func TestGetOrCreate(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	t.Run("mints new session", func(t *testing.T) {
		p := mustCreate(t, m)
		if p.ID == "" {
			t.Fatal("empty session ID")
		}
		if p.Preferences.PlayTimePreference != models.DefaultPlayTimePreference {
			t.Errorf("playTimePreference = %d, want %d", p.Preferences.PlayTimePreference, models.DefaultPlayTimePreference)
		}
		if p.Preferences.Difficulty != models.DefaultDifficulty {
			t.Errorf("difficulty = %q, want %q", p.Preferences.Difficulty, models.DefaultDifficulty)
		}
		if p.Preferences.Scenario != models.DefaultScenario {
			t.Errorf("scenario = %q, want %q", p.Preferences.Scenario, models.DefaultScenario)
		}
	})

	t.Run("returns existing session", func(t *testing.T) {
		p := mustCreate(t, m)
		got, created, err := m.GetOrCreate(ctx, p.ID)
		if err != nil {
			t.Fatalf("GetOrCreate() error: %v", err)
		}
		if created {
			t.Error("existing session reported as created")
		}
		if got.ID != p.ID {
			t.Errorf("got session %q, want %q", got.ID, p.ID)
		}
	})

	t.Run("unknown session expires", func(t *testing.T) {
		if _, _, err := m.GetOrCreate(ctx, "no-such-session"); !errors.Is(err, ErrSessionExpired) {
			t.Errorf("expected ErrSessionExpired, got %v", err)
		}
	})
}

func TestUpdatePreferences(t *testing.T) {
	ctx := context.Background()

	t.Run("valid fields applied", func(t *testing.T) {
		m := newTestManager(t)
		p := mustCreate(t, m)

		got, err := m.UpdatePreferences(ctx, p.ID, PreferencesUpdate{
			Category:   "Puzzle",
			PlayTime:   10,
			Difficulty: models.DifficultyHard,
			Scenario:   "commute",
		})
		if err != nil {
			t.Fatalf("UpdatePreferences() error: %v", err)
		}
		if !got.HasFavoriteCategory("Puzzle") {
			t.Error("category not added to favorites")
		}
		if got.Preferences.PlayTimePreference != 10 {
			t.Errorf("playTimePreference = %d, want 10", got.Preferences.PlayTimePreference)
		}
		if got.Preferences.Difficulty != models.DifficultyHard {
			t.Errorf("difficulty = %q", got.Preferences.Difficulty)
		}
		if got.Preferences.Scenario != "commute" {
			t.Errorf("scenario = %q", got.Preferences.Scenario)
		}
	})

	t.Run("invalid fields ignored", func(t *testing.T) {
		m := newTestManager(t)
		p := mustCreate(t, m)

		got, err := m.UpdatePreferences(ctx, p.ID, PreferencesUpdate{
			PlayTime:   99,
			Difficulty: "Impossible",
			Scenario:   "not_a_scenario",
		})
		if err != nil {
			t.Fatalf("UpdatePreferences() error: %v", err)
		}
		if got.Preferences.PlayTimePreference != models.DefaultPlayTimePreference {
			t.Errorf("out-of-range playTime applied: %d", got.Preferences.PlayTimePreference)
		}
		if got.Preferences.Difficulty != models.DefaultDifficulty {
			t.Errorf("unknown difficulty applied: %q", got.Preferences.Difficulty)
		}
		if got.Preferences.Scenario != models.DefaultScenario {
			t.Errorf("unknown scenario applied: %q", got.Preferences.Scenario)
		}
	})

	t.Run("zh scenario accepted", func(t *testing.T) {
		m := newTestManager(t)
		p := mustCreate(t, m)

		got, err := m.UpdatePreferences(ctx, p.ID, PreferencesUpdate{Scenario: "摸鱼"})
		if err != nil {
			t.Fatalf("UpdatePreferences() error: %v", err)
		}
		if got.Preferences.Scenario != "摸鱼" {
			t.Errorf("scenario = %q", got.Preferences.Scenario)
		}
	})

	t.Run("zh difficulty accepted", func(t *testing.T) {
		m := newTestManager(t)
		p := mustCreate(t, m)

		got, err := m.UpdatePreferences(ctx, p.ID, PreferencesUpdate{
			Difficulty: models.DifficultyEasyZH,
			Scenario:   "摸鱼",
		})
		if err != nil {
			t.Fatalf("UpdatePreferences() error: %v", err)
		}
		if got.Preferences.Difficulty != models.DifficultyEasyZH {
			t.Errorf("difficulty = %q, want %q", got.Preferences.Difficulty, models.DifficultyEasyZH)
		}
		if got.Preferences.Scenario != "摸鱼" {
			t.Errorf("scenario = %q", got.Preferences.Scenario)
		}

		got, err = m.UpdatePreferences(ctx, p.ID, PreferencesUpdate{Difficulty: models.DifficultyHardZH})
		if err != nil {
			t.Fatalf("UpdatePreferences() error: %v", err)
		}
		if got.Preferences.Difficulty != models.DifficultyHardZH {
			t.Errorf("difficulty = %q, want %q", got.Preferences.Difficulty, models.DifficultyHardZH)
		}
	})

	t.Run("favorite categories capped FIFO", func(t *testing.T) {
		m := newTestManager(t)
		p := mustCreate(t, m)

		for _, cat := range []string{"A", "B", "C", "D", "E", "F"} {
			if _, err := m.UpdatePreferences(ctx, p.ID, PreferencesUpdate{Category: cat}); err != nil {
				t.Fatalf("UpdatePreferences(%q) error: %v", cat, err)
			}
		}

		got, err := m.Get(ctx, p.ID)
		if err != nil {
			t.Fatalf("Get() error: %v", err)
		}
		want := []string{"B", "C", "D", "E", "F"}
		if len(got.Preferences.FavoriteCategories) != len(want) {
			t.Fatalf("favorites = %v, want %v", got.Preferences.FavoriteCategories, want)
		}
		for i, cat := range want {
			if got.Preferences.FavoriteCategories[i] != cat {
				t.Errorf("favorites[%d] = %q, want %q", i, got.Preferences.FavoriteCategories[i], cat)
			}
		}
	})

	t.Run("duplicate category not re-added", func(t *testing.T) {
		m := newTestManager(t)
		p := mustCreate(t, m)

		for i := 0; i < 3; i++ {
			if _, err := m.UpdatePreferences(ctx, p.ID, PreferencesUpdate{Category: "Puzzle"}); err != nil {
				t.Fatalf("UpdatePreferences() error: %v", err)
			}
		}
		got, err := m.Get(ctx, p.ID)
		if err != nil {
			t.Fatalf("Get() error: %v", err)
		}
		if len(got.Preferences.FavoriteCategories) != 1 {
			t.Errorf("favorites = %v, want exactly one entry", got.Preferences.FavoriteCategories)
		}
	})
}

func TestRecordPlay(t *testing.T) {
	ctx := context.Background()

	t.Run("missing fields", func(t *testing.T) {
		m := newTestManager(t)
		p := mustCreate(t, m)

		if _, err := m.RecordPlay(ctx, p.ID, PlayRequest{PlayTime: 5}); !errors.Is(err, ErrMissingField) {
			t.Errorf("missing gameId: got %v", err)
		}
		if _, err := m.RecordPlay(ctx, p.ID, PlayRequest{GameID: 101}); !errors.Is(err, ErrMissingField) {
			t.Errorf("missing playTime: got %v", err)
		}

		// Validation failures must not touch the profile.
		got, err := m.Get(ctx, p.ID)
		if err != nil {
			t.Fatalf("Get() error: %v", err)
		}
		if got.Stats.GamesPlayed != 0 {
			t.Errorf("stats mutated by rejected request: %+v", got.Stats)
		}
	})

	t.Run("stats and history", func(t *testing.T) {
		m := newTestManager(t)
		p := mustCreate(t, m)

		rating := 4.5
		got, err := m.RecordPlay(ctx, p.ID, PlayRequest{GameID: 101, PlayTime: 7, Completed: true, Rating: &rating})
		if err != nil {
			t.Fatalf("RecordPlay() error: %v", err)
		}

		if got.Stats.TotalPlayTime != 7 || got.Stats.GamesPlayed != 1 {
			t.Errorf("stats = %+v", got.Stats)
		}
		if got.Stats.LastPlayTime == nil {
			t.Error("lastPlayTime not set")
		}
		if len(got.RecentGames) != 1 || got.RecentGames[0].GameID != 101 {
			t.Fatalf("recentGames = %+v", got.RecentGames)
		}
		if !got.RecentGames[0].Completed || got.RecentGames[0].Rating == nil {
			t.Errorf("play record lost fields: %+v", got.RecentGames[0])
		}
		if !got.HasAchievement(AchievementFirstGame) {
			t.Error("first_game not unlocked")
		}
		if got.Stats.PlayStreak != 1 {
			t.Errorf("playStreak = %d, want 1", got.Stats.PlayStreak)
		}
	})

	t.Run("history dedupe and cap", func(t *testing.T) {
		m := newTestManager(t)
		p := mustCreate(t, m)

		for id := 1; id <= models.MaxRecentGames+5; id++ {
			if _, err := m.RecordPlay(ctx, p.ID, PlayRequest{GameID: id, PlayTime: 1}); err != nil {
				t.Fatalf("RecordPlay(%d) error: %v", id, err)
			}
		}
		// Replay an old game; it should move to the front, not duplicate.
		got, err := m.RecordPlay(ctx, p.ID, PlayRequest{GameID: 10, PlayTime: 1})
		if err != nil {
			t.Fatalf("RecordPlay() error: %v", err)
		}

		if len(got.RecentGames) != models.MaxRecentGames {
			t.Errorf("history length = %d, want %d", len(got.RecentGames), models.MaxRecentGames)
		}
		if got.RecentGames[0].GameID != 10 {
			t.Errorf("front of history = %d, want 10", got.RecentGames[0].GameID)
		}
		seen := make(map[int]bool)
		for _, r := range got.RecentGames {
			if seen[r.GameID] {
				t.Errorf("duplicate game %d in history", r.GameID)
			}
			seen[r.GameID] = true
		}
	})

	t.Run("favorite games ranked and capped", func(t *testing.T) {
		m := newTestManager(t)
		p := mustCreate(t, m)

		for id := 1; id <= models.MaxFavoriteGames+2; id++ {
			if _, err := m.RecordPlay(ctx, p.ID, PlayRequest{GameID: id, PlayTime: 2}); err != nil {
				t.Fatalf("RecordPlay(%d) error: %v", id, err)
			}
		}
		// Play game 3 twice more so it tops the ranking.
		var got *models.SessionProfile
		var err error
		for i := 0; i < 2; i++ {
			got, err = m.RecordPlay(ctx, p.ID, PlayRequest{GameID: 3, PlayTime: 2})
			if err != nil {
				t.Fatalf("RecordPlay() error: %v", err)
			}
		}

		favs := got.Stats.FavoriteGames
		if len(favs) != models.MaxFavoriteGames {
			t.Errorf("favorites length = %d, want %d", len(favs), models.MaxFavoriteGames)
		}
		if favs[0].GameID != 3 || favs[0].PlayCount != 3 {
			t.Errorf("top favorite = %+v, want game 3 with 3 plays", favs[0])
		}
		for i := 1; i < len(favs); i++ {
			if favs[i-1].PlayCount < favs[i].PlayCount {
				t.Errorf("favorites not ordered by playCount at index %d", i)
			}
		}
	})

	t.Run("threshold achievements", func(t *testing.T) {
		m := newTestManager(t)
		p := mustCreate(t, m)

		var got *models.SessionProfile
		var err error
		for i := 0; i < 10; i++ {
			got, err = m.RecordPlay(ctx, p.ID, PlayRequest{GameID: 100 + i, PlayTime: 20})
			if err != nil {
				t.Fatalf("RecordPlay() error: %v", err)
			}
		}

		// 10 plays, 200 total minutes.
		for _, id := range []string{AchievementFirstGame, AchievementHourPlayed, AchievementTenGames} {
			if !got.HasAchievement(id) {
				t.Errorf("achievement %s not unlocked", id)
			}
		}
		if got.HasAchievement(AchievementFiftyGames) {
			t.Error("fifty_games unlocked after only 10 plays")
		}
		if got.HasAchievement(AchievementFiveHours) {
			t.Error("five_hours unlocked at 200 minutes")
		}
	})
}

func TestRecordPlay_StreakAdvancesAcrossDays(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)
	p := mustCreate(t, m)

	day := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return day }

	for i := 0; i < 7; i++ {
		got, err := m.RecordPlay(ctx, p.ID, PlayRequest{GameID: 101, PlayTime: 5})
		if err != nil {
			t.Fatalf("RecordPlay() error: %v", err)
		}
		if got.Stats.PlayStreak != i+1 {
			t.Fatalf("day %d: playStreak = %d, want %d", i+1, got.Stats.PlayStreak, i+1)
		}
		day = day.Add(24 * time.Hour)
		m.now = func() time.Time { return day }
	}

	got, err := m.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if !got.HasAchievement(AchievementWeekStreak) {
		t.Error("week_streak not unlocked after 7 consecutive days")
	}

	// A second play on the same day must not advance the streak.
	m.now = func() time.Time { return day.Add(-24 * time.Hour).Add(time.Hour) }
	got, err = m.RecordPlay(ctx, p.ID, PlayRequest{GameID: 102, PlayTime: 5})
	if err != nil {
		t.Fatalf("RecordPlay() error: %v", err)
	}
	if got.Stats.PlayStreak != 7 {
		t.Errorf("same-day play advanced streak to %d", got.Stats.PlayStreak)
	}
}

func TestSaveRecommendations(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)
	p := mustCreate(t, m)

	recs := make([]models.RecommendedGame, 12)
	for i := range recs {
		recs[i] = models.RecommendedGame{Game: models.Game{ID: 100 + i}}
	}
	if err := m.SaveRecommendations(ctx, p.ID, recs, 6); err != nil {
		t.Fatalf("SaveRecommendations() error: %v", err)
	}

	got, err := m.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if len(got.Recommendations) != 6 {
		t.Errorf("cached %d recommendations, want 6", len(got.Recommendations))
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)
	p := mustCreate(t, m)

	if err := m.Clear(ctx, p.ID); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if _, err := m.Get(ctx, p.ID); !errors.Is(err, ErrSessionExpired) {
		t.Errorf("expected ErrSessionExpired after clear, got %v", err)
	}
}

func TestUnknownSessionDoesNotRetainLock(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)

	ids := []string{"no-such-session-1", "no-such-session-2", "no-such-session-3"}
	for _, id := range ids {
		if _, err := m.UpdatePreferences(ctx, id, PreferencesUpdate{Category: "Puzzle"}); !errors.Is(err, ErrSessionExpired) {
			t.Fatalf("UpdatePreferences(%q) error = %v, want ErrSessionExpired", id, err)
		}
		if _, err := m.RecordPlay(ctx, id, PlayRequest{GameID: 101, PlayTime: 5}); !errors.Is(err, ErrSessionExpired) {
			t.Fatalf("RecordPlay(%q) error = %v, want ErrSessionExpired", id, err)
		}
	}

	m.mu.Lock()
	held := len(m.locks)
	m.mu.Unlock()
	if held != 0 {
		t.Errorf("locks map holds %d entries after unknown-session calls, want 0", held)
	}
}

func TestRecordPlay_ConcurrentSameSession(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)
	p := mustCreate(t, m)

	const workers = 8
	const playsPerWorker = 5

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < playsPerWorker; i++ {
				if _, err := m.RecordPlay(ctx, p.ID, PlayRequest{GameID: w*100 + i + 1, PlayTime: 1}); err != nil {
					t.Errorf("RecordPlay() error: %v", err)
				}
			}
		}(w)
	}
	wg.Wait()

	got, err := m.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.Stats.GamesPlayed != workers*playsPerWorker {
		t.Errorf("gamesPlayed = %d, want %d", got.Stats.GamesPlayed, workers*playsPerWorker)
	}
	if got.Stats.TotalPlayTime != workers*playsPerWorker {
		t.Errorf("totalPlayTime = %d, want %d", got.Stats.TotalPlayTime, workers*playsPerWorker)
	}
}
