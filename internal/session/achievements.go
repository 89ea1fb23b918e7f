// GameGate - Casual Games Catalog and Recommendation Service
// Copyright 2026 GameGate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamegate/gamegate

package session

import (
	"time"

	"github.com/gamegate/gamegate/internal/models"
)

// Achievement IDs.
const (
	AchievementFirstGame  = "first_game"
	AchievementHourPlayed = "hour_played"
	AchievementFiveHours  = "five_hours"
	AchievementTenGames   = "ten_games"
	AchievementFiftyGames = "fifty_games"
	AchievementWeekStreak = "week_streak"
)

// Achievement thresholds.
const (
	hourPlayedMinutes = 60
	fiveHoursMinutes  = 300
	tenGamesCount     = 10
	fiftyGamesCount   = 50
	weekStreakDays    = 7
)

// Achievement describes an unlockable badge, localized per catalog locale.
type Achievement struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	UnlockedAt  *time.Time `json:"unlockedAt"`
}

var achievementNamesEN = map[string]string{
	AchievementFirstGame:  "First Steps",
	AchievementHourPlayed: "Getting Hooked",
	AchievementFiveHours:  "Power Player",
	AchievementTenGames:   "Explorer",
	AchievementFiftyGames: "Game Expert",
	AchievementWeekStreak: "Daily Habit",
}

var achievementDescriptionsEN = map[string]string{
	AchievementFirstGame:  "Play your first game",
	AchievementHourPlayed: "Reach 1 hour of total play time",
	AchievementFiveHours:  "Reach 5 hours of total play time",
	AchievementTenGames:   "Play 10 games",
	AchievementFiftyGames: "Play 50 games",
	AchievementWeekStreak: "Play on 7 days in a row",
}

var achievementNamesZH = map[string]string{
	AchievementFirstGame:  "初次体验",
	AchievementHourPlayed: "游戏达人",
	AchievementFiveHours:  "游戏高手",
	AchievementTenGames:   "游戏探索者",
	AchievementFiftyGames: "游戏专家",
	AchievementWeekStreak: "坚持不懈",
}

var achievementDescriptionsZH = map[string]string{
	AchievementFirstGame:  "完成你的第一个游戏",
	AchievementHourPlayed: "累计游戏时间达到1小时",
	AchievementFiveHours:  "累计游戏时间达到5小时",
	AchievementTenGames:   "完成10个游戏",
	AchievementFiftyGames: "完成50个游戏",
	AchievementWeekStreak: "连续7天玩游戏",
}

// AchievementName returns the localized display name, falling back to the ID.
func AchievementName(id, locale string) string {
	names := achievementNamesEN
	if locale == "zh" {
		names = achievementNamesZH
	}
	if name, ok := names[id]; ok {
		return name
	}
	return id
}

// AchievementDescription returns the localized description, falling back
// to the ID.
func AchievementDescription(id, locale string) string {
	descs := achievementDescriptionsEN
	if locale == "zh" {
		descs = achievementDescriptionsZH
	}
	if d, ok := descs[id]; ok {
		return d
	}
	return id
}

// evaluateAchievements unlocks any achievement whose threshold the profile
// now meets. prevLastPlay is the last-play timestamp before the play being
// recorded; the streak advances on the first play of a new calendar day.
func evaluateAchievements(p *models.SessionProfile, prevLastPlay *time.Time, now time.Time) {
	unlock := func(id string) {
		if !p.HasAchievement(id) {
			p.Stats.Achievements = append(p.Stats.Achievements, id)
		}
	}

	if p.Stats.GamesPlayed == 1 {
		unlock(AchievementFirstGame)
	}
	if p.Stats.TotalPlayTime >= hourPlayedMinutes {
		unlock(AchievementHourPlayed)
	}
	if p.Stats.TotalPlayTime >= fiveHoursMinutes {
		unlock(AchievementFiveHours)
	}
	if p.Stats.GamesPlayed >= tenGamesCount {
		unlock(AchievementTenGames)
	}
	if p.Stats.GamesPlayed >= fiftyGamesCount {
		unlock(AchievementFiftyGames)
	}

	if prevLastPlay == nil {
		p.Stats.PlayStreak = 1
	} else if !sameDay(*prevLastPlay, now) {
		p.Stats.PlayStreak++
	}
	if p.Stats.PlayStreak >= weekStreakDays {
		unlock(AchievementWeekStreak)
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
