// GameGate - Casual Games Catalog and Recommendation Service
// Copyright 2026 GameGate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamegate/gamegate

package catalog

import (
	"time"

	"github.com/gamegate/gamegate/internal/models"
)

// validScenariosEN is the scenario enum exposed by the English API surface.
// The dataset additionally tags some games with "quick"; that value is a
// search/filter convenience and is deliberately not part of the enum.
var validScenariosEN = []string{
	"commute", "lunch", "office", "stress", "bedtime", "focus",
}

// gamesEN is the English seed catalog.
var gamesEN = []models.Game{
	{
		ID:          101,
		Title:       "2048",
		Description: "Slide numbered tiles to combine them and reach the 2048 tile in this addictive puzzle game.",
		Category:    "Puzzle",
		PlayTime:    5,
		Difficulty:  models.DifficultyEasy,
		Rating:      4.5,
		Popularity:  95,
		Thumbnail:   "/dist/games/2048/thumbnail.jpg",
		URL:         "/dist/games/2048/index_en.html",
		Tags:        []string{"puzzle", "numbers", "strategy", "brain"},
		ReleasedAt:  models.NewDate(2024, time.January, 15),
		Features:    []string{"Save progress", "High scores", "Smooth animations", "Mobile friendly"},
		Scenarios:   []string{"commute", "lunch", "stress", "bedtime"},
		Languages:   []string{"en"},
		FileSize:    "45KB",
		Developer:   "GameGate Team",
		Version:     "1.0.0",
	},
	{
		ID:          102,
		Title:       "Color Match",
		Description: "A fast-paced color matching game that tests your reflexes and pattern recognition skills.",
		Category:    "Reaction",
		PlayTime:    3,
		Difficulty:  models.DifficultyMedium,
		Rating:      4.2,
		Popularity:  88,
		Thumbnail:   "/games/images/color-match.jpg",
		URL:         "#",
		Tags:        []string{"reaction", "colors", "speed", "reflexes"},
		ReleasedAt:  models.NewDate(2024, time.January, 20),
		Features:    []string{"Time challenge", "Increasing difficulty", "Color themes"},
		Scenarios:   []string{"focus", "stress", "quick"},
		Languages:   []string{"en"},
		FileSize:    "28KB",
		Developer:   "GameGate Team",
		Version:     "1.0.0",
	},
	{
		ID:          103,
		Title:       "Word Chain",
		Description: "Build word chains by changing one letter at a time in this linguistic puzzle challenge.",
		Category:    "Typing",
		PlayTime:    8,
		Difficulty:  models.DifficultyHard,
		Rating:      4.7,
		Popularity:  92,
		Thumbnail:   "/games/images/word-chain.jpg",
		URL:         "#",
		Tags:        []string{"typing", "words", "language", "education"},
		ReleasedAt:  models.NewDate(2024, time.January, 25),
		Features:    []string{"Multiple languages", "Dictionary lookup", "Hint system"},
		Scenarios:   []string{"focus", "lunch", "bedtime"},
		Languages:   []string{"en"},
		FileSize:    "52KB",
		Developer:   "GameGate Team",
		Version:     "1.0.0",
	},
	{
		ID:          104,
		Title:       "Memory Cards",
		Description: "Classic memory matching game with various themes and difficulty levels.",
		Category:    "Memory",
		PlayTime:    4,
		Difficulty:  models.DifficultyEasy,
		Rating:      4.3,
		Popularity:  85,
		Thumbnail:   "/games/images/memory-cards.jpg",
		URL:         "#",
		Tags:        []string{"memory", "cards", "matching", "brain"},
		ReleasedAt:  models.NewDate(2024, time.February, 1),
		Features:    []string{"Multiple themes", "Grid sizes", "Timer mode"},
		Scenarios:   []string{"commute", "lunch", "stress", "bedtime"},
		Languages:   []string{"en"},
		FileSize:    "35KB",
		Developer:   "GameGate Team",
		Version:     "1.0.0",
	},
	{
		ID:          105,
		Title:       "Bubble Shooter",
		Description: "Shoot colorful bubbles to match three or more of the same color in this classic arcade game.",
		Category:    "Match-3",
		PlayTime:    6,
		Difficulty:  models.DifficultyMedium,
		Rating:      4.6,
		Popularity:  94,
		Thumbnail:   "/games/images/bubble-shooter.jpg",
		URL:         "#",
		Tags:        []string{"match-3", "bubbles", "arcade", "casual"},
		ReleasedAt:  models.NewDate(2024, time.February, 5),
		Features:    []string{"Power-ups", "Levels", "High scores", "Smooth physics"},
		Scenarios:   []string{"lunch", "stress", "office"},
		Languages:   []string{"en"},
		FileSize:    "67KB",
		Developer:   "GameGate Team",
		Version:     "1.0.0",
	},
	{
		ID:          106,
		Title:       "Tic Tac Toe",
		Description: "Classic strategy game for two players. Try to get three in a row before your opponent!",
		Category:    "Strategy",
		PlayTime:    2,
		Difficulty:  models.DifficultyEasy,
		Rating:      4.1,
		Popularity:  78,
		Thumbnail:   "/games/images/tic-tac-toe.jpg",
		URL:         "#",
		Tags:        []string{"strategy", "2-player", "classic", "simple"},
		ReleasedAt:  models.NewDate(2024, time.February, 10),
		Features:    []string{"AI opponent", "2-player mode", "Score tracking"},
		Scenarios:   []string{"quick", "commute", "office"},
		Languages:   []string{"en"},
		FileSize:    "22KB",
		Developer:   "GameGate Team",
		Version:     "1.0.0",
	},
	{
		ID:          107,
		Title:       "Pixel Art",
		Description: "Create beautiful pixel art drawings with various colors and tools in this creative game.",
		Category:    "Coloring",
		PlayTime:    15,
		Difficulty:  models.DifficultyEasy,
		Rating:      4.8,
		Popularity:  87,
		Thumbnail:   "/games/images/pixel-art.jpg",
		URL:         "#",
		Tags:        []string{"coloring", "art", "creative", "pixels"},
		ReleasedAt:  models.NewDate(2024, time.February, 15),
		Features:    []string{"Multiple canvases", "Color palettes", "Export images", "Undo/Redo"},
		Scenarios:   []string{"stress", "bedtime", "focus"},
		Languages:   []string{"en"},
		FileSize:    "58KB",
		Developer:   "GameGate Team",
		Version:     "1.0.0",
	},
	{
		ID:          108,
		Title:       "Number Puzzle",
		Description: "Arrange numbered tiles in the correct order with the fewest moves possible.",
		Category:    "Puzzle",
		PlayTime:    5,
		Difficulty:  models.DifficultyMedium,
		Rating:      4.4,
		Popularity:  83,
		Thumbnail:   "/games/images/number-puzzle.jpg",
		URL:         "#",
		Tags:        []string{"puzzle", "numbers", "sliding", "logic"},
		ReleasedAt:  models.NewDate(2024, time.February, 20),
		Features:    []string{"Multiple grid sizes", "Move counter", "Timer", "Best scores"},
		Scenarios:   []string{"focus", "commute", "bedtime"},
		Languages:   []string{"en"},
		FileSize:    "31KB",
		Developer:   "GameGate Team",
		Version:     "1.0.0",
	},
	{
		ID:          109,
		Title:       "Quick Typing",
		Description: "Test and improve your typing speed with various texts and difficulty levels.",
		Category:    "Typing",
		PlayTime:    3,
		Difficulty:  models.DifficultyMedium,
		Rating:      4.0,
		Popularity:  81,
		Thumbnail:   "/games/images/quick-typing.jpg",
		URL:         "#",
		Tags:        []string{"typing", "speed", "practice", "education"},
		ReleasedAt:  models.NewDate(2024, time.February, 25),
		Features:    []string{"WPM tracking", "Accuracy measurement", "Multiple texts", "Progress tracking"},
		Scenarios:   []string{"focus", "office", "quick"},
		Languages:   []string{"en"},
		FileSize:    "26KB",
		Developer:   "GameGate Team",
		Version:     "1.0.0",
	},
	{
		ID:          110,
		Title:       "Breakout",
		Description: "Break all the bricks using a ball and paddle in this classic arcade game.",
		Category:    "Shooting",
		PlayTime:    7,
		Difficulty:  models.DifficultyMedium,
		Rating:      4.5,
		Popularity:  89,
		Thumbnail:   "/games/images/breakout.jpg",
		URL:         "#",
		Tags:        []string{"breakout", "arcade", "paddle", "bricks"},
		ReleasedAt:  models.NewDate(2024, time.March, 1),
		Features:    []string{"Power-ups", "Multiple levels", "Sound effects", "High scores"},
		Scenarios:   []string{"lunch", "stress", "focus"},
		Languages:   []string{"en"},
		FileSize:    "42KB",
		Developer:   "GameGate Team",
		Version:     "1.0.0",
	},
}
