// GameGate - Casual Games Catalog and Recommendation Service
// Copyright 2026 GameGate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamegate/gamegate

package catalog

import (
	"time"

	"github.com/gamegate/gamegate/internal/models"
)

// validScenariosZH is the scenario enum for the Chinese locale:
// commute, lunch break, slacking at the office, stress relief, bedtime,
// pick-me-up. Scenario tags in the dataset are normalized to this enum.
var validScenariosZH = []string{
	"通勤", "午休", "摸鱼", "减压", "睡前", "提神",
}

// gamesZH is the Chinese seed catalog. Like the English dataset it also
// tags a few games with the non-enum convenience value "快速" (quick).
var gamesZH = []models.Game{
	{
		ID:          101,
		Title:       "2048",
		Description: "滑动数字方块，合并相同数字，达到2048方块的益智游戏。",
		Category:    "益智",
		PlayTime:    5,
		Difficulty:  "简单",
		Rating:      4.5,
		Popularity:  95,
		Thumbnail:   "/dist/games/2048/thumbnail.jpg",
		URL:         "/games/2048/index.html",
		Tags:        []string{"益智", "数字", "策略", "大脑"},
		ReleasedAt:  models.NewDate(2024, time.January, 15),
		Features:    []string{"保存进度", "高分榜", "流畅动画", "移动友好"},
		Scenarios:   []string{"通勤", "午休", "摸鱼", "减压", "睡前", "提神"},
		Languages:   []string{"zh", "en"},
		FileSize:    "45KB",
		Developer:   "GameGate 团队",
		Version:     "1.0.0",
	},
	{
		ID:          102,
		Title:       "颜色匹配",
		Description: "快速颜色匹配游戏，测试你的反应速度和模式识别能力。",
		Category:    "反应",
		PlayTime:    3,
		Difficulty:  "中等",
		Rating:      4.2,
		Popularity:  88,
		Thumbnail:   "/dist/games/color-match/thumbnail.jpg",
		URL:         "/games/color-match/index.html",
		Tags:        []string{"反应", "颜色", "速度", "反射"},
		ReleasedAt:  models.NewDate(2024, time.January, 20),
		Features:    []string{"时间挑战", "递增难度", "颜色主题"},
		Scenarios:   []string{"提神", "减压", "快速"},
		Languages:   []string{"zh", "en"},
		FileSize:    "28KB",
		Developer:   "GameGate 团队",
		Version:     "1.0.0",
	},
	{
		ID:          103,
		Title:       "记忆卡片",
		Description: "经典记忆配对游戏，具有多种主题和难度等级。",
		Category:    "记忆",
		PlayTime:    4,
		Difficulty:  "简单",
		Rating:      4.3,
		Popularity:  85,
		Thumbnail:   "/dist/games/memory-cards/thumbnail.jpg",
		URL:         "/games/memory-cards/index.html",
		Tags:        []string{"记忆", "卡片", "配对", "大脑"},
		ReleasedAt:  models.NewDate(2024, time.February, 1),
		Features:    []string{"多种主题", "网格大小", "计时模式"},
		Scenarios:   []string{"通勤", "午休", "减压", "睡前"},
		Languages:   []string{"zh", "en"},
		FileSize:    "35KB",
		Developer:   "GameGate 团队",
		Version:     "1.0.0",
	},
	{
		ID:          104,
		Title:       "快速打字",
		Description: "通过各种文本和难度等级测试和提高你的打字速度。",
		Category:    "打字",
		PlayTime:    3,
		Difficulty:  "中等",
		Rating:      4.0,
		Popularity:  81,
		Thumbnail:   "/dist/games/color-match/thumbnail.jpg",
		URL:         "/games/color-match/index.html",
		Tags:        []string{"打字", "速度", "练习", "教育"},
		ReleasedAt:  models.NewDate(2024, time.February, 25),
		Features:    []string{"WPM追踪", "准确度测量", "多文本", "进度追踪"},
		Scenarios:   []string{"提神", "摸鱼", "快速"},
		Languages:   []string{"zh", "en"},
		FileSize:    "26KB",
		Developer:   "GameGate 团队",
		Version:     "1.0.0",
	},
	{
		ID:          105,
		Title:       "井字棋",
		Description: "双人经典策略游戏。在对手之前获得三子连线！",
		Category:    "策略",
		PlayTime:    2,
		Difficulty:  "简单",
		Rating:      4.1,
		Popularity:  78,
		Thumbnail:   "/dist/games/color-match/thumbnail.jpg",
		URL:         "/games/color-match/index.html",
		Tags:        []string{"策略", "双人对战", "经典", "简单"},
		ReleasedAt:  models.NewDate(2024, time.February, 10),
		Features:    []string{"AI对手", "双人对战模式", "分数追踪"},
		Scenarios:   []string{"快速", "通勤", "摸鱼"},
		Languages:   []string{"zh", "en"},
		FileSize:    "22KB",
		Developer:   "GameGate 团队",
		Version:     "1.0.0",
	},
}
