// GameGate - Casual Games Catalog and Recommendation Service
// Copyright 2026 GameGate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamegate/gamegate

package query

import (
	"math"
	"sort"
	"strings"

	"github.com/gamegate/gamegate/internal/catalog"
	"github.com/gamegate/gamegate/internal/models"
)

// popularGameThreshold is the popularity score above which a game is listed
// among a category's popular games.
const popularGameThreshold = 85

// Tag cloud layout parameters: suggested font size is 12 + 2*count,
// clamped to [12,24], with at most DefaultTagCloudLimit tags returned.
const (
	tagCloudMinSize      = 12
	tagCloudMaxSize      = 24
	DefaultTagCloudLimit = 20
)

// maxSuggestions caps the search suggestion list.
const maxSuggestions = 5

// CategoryStats aggregates the catalog per category: game count, average
// rating, play-time totals and the category's most popular titles (top 3).
// Categories are ordered by descending game count, first appearance
// breaking ties. Averages are rounded to one decimal.
func CategoryStats(c *catalog.Catalog) []models.CategoryStats {
	var order []string
	byName := make(map[string]*models.CategoryStats)
	popular := make(map[string][]models.PopularGame)

	for _, g := range c.Games() {
		stats, ok := byName[g.Category]
		if !ok {
			stats = &models.CategoryStats{Name: g.Category}
			byName[g.Category] = stats
			order = append(order, g.Category)
		}

		stats.Count++
		stats.AvgRating += g.Rating
		stats.TotalPlayTime += g.PlayTime

		if g.Popularity > popularGameThreshold {
			popular[g.Category] = append(popular[g.Category], models.PopularGame{
				ID:         g.ID,
				Title:      g.Title,
				Popularity: g.Popularity,
			})
		}
	}

	out := make([]models.CategoryStats, 0, len(order))
	for _, name := range order {
		stats := byName[name]
		stats.AvgRating = round1(stats.AvgRating / float64(stats.Count))
		stats.AvgPlayTime = round1(float64(stats.TotalPlayTime) / float64(stats.Count))

		games := popular[name]
		sort.SliceStable(games, func(i, j int) bool {
			return games[i].Popularity > games[j].Popularity
		})
		if len(games) > 3 {
			games = games[:3]
		}
		if games == nil {
			games = []models.PopularGame{}
		}
		stats.PopularGames = games

		out = append(out, *stats)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// TagCloud returns the most frequent tags across the catalog with layout
// weights. totalTags is the number of distinct tags before truncation.
func TagCloud(c *catalog.Catalog, limit int) (entries []models.TagCloudEntry, totalTags int) {
	if limit <= 0 {
		limit = DefaultTagCloudLimit
	}

	var order []string
	counts := make(map[string]int)
	for _, g := range c.Games() {
		for _, tag := range g.Tags {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	totalTags = len(counts)
	total := float64(c.Len())

	entries = make([]models.TagCloudEntry, 0, len(order))
	for _, tag := range order {
		count := counts[tag]
		size := tagCloudMinSize + count*2
		if size > tagCloudMaxSize {
			size = tagCloudMaxSize
		}
		entries = append(entries, models.TagCloudEntry{
			Tag:    tag,
			Count:  count,
			Weight: float64(count) / total,
			Size:   size,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, totalTags
}

// Suggestions returns up to five tag and category names containing the
// query, for search-as-you-type hints.
func Suggestions(c *catalog.Catalog, query string) []string {
	q := strings.ToLower(query)

	var order []string
	seen := make(map[string]struct{})
	add := func(s string) {
		if _, dup := seen[s]; dup {
			return
		}
		seen[s] = struct{}{}
		order = append(order, s)
	}

	for _, g := range c.Games() {
		for _, tag := range g.Tags {
			add(tag)
		}
	}
	for _, g := range c.Games() {
		add(g.Category)
	}

	out := make([]string, 0, maxSuggestions)
	for _, s := range order {
		if strings.Contains(strings.ToLower(s), q) {
			out = append(out, s)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
