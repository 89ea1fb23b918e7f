// GameGate - Casual Games Catalog and Recommendation Service
// Copyright 2026 GameGate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamegate/gamegate

package recommend

import "fmt"

// Default result sizes. DefaultLimit is the personalized list returned to
// the client; CachedLimit is how many of those are kept on the profile.
const (
	DefaultLimit = 12
	CachedLimit  = 6
)

// timeFitWindow is the playTime distance (minutes) within which a game is
// considered a good fit for the session's play-time preference.
const timeFitWindow = 2

// Config carries the scorer tuning knobs. The weights are reserved for a
// composite scoring mode and do not affect the default pass-chain ordering.
type Config struct {
	DefaultLimit     int     `koanf:"default_limit" json:"default_limit"`
	CategoryWeight   float64 `koanf:"category_weight" json:"category_weight"`
	TimeWeight       float64 `koanf:"time_weight" json:"time_weight"`
	DifficultyWeight float64 `koanf:"difficulty_weight" json:"difficulty_weight"`
	UnplayedWeight   float64 `koanf:"unplayed_weight" json:"unplayed_weight"`
}

// DefaultConfig returns the scorer defaults.
func DefaultConfig() Config {
	return Config{
		DefaultLimit:     DefaultLimit,
		CategoryWeight:   1.0,
		TimeWeight:       1.0,
		DifficultyWeight: 1.0,
		UnplayedWeight:   1.0,
	}
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	if c.DefaultLimit <= 0 {
		return fmt.Errorf("default_limit must be positive, got %d", c.DefaultLimit)
	}
	for name, w := range map[string]float64{
		"category_weight":   c.CategoryWeight,
		"time_weight":       c.TimeWeight,
		"difficulty_weight": c.DifficultyWeight,
		"unplayed_weight":   c.UnplayedWeight,
	} {
		if w < 0 {
			return fmt.Errorf("%s must be non-negative, got %v", name, w)
		}
	}
	return nil
}
