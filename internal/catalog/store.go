// GameGate - Casual Games Catalog and Recommendation Service
// Copyright 2026 GameGate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamegate/gamegate

// Package catalog provides the read-only game catalog.
//
// The catalog is seeded once at process start and never mutated afterwards.
// Each supported locale carries its own dataset and its own valid-scenario
// set; the two are kept in one store keyed by locale rather than in parallel
// data modules. Anything mutable (play counters, preferences) belongs to the
// session package, never to catalog records.
package catalog

import (
	"errors"
	"fmt"
)

// Errors returned by catalog lookups.
var (
	// ErrGameNotFound indicates the requested game ID is not in the catalog.
	ErrGameNotFound = errors.New("game not found")

	// ErrUnknownLocale indicates no catalog exists for the requested locale.
	ErrUnknownLocale = errors.New("unknown catalog locale")
)

// Supported locales.
const (
	LocaleEN = "en"
	LocaleZH = "zh"
)

// Store holds the immutable per-locale catalogs.
// It is safe for concurrent use; all methods are read-only.
type Store struct {
	catalogs      map[string]*Catalog
	defaultLocale string
}

// NewStore builds a store seeded with the built-in locale datasets.
// defaultLocale selects the catalog returned for unknown locales; it must
// name one of the built-in locales.
func NewStore(defaultLocale string) (*Store, error) {
	catalogs := map[string]*Catalog{
		LocaleEN: newCatalog(LocaleEN, gamesEN, validScenariosEN),
		LocaleZH: newCatalog(LocaleZH, gamesZH, validScenariosZH),
	}

	if _, ok := catalogs[defaultLocale]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, defaultLocale)
	}

	for locale, c := range catalogs {
		if err := c.validate(); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", locale, err)
		}
	}

	return &Store{
		catalogs:      catalogs,
		defaultLocale: defaultLocale,
	}, nil
}

// Catalog returns the catalog for the given locale, falling back to the
// default locale when the requested one is not configured.
func (s *Store) Catalog(locale string) *Catalog {
	if c, ok := s.catalogs[locale]; ok {
		return c
	}
	return s.catalogs[s.defaultLocale]
}

// Locales returns the configured locale keys.
func (s *Store) Locales() []string {
	locales := make([]string, 0, len(s.catalogs))
	for l := range s.catalogs {
		locales = append(locales, l)
	}
	return locales
}

// DefaultLocale returns the fallback locale key.
func (s *Store) DefaultLocale() string {
	return s.defaultLocale
}
