// GameGate - Casual Games Catalog and Recommendation Service
// Copyright 2026 GameGate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamegate/gamegate

// Package session manages per-visitor profiles: preferences, play history,
// achievements and cached recommendations, keyed by an opaque session ID.
package session

import (
	"context"
	"errors"

	"github.com/gamegate/gamegate/internal/models"
)

// Store errors.
var (
	// ErrProfileNotFound is returned by a Store when no profile exists
	// for the given session ID.
	ErrProfileNotFound = errors.New("session profile not found")

	// ErrSessionExpired is returned by the Manager when a client presents
	// a session ID the store no longer knows.
	ErrSessionExpired = errors.New("session expired")

	// ErrMissingField is returned when a required request field is unset.
	ErrMissingField = errors.New("missing required field")
)

// Store persists session profiles. Implementations must be safe for
// concurrent use; the Manager serializes writes per session on top.
type Store interface {
	// Get returns the profile for id, or ErrProfileNotFound.
	Get(ctx context.Context, id string) (*models.SessionProfile, error)

	// Put stores the profile, overwriting any previous version.
	Put(ctx context.Context, profile *models.SessionProfile) error

	// Delete removes the profile for id. Deleting a missing profile is
	// not an error.
	Delete(ctx context.Context, id string) error

	// Count returns the number of stored profiles.
	Count(ctx context.Context) (int, error)

	// Close releases store resources.
	Close() error
}
