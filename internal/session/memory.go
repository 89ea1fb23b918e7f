// GameGate - Casual Games Catalog and Recommendation Service
// Copyright 2026 GameGate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamegate/gamegate

package session

import (
	"context"
	"sync"

	"github.com/gamegate/gamegate/internal/models"
)

// MemoryStore keeps profiles in a mutex-protected map. Profiles do not
// survive a restart; suitable for development and single-node deployments.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]*models.SessionProfile
}

// NewMemoryStore creates an empty in-memory profile store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{profiles: make(map[string]*models.SessionProfile)}
}

// Get returns a copy of the stored profile so callers can mutate freely.
func (s *MemoryStore) Get(_ context.Context, id string) (*models.SessionProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[id]
	if !ok {
		return nil, ErrProfileNotFound
	}
	cp := p.Clone()
	return &cp, nil
}

// Put stores a copy of the profile.
func (s *MemoryStore) Put(_ context.Context, profile *models.SessionProfile) error {
	cp := profile.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.ID] = &cp
	return nil
}

// Delete removes the profile for id.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, id)
	return nil
}

// Count returns the number of stored profiles.
func (s *MemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles), nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error { return nil }
