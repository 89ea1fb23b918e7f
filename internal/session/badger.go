// GameGate - Casual Games Catalog and Recommendation Service
// Copyright 2026 GameGate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamegate/gamegate

package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/gamegate/gamegate/internal/models"
)

// profileKeyPrefix namespaces profile records inside the shared BadgerDB.
const profileKeyPrefix = "profile:"

// BadgerStore persists profiles in BadgerDB so sessions survive restarts.
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore creates a profile store on an existing BadgerDB handle.
// The caller owns the handle; Close here is a no-op.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

func profileKey(id string) []byte {
	return []byte(profileKeyPrefix + id)
}

// Get retrieves the profile for id, or ErrProfileNotFound.
func (s *BadgerStore) Get(_ context.Context, id string) (*models.SessionProfile, error) {
	var profile models.SessionProfile

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(profileKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrProfileNotFound
		}
		if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &profile)
		})
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Put stores the profile, overwriting any previous version.
func (s *BadgerStore) Put(_ context.Context, profile *models.SessionProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(profileKey(profile.ID), data)
	})
}

// Delete removes the profile for id. Missing profiles are ignored.
func (s *BadgerStore) Delete(_ context.Context, id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete(profileKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
}

// Count returns the number of stored profiles by scanning the key prefix.
func (s *BadgerStore) Count(_ context.Context) (int, error) {
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(profileKeyPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("count profiles: %w", err)
	}
	return count, nil
}

// Close is a no-op; the factory that opened the DB closes it.
func (s *BadgerStore) Close() error { return nil }
