// GameGate - Casual Games Catalog and Recommendation Service
// Copyright 2026 GameGate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamegate/gamegate

package session

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// StoreType selects the profile storage backend.
type StoreType string

const (
	// StoreMemory keeps profiles in memory (default, not persistent).
	StoreMemory StoreType = "memory"

	// StoreBadger persists profiles in BadgerDB.
	StoreBadger StoreType = "badger"
)

// StoreFactory builds a profile Store from configuration and owns the
// BadgerDB handle when the persistent backend is selected.
type StoreFactory struct {
	db *badger.DB
}

// NewStoreFactory prepares a factory for the given backend. For the badger
// backend it opens the database at path; memory (or empty) opens nothing.
func NewStoreFactory(storeType StoreType, path string) (*StoreFactory, error) {
	f := &StoreFactory{}

	switch storeType {
	case StoreBadger:
		opts := badger.DefaultOptions(path)
		opts.Logger = nil // badger's own logger is too chatty for our output

		db, err := badger.Open(opts)
		if err != nil {
			return nil, fmt.Errorf("open badger db for profiles: %w", err)
		}
		f.db = db
	case StoreMemory, "":
		// nothing to open
	default:
		return nil, fmt.Errorf("unknown session store type %q", storeType)
	}

	return f, nil
}

// CreateStore returns a Store for the configured backend.
func (f *StoreFactory) CreateStore() Store {
	if f.db != nil {
		return NewBadgerStore(f.db)
	}
	return NewMemoryStore()
}

// DB exposes the BadgerDB handle for maintenance tasks such as value-log
// garbage collection. Nil for the memory backend.
func (f *StoreFactory) DB() *badger.DB {
	return f.db
}

// Close closes the BadgerDB if one was opened.
func (f *StoreFactory) Close() error {
	if f.db != nil {
		return f.db.Close()
	}
	return nil
}
