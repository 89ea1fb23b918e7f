// GameGate - Casual Games Catalog and Recommendation Service
// Copyright 2026 GameGate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamegate/gamegate

package services

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/gamegate/gamegate/internal/logging"
)

// gcDiscardRatio is the value-log rewrite threshold passed to Badger.
const gcDiscardRatio = 0.5

// BadgerGCService periodically runs value log garbage collection on the
// session store's Badger database. Badger never runs GC on its own.
type BadgerGCService struct {
	db       *badger.DB
	interval time.Duration
	name     string
}

// NewBadgerGCService creates the GC loop. A non-positive interval falls
// back to 10 minutes.
func NewBadgerGCService(db *badger.DB, interval time.Duration) *BadgerGCService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &BadgerGCService{
		db:       db,
		interval: interval,
		name:     "badger-gc",
	}
}

// Serve implements suture.Service. Runs GC on each tick until the context
// is canceled.
func (s *BadgerGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.runGC()
		}
	}
}

// runGC rewrites value log files until Badger reports nothing left to do.
func (s *BadgerGCService) runGC() {
	start := time.Now()
	rewrites := 0
	for {
		err := s.db.RunValueLogGC(gcDiscardRatio)
		if errors.Is(err, badger.ErrNoRewrite) {
			break
		}
		if err != nil {
			logging.Warn().Err(err).Msg("Badger value log GC failed")
			return
		}
		rewrites++
	}
	if rewrites > 0 {
		logging.Debug().
			Int("rewrites", rewrites).
			Dur("duration", time.Since(start)).
			Msg("Badger value log GC completed")
	}
}

// String identifies the service in suture log messages.
func (s *BadgerGCService) String() string {
	return s.name
}
