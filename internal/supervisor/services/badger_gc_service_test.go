// GameGate - Casual Games Catalog and Recommendation Service
// Copyright 2026 GameGate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamegate/gamegate

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/thejerf/suture/v4"
)

func newTestDB(t *testing.T) *badger.DB {
	t.Helper()
	opts := badger.DefaultOptions(t.TempDir())
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		t.Fatalf("open badger: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close badger: %v", err)
		}
	})
	return db
}

func TestBadgerGCService_Interface(t *testing.T) {
	var _ suture.Service = (*BadgerGCService)(nil)
}

func TestNewBadgerGCService_DefaultInterval(t *testing.T) {
	svc := NewBadgerGCService(nil, 0)
	if svc.interval != 10*time.Minute {
		t.Errorf("expected default interval 10m, got %v", svc.interval)
	}

	svc = NewBadgerGCService(nil, -time.Minute)
	if svc.interval != 10*time.Minute {
		t.Errorf("expected default interval 10m, got %v", svc.interval)
	}
}

func TestBadgerGCService_StopsOnContextCancel(t *testing.T) {
	db := newTestDB(t)
	svc := NewBadgerGCService(db, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		errCh <- svc.Serve(ctx)
	}()

	// Let a few GC ticks fire; an empty store makes each a no-op.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Error("Serve did not return after context cancellation")
	}
}

func TestBadgerGCService_RunGCOnEmptyStore(t *testing.T) {
	db := newTestDB(t)
	svc := NewBadgerGCService(db, time.Minute)

	// Must not panic or error out when there is nothing to rewrite.
	svc.runGC()
}

func TestBadgerGCService_String(t *testing.T) {
	svc := NewBadgerGCService(nil, time.Minute)
	if svc.String() != "badger-gc" {
		t.Errorf("expected 'badger-gc', got %q", svc.String())
	}
}
