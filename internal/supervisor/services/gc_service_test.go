// IssueScout - Open Source Issue Discovery and Recommendation
// Copyright 2026 IssueScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/issuescout/issuescout

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		t.Fatalf("open badger: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestBadgerGCServiceStopsOnCancel(t *testing.T) {
	svc := NewBadgerGCService(openTestDB(t), 10*time.Millisecond, 0.5)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	// Let a few GC ticks fire; in-memory badger rejects value log GC, and
	// the service must swallow that and keep running.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("service did not stop")
	}
}

func TestBadgerGCServiceDefaults(t *testing.T) {
	svc := NewBadgerGCService(openTestDB(t), 0, 2.0)

	if svc.interval != 10*time.Minute {
		t.Errorf("expected 10m default interval, got %v", svc.interval)
	}
	if svc.discardRatio != 0.5 {
		t.Errorf("expected 0.5 default ratio, got %v", svc.discardRatio)
	}
	if svc.String() != "badger-gc" {
		t.Errorf("unexpected name: %q", svc.String())
	}
}
