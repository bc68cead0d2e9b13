// IssueScout - Open Source Issue Discovery and Recommendation
// Copyright 2026 IssueScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/issuescout/issuescout

package services

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/issuescout/issuescout/internal/logging"
)

// BadgerGCService periodically reclaims space from badger's value log.
// Badger never runs value log GC on its own; without this loop the value
// log grows unbounded as issues are rewritten on every sync.
type BadgerGCService struct {
	db           *badger.DB
	interval     time.Duration
	discardRatio float64
	name         string
}

// NewBadgerGCService creates a GC service for the given database.
// discardRatio must be in (0, 1); badger rewrites a value log file when at
// least that fraction of it is stale.
func NewBadgerGCService(db *badger.DB, interval time.Duration, discardRatio float64) *BadgerGCService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	if discardRatio <= 0 || discardRatio >= 1 {
		discardRatio = 0.5
	}
	return &BadgerGCService{
		db:           db,
		interval:     interval,
		discardRatio: discardRatio,
		name:         "badger-gc",
	}
}

// Serve implements suture.Service. Each tick runs value log GC until badger
// reports nothing left to rewrite. GC errors are logged and retried on the
// next tick rather than crashing the service.
func (g *BadgerGCService) Serve(ctx context.Context) error {
	log := logging.WithComponent("badger-gc")

	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			g.runGC(&log)
		}
	}
}

func (g *BadgerGCService) runGC(log *zerolog.Logger) {
	rewritten := 0
	for {
		err := g.db.RunValueLogGC(g.discardRatio)
		if err == nil {
			rewritten++
			continue
		}
		if !errors.Is(err, badger.ErrNoRewrite) {
			log.Warn().Err(err).Msg("Value log GC failed")
		}
		break
	}
	if rewritten > 0 {
		log.Debug().Int("files_rewritten", rewritten).Msg("Value log GC completed")
	}
}

// String implements fmt.Stringer for suture's log messages.
func (g *BadgerGCService) String() string {
	return g.name
}
