// IssueScout - Open Source Issue Discovery and Recommendation
// Copyright 2026 IssueScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/issuescout/issuescout

package services

import (
	"context"
	"errors"
	"fmt"
)

// SyncRunner matches the githubsync.Manager lifecycle: Run blocks until the
// context is canceled, driving periodic synchronization internally.
type SyncRunner interface {
	Run(ctx context.Context) error
}

// SyncService wraps the sync manager as a supervised service.
type SyncService struct {
	runner SyncRunner
	name   string
}

// NewSyncService creates a sync service wrapper.
func NewSyncService(runner SyncRunner) *SyncService {
	return &SyncService{
		runner: runner,
		name:   "github-sync",
	}
}

// Serve implements suture.Service. A clean context cancellation is
// propagated as ctx.Err() so suture treats it as a normal stop; any other
// return is a crash and triggers a restart with backoff.
func (s *SyncService) Serve(ctx context.Context) error {
	err := s.runner.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("sync manager failed: %w", err)
	}
	return ctx.Err()
}

// String implements fmt.Stringer for suture's log messages.
func (s *SyncService) String() string {
	return s.name
}
