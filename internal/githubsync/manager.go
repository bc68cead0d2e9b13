// IssueScout - Open Source Issue Discovery and Recommendation
// Copyright 2026 IssueScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/issuescout/issuescout

package githubsync

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/issuescout/issuescout/internal/config"
	"github.com/issuescout/issuescout/internal/logging"
	"github.com/issuescout/issuescout/internal/metrics"
	"github.com/issuescout/issuescout/internal/models"
	"github.com/issuescout/issuescout/internal/models/github"
	"github.com/issuescout/issuescout/internal/store"
)

// ErrSyncInProgress is returned by SyncNow when a sync is already running.
var ErrSyncInProgress = errors.New("sync already in progress")

// Status describes the sync worker's last and current activity.
type Status struct {
	Running      bool      `json:"running"`
	LastStarted  time.Time `json:"last_started,omitempty"`
	LastFinished time.Time `json:"last_finished,omitempty"`
	LastError    string    `json:"last_error,omitempty"`
	LastFetched  int       `json:"last_fetched"`
	TotalRuns    int       `json:"total_runs"`
}

// Manager runs the periodic GitHub issue sync. One sync fetches every
// configured language x label combination, pages through the search
// results, enriches each issue with repository details, and upserts the
// normalized batch into the store.
//
// At most one sync runs at a time; overlapping triggers are rejected with
// ErrSyncInProgress rather than queued.
type Manager struct {
	api   GitHubAPI
	store *store.Store
	cfg   config.SyncConfig

	mu     sync.Mutex
	status Status
}

// NewManager creates a sync manager.
func NewManager(api GitHubAPI, st *store.Store, cfg config.SyncConfig) *Manager {
	return &Manager{
		api:   api,
		store: st,
		cfg:   cfg,
	}
}

// Run drives the sync schedule until ctx is canceled. Intended to run
// under the supervisor tree.
func (m *Manager) Run(ctx context.Context) error {
	log := logging.WithComponent("githubsync")

	if m.cfg.SyncOnStartup {
		if _, err := m.SyncNow(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("startup sync failed")
		}
	}

	ticker := time.NewTicker(m.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := m.SyncNow(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Msg("scheduled sync failed")
			}
		}
	}
}

// Status returns a copy of the current sync status.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// SyncNow runs one full sync and returns the number of issues upserted.
func (m *Manager) SyncNow(ctx context.Context) (int, error) {
	m.mu.Lock()
	if m.status.Running {
		m.mu.Unlock()
		return 0, ErrSyncInProgress
	}
	m.status.Running = true
	m.status.LastStarted = time.Now()
	m.mu.Unlock()

	started := time.Now()
	fetched, err := m.sync(ctx)
	metrics.RecordSync(time.Since(started), fetched, err)
	metrics.UpdateStoreGauges(m.store.IssueCount(), m.store.ProfileCount())

	m.mu.Lock()
	m.status.Running = false
	m.status.LastFinished = time.Now()
	m.status.LastFetched = fetched
	m.status.TotalRuns++
	if err != nil {
		m.status.LastError = err.Error()
	} else {
		m.status.LastError = ""
	}
	m.mu.Unlock()

	return fetched, err
}

// sync performs the fetch-normalize-upsert pipeline for one run.
func (m *Manager) sync(ctx context.Context) (int, error) {
	log := logging.WithComponent("githubsync")
	log.Info().
		Strs("languages", m.cfg.Languages).
		Strs("labels", m.cfg.Labels).
		Msg("sync started")

	// Repository details are shared across issues of the same repo; fetch
	// each repository at most once per run. Failed lookups are cached as
	// nil so they are not retried within the run.
	repoCache := make(map[string]*github.Repository)
	collected := make(map[string]models.Issue)
	var errs []error

	for _, language := range m.cfg.Languages {
		for _, label := range m.cfg.Labels {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
			if err := m.fetchQuery(ctx, buildQuery(language, label), repoCache, collected); err != nil {
				errs = append(errs, fmt.Errorf("language %s label %q: %w", language, label, err))
			}
		}
	}

	if len(collected) == 0 && len(errs) > 0 {
		return 0, errors.Join(errs...)
	}

	batch := make([]models.Issue, 0, len(collected))
	for _, issue := range collected {
		batch = append(batch, issue)
	}
	if len(batch) > 0 {
		if err := m.store.UpsertIssues(ctx, batch); err != nil {
			return 0, fmt.Errorf("store upsert: %w", err)
		}
	}

	log.Info().
		Int("fetched", len(batch)).
		Int("errors", len(errs)).
		Msg("sync finished")

	if len(errs) > 0 {
		return len(batch), errors.Join(errs...)
	}
	return len(batch), nil
}

// fetchQuery pages through one search query, collecting normalized issues
// keyed by ID so the same issue found under several queries is stored once.
func (m *Manager) fetchQuery(ctx context.Context, searchQuery string, repoCache map[string]*github.Repository, collected map[string]models.Issue) error {
	log := logging.WithComponent("githubsync")

	for page := 1; page <= m.cfg.MaxPages; page++ {
		resp, err := m.api.SearchIssues(ctx, searchQuery, page, m.cfg.PerPage)
		if err != nil {
			return err
		}

		for i := range resp.Items {
			item := &resp.Items[i]
			if item.IsPullRequest() {
				continue
			}

			repo, seen := repoCache[item.RepositoryURL]
			if !seen {
				repo, err = m.api.RepositoryByURL(ctx, item.RepositoryURL)
				if err != nil {
					if ctx.Err() != nil {
						return ctx.Err()
					}
					// Keep the issue without repository enrichment.
					log.Warn().Err(err).Str("repository_url", item.RepositoryURL).Msg("repository lookup failed")
					repo = nil
				}
				repoCache[item.RepositoryURL] = repo
			}

			issue := Normalize(item, repo)
			collected[issue.ID] = issue
		}

		// Stop paging once the result set is exhausted.
		if len(resp.Items) < m.cfg.PerPage {
			break
		}
	}
	return nil
}

// buildQuery assembles a GitHub issue search query for open issues with
// the given language and label.
func buildQuery(language, label string) string {
	return fmt.Sprintf("state:open is:issue label:%q language:%q", label, language)
}
