// IssueScout - Open Source Issue Discovery and Recommendation
// Copyright 2026 IssueScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/issuescout/issuescout

// Package store holds the issue and user-profile collections behind a
// read/write lock and, when a BadgerDB handle is supplied, writes every
// mutation through to disk so the cache survives restarts.
//
// Queries never touch Badger on the read path: Snapshot copies the
// in-memory collection, and the query engine works on that copy alone.
package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/issuescout/issuescout/internal/models"
)

// Key prefixes for BadgerDB storage
const (
	issueKeyPrefix   = "issue:"
	profileKeyPrefix = "profile:"
)

// Store is the in-memory collection of issues and user profiles with
// optional BadgerDB write-through persistence. A nil db gives a pure
// in-memory store, which is what tests use.
type Store struct {
	mu       sync.RWMutex
	issues   map[string]models.Issue
	profiles map[string]models.UserProfile
	db       *badger.DB
}

// New creates a store. When db is non-nil, previously persisted issues
// and profiles are loaded into memory before the store is returned.
func New(db *badger.DB) (*Store, error) {
	s := &Store{
		issues:   make(map[string]models.Issue),
		profiles: make(map[string]models.UserProfile),
		db:       db,
	}
	if db != nil {
		if err := s.load(); err != nil {
			return nil, fmt.Errorf("load persisted records: %w", err)
		}
	}
	return s, nil
}

// load reads all persisted issues and profiles into the in-memory maps.
// Called once from New, before the store is shared, so no locking.
func (s *Store) load() error {
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			key := string(item.Key())

			switch {
			case strings.HasPrefix(key, issueKeyPrefix):
				var issue models.Issue
				if err := item.Value(func(val []byte) error {
					return json.Unmarshal(val, &issue)
				}); err != nil {
					return fmt.Errorf("unmarshal issue %s: %w", key, err)
				}
				s.issues[issue.ID] = issue
			case strings.HasPrefix(key, profileKeyPrefix):
				var profile models.UserProfile
				if err := item.Value(func(val []byte) error {
					return json.Unmarshal(val, &profile)
				}); err != nil {
					return fmt.Errorf("unmarshal profile %s: %w", key, err)
				}
				s.profiles[profile.ID] = profile
			}
		}
		return nil
	})
}

// Snapshot returns a copy of every cached issue, ordered by ID. The
// returned slice is owned by the caller; concurrent store mutations
// never affect it.
func (s *Store) Snapshot() []models.Issue {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Issue, 0, len(s.issues))
	for _, issue := range s.issues {
		out = append(out, issue)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// IssueCount returns the number of cached issues.
func (s *Store) IssueCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.issues)
}

// UpsertIssues inserts or replaces a batch of issues. Durable writes
// happen first so a persistence failure never leaves memory ahead of
// disk.
func (s *Store) UpsertIssues(ctx context.Context, issues []models.Issue) error {
	for i := range issues {
		if issues[i].ID == "" {
			return fmt.Errorf("issue at index %d has no ID", i)
		}
	}

	if s.db != nil {
		err := s.db.Update(func(txn *badger.Txn) error {
			for i := range issues {
				data, err := json.Marshal(&issues[i])
				if err != nil {
					return fmt.Errorf("marshal issue %s: %w", issues[i].ID, err)
				}
				key := []byte(issueKeyPrefix + issues[i].ID)
				if err := txn.Set(key, data); err != nil {
					return fmt.Errorf("set issue %s: %w", issues[i].ID, err)
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	s.mu.Lock()
	for i := range issues {
		s.issues[issues[i].ID] = issues[i]
	}
	s.mu.Unlock()
	return nil
}

// DeleteIssue removes an issue from the cache and from disk. Deleting an
// unknown issue is a no-op.
func (s *Store) DeleteIssue(ctx context.Context, id string) error {
	if s.db != nil {
		err := s.db.Update(func(txn *badger.Txn) error {
			return txn.Delete([]byte(issueKeyPrefix + id))
		})
		if err != nil {
			return fmt.Errorf("delete issue %s: %w", id, err)
		}
	}

	s.mu.Lock()
	delete(s.issues, id)
	s.mu.Unlock()
	return nil
}

// UserProfile returns the profile for id, or false when unknown.
func (s *Store) UserProfile(id string) (models.UserProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[id]
	return profile, ok
}

// ProfileCount returns the number of cached user profiles.
func (s *Store) ProfileCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles)
}

// PutUserProfile inserts or replaces a user profile.
func (s *Store) PutUserProfile(ctx context.Context, profile models.UserProfile) error {
	if profile.ID == "" {
		return fmt.Errorf("profile has no ID")
	}

	if s.db != nil {
		data, err := json.Marshal(&profile)
		if err != nil {
			return fmt.Errorf("marshal profile %s: %w", profile.ID, err)
		}
		err = s.db.Update(func(txn *badger.Txn) error {
			return txn.Set([]byte(profileKeyPrefix+profile.ID), data)
		})
		if err != nil {
			return fmt.Errorf("set profile %s: %w", profile.ID, err)
		}
	}

	s.mu.Lock()
	s.profiles[profile.ID] = profile
	s.mu.Unlock()
	return nil
}
