// IssueScout - Open Source Issue Discovery and Recommendation
// Copyright 2026 IssueScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/issuescout/issuescout

/*
Package models defines the data structures shared across IssueScout.

This package is the single source of truth for the entities the service
stores, queries, and serves:

  - Issue: a cached snapshot of a tracked open-source issue with
    repository and label metadata
  - UserProfile: per-user language signals used for personalization
  - Filters: the fully-populated, validated query input
  - QueryResult: one page of a filtered, sorted issue set

Enumerations (Difficulty, RepositorySize, SortMode) carry parse helpers
that map unknown inputs to documented defaults instead of erroring; the
HTTP layer relies on this to produce a normalized Filters in one step.

All model types are plain data. Entities are never mutated in place by
the query engine; the store replaces whole records during sync.
*/
package models
