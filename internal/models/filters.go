// IssueScout - Open Source Issue Discovery and Recommendation
// Copyright 2026 IssueScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/issuescout/issuescout

package models

import "strings"

// RepositorySize buckets repositories by star count.
type RepositorySize string

const (
	// SizeAny disables size filtering.
	SizeAny RepositorySize = "any"
	// SizeSmall matches repositories with fewer than 100 stars.
	SizeSmall RepositorySize = "small"
	// SizeMedium matches repositories with 100 to 999 stars.
	SizeMedium RepositorySize = "medium"
	// SizeLarge matches repositories with 1000 or more stars.
	SizeLarge RepositorySize = "large"
)

// ParseRepositorySize maps a string to a RepositorySize, defaulting to SizeAny.
func ParseRepositorySize(s string) RepositorySize {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "small":
		return SizeSmall
	case "medium":
		return SizeMedium
	case "large":
		return SizeLarge
	default:
		return SizeAny
	}
}

// SortMode selects the total order applied to a filtered result set.
type SortMode string

const (
	// SortRecent orders by UpdatedAt, most recent first. Default.
	SortRecent SortMode = "recent"
	// SortStars orders by repository star count, descending.
	SortStars SortMode = "stars"
	// SortMatch orders by recommendation score, descending.
	SortMatch SortMode = "match"
	// SortComments orders by comment count, descending.
	SortComments SortMode = "comments"
)

// ParseSortMode maps a string to a SortMode, defaulting to SortRecent.
func ParseSortMode(s string) SortMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stars":
		return SortStars
	case "match":
		return SortMatch
	case "comments":
		return SortComments
	default:
		return SortRecent
	}
}

// Pagination defaults and bounds. The HTTP layer validates requests against
// these; the engine clamps to them again so it stays total over its input.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MinLimit     = 1
	MaxLimit     = 100
)

// Filters is the fully-populated, request-scoped query input. It is produced
// by a single validation/normalization step in the HTTP layer; the engine
// treats it as read-only. Empty sets mean "no constraint".
type Filters struct {
	// Search is the free-text search term. Empty means no search.
	Search string `json:"search,omitempty"`

	// Languages restricts results to issues whose repository language is
	// in the set. Empty means no language constraint.
	Languages []string `json:"languages,omitempty"`

	// Difficulty restricts results to the given difficulty levels.
	Difficulty []Difficulty `json:"difficulty,omitempty"`

	// RepositorySize restricts results by star-count bucket.
	RepositorySize RepositorySize `json:"repository_size"`

	// SortBy selects the result ordering.
	SortBy SortMode `json:"sort_by"`

	// Page is the 1-based page number.
	Page int `json:"page"`

	// Limit is the page size, bounded to [MinLimit, MaxLimit].
	Limit int `json:"limit"`
}

// Normalize fills defaults and clamps out-of-range values in place.
// It substitutes documented defaults rather than erroring, so a Filters
// that passed through Normalize is always safe to hand to the engine.
func (f *Filters) Normalize() {
	f.Search = strings.TrimSpace(f.Search)
	if f.RepositorySize == "" {
		f.RepositorySize = SizeAny
	}
	if f.SortBy == "" {
		f.SortBy = SortRecent
	}
	if f.Page < DefaultPage {
		f.Page = DefaultPage
	}
	if f.Limit < MinLimit {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
}

// HasLanguageConstraint reports whether an explicit language filter is active.
func (f *Filters) HasLanguageConstraint() bool { return len(f.Languages) > 0 }

// HasDifficultyConstraint reports whether a difficulty filter is active.
func (f *Filters) HasDifficultyConstraint() bool { return len(f.Difficulty) > 0 }

// QueryResult is one page of a filtered, sorted issue set. Total counts the
// issues that survived filtering (and affinity narrowing in personalized
// mode) before pagination, so callers can compute page counts.
type QueryResult struct {
	Items []Issue `json:"items"`
	Total int     `json:"total"`
}
