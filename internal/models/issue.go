// IssueScout - Open Source Issue Discovery and Recommendation
// Copyright 2026 IssueScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/issuescout/issuescout

package models

import (
	"strings"
	"time"
)

// Difficulty classifies how approachable an issue is for a new contributor.
// The zero value means the difficulty could not be determined from labels.
type Difficulty string

const (
	// DifficultyUnset indicates no difficulty signal was found.
	DifficultyUnset Difficulty = ""
	// DifficultyBeginner marks issues suitable for first-time contributors.
	DifficultyBeginner Difficulty = "beginner"
	// DifficultyIntermediate marks issues requiring some codebase familiarity.
	DifficultyIntermediate Difficulty = "intermediate"
	// DifficultyAdvanced marks issues requiring deep domain knowledge.
	DifficultyAdvanced Difficulty = "advanced"
)

// ParseDifficulty maps a string to a Difficulty. Unknown values map to
// DifficultyUnset rather than erroring; difficulty is a best-effort signal.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner":
		return DifficultyBeginner
	case "intermediate":
		return DifficultyIntermediate
	case "advanced":
		return DifficultyAdvanced
	default:
		return DifficultyUnset
	}
}

// String returns the difficulty name, or "unset" for the zero value.
func (d Difficulty) String() string {
	if d == DifficultyUnset {
		return "unset"
	}
	return string(d)
}

// Issue is an immutable snapshot of a tracked open-source issue, cached
// locally with repository and label metadata. Instances are never mutated
// by the query engine; the store replaces whole records on sync.
type Issue struct {
	// ID is the stable external identifier (tracker-assigned, unique).
	ID string `json:"id"`

	// Title is the issue title.
	Title string `json:"title"`

	// Body is the issue description. May be empty.
	Body string `json:"body,omitempty"`

	// State is the tracker state (open, closed).
	State string `json:"state"`

	// Labels are the issue's label names. Order is not significant.
	Labels []string `json:"labels"`

	// Language is the repository's primary language. May be empty when
	// the tracker does not report one.
	Language string `json:"language,omitempty"`

	// RepositoryOwner is the owning user or organization login.
	RepositoryOwner string `json:"repository_owner"`

	// RepositoryName is the repository name without the owner prefix.
	RepositoryName string `json:"repository_name"`

	// RepositoryStars is the repository star count. Never negative;
	// absent upstream values are stored as 0.
	RepositoryStars int `json:"repository_stars"`

	// RepositoryForks is the repository fork count.
	RepositoryForks int `json:"repository_forks"`

	// Comments is the number of comments on the issue.
	Comments int `json:"comments"`

	// Difficulty is inferred from labels at ingestion time.
	Difficulty Difficulty `json:"difficulty,omitempty"`

	// IsRecommended is a beginner-signal flag. It is seeded at ingestion
	// from labels and recomputed per user by the personalized query path.
	IsRecommended bool `json:"is_recommended"`

	// UpdatedAt is the tracker's last-activity timestamp.
	UpdatedAt time.Time `json:"updated_at"`
}

// RepositoryFullName returns "owner/name" for display and logging.
func (i *Issue) RepositoryFullName() string {
	return i.RepositoryOwner + "/" + i.RepositoryName
}

// UserProfile holds the per-user signals the personalized query path uses.
// Profiles are read-only inputs to the engine; only the store mutates them.
type UserProfile struct {
	// ID is the user identifier (tracker login).
	ID string `json:"id"`

	// TopLanguages lists the user's languages, most used first.
	// May be empty for users with no public activity.
	TopLanguages []string `json:"top_languages"`

	// UpdatedAt is when the profile was last refreshed.
	UpdatedAt time.Time `json:"updated_at"`
}

// UsesLanguage reports whether lang is one of the user's top languages.
// Comparison is case-insensitive to tolerate tracker casing differences.
func (p *UserProfile) UsesLanguage(lang string) bool {
	for _, l := range p.TopLanguages {
		if strings.EqualFold(l, lang) {
			return true
		}
	}
	return false
}
