// IssueScout - Open Source Issue Discovery and Recommendation
// Copyright 2026 IssueScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/issuescout/issuescout

package query

import (
	"strings"

	"github.com/issuescout/issuescout/internal/models"
)

// languageOk reports whether the issue passes the language filter.
// An empty filter set means no constraint. When a constraint is active,
// issues without a language are excluded.
func languageOk(issue *models.Issue, languages []string) bool {
	if len(languages) == 0 {
		return true
	}
	if issue.Language == "" {
		return false
	}
	for _, lang := range languages {
		if strings.EqualFold(issue.Language, lang) {
			return true
		}
	}
	return false
}

// difficultyOk reports whether the issue passes the difficulty filter.
// An empty filter set means no constraint. When a constraint is active,
// issues with unset difficulty are excluded.
func difficultyOk(issue *models.Issue, levels []models.Difficulty) bool {
	if len(levels) == 0 {
		return true
	}
	if issue.Difficulty == models.DifficultyUnset {
		return false
	}
	for _, level := range levels {
		if issue.Difficulty == level {
			return true
		}
	}
	return false
}

// sizeOk reports whether the issue's repository falls in the requested
// star-count bucket. Buckets are half-open: exactly 100 stars is medium
// and exactly 1000 stars is large, never the bucket below.
func sizeOk(issue *models.Issue, size models.RepositorySize) bool {
	switch size {
	case models.SizeSmall:
		return issue.RepositoryStars < 100
	case models.SizeMedium:
		return issue.RepositoryStars >= 100 && issue.RepositoryStars < 1000
	case models.SizeLarge:
		return issue.RepositoryStars >= 1000
	default:
		return true
	}
}

// searchOk reports whether the issue matches the free-text search term.
// An empty term means no constraint.
func searchOk(issue *models.Issue, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return Matches(issue, term)
}

// matchesFilters reports whether the issue survives every active predicate.
// Predicates combine with logical AND.
func matchesFilters(issue *models.Issue, f *models.Filters) bool {
	return languageOk(issue, f.Languages) &&
		difficultyOk(issue, f.Difficulty) &&
		sizeOk(issue, f.RepositorySize) &&
		searchOk(issue, f.Search)
}

// affinityOk reports whether the issue survives language-affinity narrowing
// for the given user. Issues with no language always survive; narrowing only
// excludes issues whose language the user is not known to use.
func affinityOk(issue *models.Issue, user *models.UserProfile) bool {
	if issue.Language == "" {
		return true
	}
	return user.UsesLanguage(issue.Language)
}
