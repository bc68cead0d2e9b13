// IssueScout - Open Source Issue Discovery and Recommendation
// Copyright 2026 IssueScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/issuescout/issuescout

package query

import (
	"time"

	"github.com/issuescout/issuescout/internal/models"
)

// UserLookup resolves a user profile by ID. It is an explicit capability
// handle rather than a package-level store so callers and tests control
// exactly which profiles a query can see.
//
// Satisfied by *store.Store.
type UserLookup interface {
	// UserProfile returns the profile for id, or false when unknown.
	UserProfile(id string) (models.UserProfile, bool)
}

// Issues runs an anonymous query over the snapshot: filter, sort, paginate.
// The snapshot is treated as immutable; the returned page holds copies.
// The engine never errors for structurally valid input; filters are
// normalized defensively, and an empty result is an ordinary outcome.
func Issues(all []models.Issue, filters models.Filters) models.QueryResult {
	filters.Normalize()

	matched := make([]models.Issue, 0, len(all))
	for i := range all {
		if matchesFilters(&all[i], &filters) {
			matched = append(matched, all[i])
		}
	}

	// Anonymous match-sort degrades to the one-bit IsRecommended flag;
	// there is no profile to score against.
	sortIssues(matched, filters.SortBy, nil)

	return models.QueryResult{
		Items: paginate(matched, filters.Page, filters.Limit),
		Total: len(matched),
	}
}

// Recommended runs a personalized query for userID. The pipeline adds two
// steps over the anonymous path: language-affinity narrowing before the
// explicit filters, and per-issue recommendation scoring used both for the
// IsRecommended annotation and for SortMatch ordering.
//
// A missing user is recovered locally as an empty result, never an error.
func Recommended(all []models.Issue, users UserLookup, userID string, filters models.Filters) models.QueryResult {
	return recommendedAt(all, users, userID, filters, time.Now())
}

// recommendedAt is Recommended with an explicit evaluation time.
func recommendedAt(all []models.Issue, users UserLookup, userID string, filters models.Filters, now time.Time) models.QueryResult {
	filters.Normalize()

	user, ok := users.UserProfile(userID)
	if !ok {
		return models.QueryResult{Items: []models.Issue{}, Total: 0}
	}

	// An active search intent overrides affinity narrowing entirely:
	// search results are not restricted to the user's known languages.
	narrow := filters.Search == ""

	matched := make([]models.Issue, 0, len(all))
	for i := range all {
		if narrow && !affinityOk(&all[i], &user) {
			continue
		}
		if !matchesFilters(&all[i], &filters) {
			continue
		}
		issue := all[i]
		issue.IsRecommended = RecommendedFor(&issue, &user)
		matched = append(matched, issue)
	}

	// Score once per issue, before sorting.
	var scores map[string]int
	if filters.SortBy == models.SortMatch {
		scores = make(map[string]int, len(matched))
		for i := range matched {
			scores[matched[i].ID] = Score(&matched[i], &user, now)
		}
	}
	sortIssues(matched, filters.SortBy, scores)

	return models.QueryResult{
		Items: paginate(matched, filters.Page, filters.Limit),
		Total: len(matched),
	}
}
