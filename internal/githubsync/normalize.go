// IssueScout - Open Source Issue Discovery and Recommendation
// Copyright 2026 IssueScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/issuescout/issuescout

package githubsync

import (
	"strconv"
	"strings"

	"github.com/issuescout/issuescout/internal/models"
	"github.com/issuescout/issuescout/internal/models/github"
	"github.com/issuescout/issuescout/internal/query"
)

// Label names mapped to difficulty levels. Matched case-insensitively
// against every label on an issue; the first bucket with a hit wins, in
// beginner, intermediate, advanced order.
var (
	beginnerLabels = []string{
		"good first issue",
		"beginner friendly",
		"help wanted",
		"beginner",
		"easy",
		"starter",
		"first-timers-only",
	}
	intermediateLabels = []string{
		"intermediate",
		"medium",
		"moderate",
	}
	advancedLabels = []string{
		"advanced",
		"hard",
		"expert",
		"difficult",
	}
)

// inferDifficulty derives a difficulty level from issue labels. Issues
// whose labels carry no difficulty signal stay DifficultyUnset.
func inferDifficulty(labels []string) models.Difficulty {
	folded := make([]string, len(labels))
	for i, l := range labels {
		folded[i] = strings.ToLower(l)
	}

	matches := func(candidates []string) bool {
		for _, l := range folded {
			for _, c := range candidates {
				if l == c {
					return true
				}
			}
		}
		return false
	}

	switch {
	case matches(beginnerLabels):
		return models.DifficultyBeginner
	case matches(intermediateLabels):
		return models.DifficultyIntermediate
	case matches(advancedLabels):
		return models.DifficultyAdvanced
	default:
		return models.DifficultyUnset
	}
}

// Normalize converts a GitHub search item plus its repository details into
// the cache's issue model. repo may be nil when the repository lookup
// failed; owner and name then fall back to parsing the repository API URL
// and the star, fork, and language fields stay zero.
//
// The anonymous recommendation bit is seeded from beginner-signal labels so
// match-sorting works before any personalization happens.
func Normalize(item *github.Issue, repo *github.Repository) models.Issue {
	labels := make([]string, len(item.Labels))
	for i, l := range item.Labels {
		labels[i] = l.Name
	}

	issue := models.Issue{
		ID:         strconv.FormatInt(item.ID, 10),
		Title:      item.Title,
		Body:       item.Body,
		State:      item.State,
		Labels:     labels,
		Comments:   item.Comments,
		UpdatedAt:  item.UpdatedAt,
		Difficulty: inferDifficulty(labels),
	}

	if repo != nil {
		issue.Language = repo.Language
		issue.RepositoryOwner = repo.Owner.Login
		issue.RepositoryName = repo.Name
		issue.RepositoryStars = repo.StargazersCount
		issue.RepositoryForks = repo.ForksCount
	} else {
		issue.RepositoryOwner, issue.RepositoryName = ownerRepoFromURL(item.RepositoryURL)
	}

	issue.IsRecommended = query.RecommendedFor(&issue, nil)
	return issue
}

// ownerRepoFromURL extracts owner and repository name from a repository
// API URL like https://api.github.com/repos/{owner}/{repo}.
func ownerRepoFromURL(apiURL string) (owner, name string) {
	parts := strings.Split(strings.TrimRight(apiURL, "/"), "/")
	if len(parts) < 2 {
		return "", ""
	}
	return parts[len(parts)-2], parts[len(parts)-1]
}
