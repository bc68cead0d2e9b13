// IssueScout - Open Source Issue Discovery and Recommendation
// Copyright 2026 IssueScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/issuescout/issuescout

package query

import (
	"strings"

	"github.com/issuescout/issuescout/internal/models"
)

// Matches reports whether the search term occurs, case-insensitively, in any
// searchable field of the issue: title, body, repository name, repository
// owner, language, or any label. The term must be pre-trimmed, non-empty,
// and lowercased; searchOk handles that normalization.
//
// Matching is exact substring containment. No tokenization, stemming, or
// fuzzy matching. Empty optional fields simply never match.
func Matches(issue *models.Issue, term string) bool {
	if strings.Contains(strings.ToLower(issue.Title), term) {
		return true
	}
	if issue.Body != "" && strings.Contains(strings.ToLower(issue.Body), term) {
		return true
	}
	if strings.Contains(strings.ToLower(issue.RepositoryName), term) {
		return true
	}
	if strings.Contains(strings.ToLower(issue.RepositoryOwner), term) {
		return true
	}
	if issue.Language != "" && strings.Contains(strings.ToLower(issue.Language), term) {
		return true
	}
	for _, label := range issue.Labels {
		if strings.Contains(strings.ToLower(label), term) {
			return true
		}
	}
	return false
}
