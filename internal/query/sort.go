// IssueScout - Open Source Issue Discovery and Recommendation
// Copyright 2026 IssueScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/issuescout/issuescout

package query

import (
	"sort"

	"github.com/issuescout/issuescout/internal/models"
)

// sortIssues orders issues in place by the requested sort mode. All modes
// are descending on their primary key. Ties break ascending by issue ID so
// ordering is reproducible across calls regardless of snapshot order.
//
// For SortMatch the scores map (issue ID -> precomputed score) supplies the
// key; scores are computed once per issue before sorting, never inside the
// comparator. A nil scores map degrades SortMatch to the one-bit
// IsRecommended flag, which is the anonymous-mode behavior.
func sortIssues(issues []models.Issue, mode models.SortMode, scores map[string]int) {
	sort.Slice(issues, func(i, j int) bool {
		a, b := &issues[i], &issues[j]
		switch mode {
		case models.SortStars:
			if a.RepositoryStars != b.RepositoryStars {
				return a.RepositoryStars > b.RepositoryStars
			}
		case models.SortComments:
			if a.Comments != b.Comments {
				return a.Comments > b.Comments
			}
		case models.SortMatch:
			if scores != nil {
				if sa, sb := scores[a.ID], scores[b.ID]; sa != sb {
					return sa > sb
				}
			} else if a.IsRecommended != b.IsRecommended {
				return a.IsRecommended
			}
		default: // SortRecent
			if !a.UpdatedAt.Equal(b.UpdatedAt) {
				return a.UpdatedAt.After(b.UpdatedAt)
			}
		}
		return a.ID < b.ID
	})
}
