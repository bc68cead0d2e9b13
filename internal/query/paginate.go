// IssueScout - Open Source Issue Discovery and Recommendation
// Copyright 2026 IssueScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/issuescout/issuescout

package query

import "github.com/issuescout/issuescout/internal/models"

// paginate slices one page out of an ordered sequence. page and limit must
// be positive (Filters.Normalize guarantees that). Bounds are clamped to
// the sequence length; a page past the end yields an empty slice, never an
// error.
func paginate(issues []models.Issue, page, limit int) []models.Issue {
	start := (page - 1) * limit
	if start >= len(issues) {
		return []models.Issue{}
	}
	end := start + limit
	if end > len(issues) {
		end = len(issues)
	}
	return issues[start:end]
}
