// IssueScout - Open Source Issue Discovery and Recommendation
// Copyright 2026 IssueScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/issuescout/issuescout

package query

import (
	"fmt"
	"testing"

	"github.com/issuescout/issuescout/internal/models"
)

func numberedIssues(n int) []models.Issue {
	out := make([]models.Issue, n)
	for i := range out {
		out[i] = models.Issue{ID: fmt.Sprintf("%03d", i+1)}
	}
	return out
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		page    int
		limit   int
		wantLen int
		firstID string
	}{
		{"first page full", 12, 1, 10, 10, "001"},
		{"second page remainder", 12, 2, 10, 2, "011"},
		{"page past end", 12, 3, 10, 0, ""},
		{"exact boundary last page", 20, 2, 10, 10, "011"},
		{"single item pages", 3, 2, 1, 1, "002"},
		{"empty input", 0, 1, 10, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := paginate(numberedIssues(tt.total), tt.page, tt.limit)
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			if tt.wantLen > 0 && got[0].ID != tt.firstID {
				t.Errorf("first ID = %q, want %q", got[0].ID, tt.firstID)
			}
		})
	}
}

func TestPaginateCoverage(t *testing.T) {
	all := numberedIssues(23)
	limit := 10

	seen := make(map[string]int)
	for page := 1; page <= 3; page++ {
		for _, issue := range paginate(all, page, limit) {
			seen[issue.ID]++
		}
	}
	if len(seen) != len(all) {
		t.Fatalf("pages covered %d distinct issues, want %d", len(seen), len(all))
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("issue %s appeared %d times across pages", id, count)
		}
	}
}
