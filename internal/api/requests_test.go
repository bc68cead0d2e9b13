// IssueScout - Open Source Issue Discovery and Recommendation
// Copyright 2026 IssueScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/issuescout/issuescout

package api

import (
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/issuescout/issuescout/internal/models"
)

func TestParseIssuesRequestDefaults(t *testing.T) {
	req := parseIssuesRequest(httptest.NewRequest("GET", "/api/v1/issues", nil))

	if req.Page != models.DefaultPage {
		t.Errorf("expected default page %d, got %d", models.DefaultPage, req.Page)
	}
	if req.Limit != models.DefaultLimit {
		t.Errorf("expected default limit %d, got %d", models.DefaultLimit, req.Limit)
	}
	if req.Search != "" || req.Languages != "" || req.SortBy != "" {
		t.Errorf("expected empty string params, got %+v", req)
	}
}

func TestParseIssuesRequestAllParams(t *testing.T) {
	target := "/api/v1/issues?search=memory+leak&languages=Go,Rust&difficulty=beginner" +
		"&repository_size=large&sort_by=stars&page=3&limit=25"
	req := parseIssuesRequest(httptest.NewRequest("GET", target, nil))

	if req.Search != "memory leak" {
		t.Errorf("unexpected search: %q", req.Search)
	}
	if req.Languages != "Go,Rust" || req.Difficulty != "beginner" {
		t.Errorf("unexpected filters: %+v", req)
	}
	if req.RepositorySize != "large" || req.SortBy != "stars" {
		t.Errorf("unexpected size/sort: %+v", req)
	}
	if req.Page != 3 || req.Limit != 25 {
		t.Errorf("unexpected pagination: page=%d limit=%d", req.Page, req.Limit)
	}
}

func TestIssuesRequestFilters(t *testing.T) {
	req := IssuesRequest{
		Search:         "  crash on startup  ",
		Languages:      "Go, Rust , ,TypeScript",
		Difficulty:     "beginner,advanced,unknown",
		RepositorySize: "medium",
		SortBy:         "comments",
		Page:           2,
		Limit:          50,
	}

	f := req.Filters()

	if f.Search != "crash on startup" {
		t.Errorf("expected trimmed search, got %q", f.Search)
	}
	if !reflect.DeepEqual(f.Languages, []string{"Go", "Rust", "TypeScript"}) {
		t.Errorf("unexpected languages: %v", f.Languages)
	}
	// Unknown difficulty tokens are dropped rather than rejected.
	want := []models.Difficulty{models.DifficultyBeginner, models.DifficultyAdvanced}
	if !reflect.DeepEqual(f.Difficulty, want) {
		t.Errorf("unexpected difficulty: %v", f.Difficulty)
	}
	if f.RepositorySize != models.SizeMedium || f.SortBy != models.SortComments {
		t.Errorf("unexpected size/sort: %+v", f)
	}
	if f.Page != 2 || f.Limit != 50 {
		t.Errorf("unexpected pagination: %+v", f)
	}
}

func TestIssuesRequestFiltersEmpty(t *testing.T) {
	req := IssuesRequest{Page: 1, Limit: 10}
	f := req.Filters()

	if f.Languages != nil || f.Difficulty != nil {
		t.Errorf("expected nil slices, got %+v", f)
	}
	if f.RepositorySize != models.SizeAny {
		t.Errorf("expected SizeAny, got %q", f.RepositorySize)
	}
	if f.SortBy != models.SortRecent {
		t.Errorf("expected SortRecent default, got %q", f.SortBy)
	}
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     IssuesRequest
		wantErr bool
	}{
		{"valid minimal", IssuesRequest{Page: 1, Limit: 10}, false},
		{"valid full", IssuesRequest{Search: "bug", SortBy: "match", Page: 5, Limit: 100}, false},
		{"limit zero", IssuesRequest{Page: 1, Limit: 0}, true},
		{"limit too large", IssuesRequest{Page: 1, Limit: 101}, true},
		{"page zero", IssuesRequest{Page: 0, Limit: 10}, true},
		{"bad sort", IssuesRequest{SortBy: "alphabetical", Page: 1, Limit: 10}, true},
		{"bad size", IssuesRequest{RepositorySize: "huge", Page: 1, Limit: 10}, true},
		{"search too long", IssuesRequest{Search: longString(201), Page: 1, Limit: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := validateRequest(&tt.req)
			if tt.wantErr && apiErr == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && apiErr != nil {
				t.Errorf("expected no error, got %+v", apiErr)
			}
			if tt.wantErr && apiErr != nil && apiErr.Code == "" {
				t.Error("expected an error code")
			}
		})
	}
}

func TestGetIntParam(t *testing.T) {
	tests := []struct {
		name   string
		target string
		key    string
		def    int
		want   int
	}{
		{"present", "/?limit=42", "limit", 10, 42},
		{"missing", "/", "limit", 10, 10},
		{"not a number", "/?limit=ten", "limit", 10, 10},
		{"negative", "/?page=-5", "page", 1, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)
			if got := getIntParam(r, tt.key, tt.def); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestParseCommaSeparated(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "Go", []string{"Go"}},
		{"multiple", "Go,Rust,Python", []string{"Go", "Rust", "Python"}},
		{"whitespace", " Go , Rust ", []string{"Go", "Rust"}},
		{"empty elements", "Go,,Rust,", []string{"Go", "Rust"}},
		{"only separators", ",, ,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseCommaSeparated(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
