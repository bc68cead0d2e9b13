// IssueScout - Open Source Issue Discovery and Recommendation
// Copyright 2026 IssueScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/issuescout/issuescout

package githubsync

import (
	"testing"
	"time"

	"github.com/issuescout/issuescout/internal/models"
	"github.com/issuescout/issuescout/internal/models/github"
)

func TestInferDifficulty(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   models.Difficulty
	}{
		{"good first issue", []string{"bug", "Good First Issue"}, models.DifficultyBeginner},
		{"easy", []string{"easy"}, models.DifficultyBeginner},
		{"help wanted", []string{"Help Wanted"}, models.DifficultyBeginner},
		{"intermediate", []string{"intermediate"}, models.DifficultyIntermediate},
		{"medium", []string{"Medium"}, models.DifficultyIntermediate},
		{"advanced", []string{"hard"}, models.DifficultyAdvanced},
		{"beginner wins over advanced", []string{"hard", "good first issue"}, models.DifficultyBeginner},
		{"no signal", []string{"bug", "documentation"}, models.DifficultyUnset},
		{"no labels", nil, models.DifficultyUnset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inferDifficulty(tt.labels); got != tt.want {
				t.Errorf("inferDifficulty(%v) = %v, want %v", tt.labels, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	updated := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	item := &github.Issue{
		ID:            123456,
		Number:        42,
		Title:         "Improve error messages",
		Body:          "The parser errors are cryptic.",
		State:         "open",
		Comments:      7,
		Labels:        []github.Label{{Name: "help wanted"}, {Name: "parser"}},
		UpdatedAt:     updated,
		RepositoryURL: "https://api.github.com/repos/acme/edge-proxy",
	}
	repo := &github.Repository{
		Name:            "edge-proxy",
		FullName:        "acme/edge-proxy",
		StargazersCount: 1500,
		ForksCount:      90,
		Language:        "Go",
	}
	repo.Owner.Login = "acme"

	issue := Normalize(item, repo)

	if issue.ID != "123456" {
		t.Errorf("ID = %q, want 123456", issue.ID)
	}
	if issue.Language != "Go" || issue.RepositoryStars != 1500 || issue.RepositoryForks != 90 {
		t.Errorf("repository enrichment missing: %+v", issue)
	}
	if issue.RepositoryOwner != "acme" || issue.RepositoryName != "edge-proxy" {
		t.Errorf("owner/name = %s/%s", issue.RepositoryOwner, issue.RepositoryName)
	}
	if issue.Difficulty != models.DifficultyBeginner {
		t.Errorf("difficulty = %v, want beginner via help wanted", issue.Difficulty)
	}
	if !issue.IsRecommended {
		t.Error("help wanted label should seed the recommendation bit")
	}
	if !issue.UpdatedAt.Equal(updated) {
		t.Errorf("UpdatedAt = %v", issue.UpdatedAt)
	}
}

func TestNormalizeWithoutRepository(t *testing.T) {
	item := &github.Issue{
		ID:            7,
		Title:         "Broken link in README",
		Labels:        []github.Label{{Name: "documentation"}},
		RepositoryURL: "https://api.github.com/repos/octo/widgets",
	}

	issue := Normalize(item, nil)

	if issue.RepositoryOwner != "octo" || issue.RepositoryName != "widgets" {
		t.Errorf("owner/name from URL = %s/%s", issue.RepositoryOwner, issue.RepositoryName)
	}
	if issue.Language != "" || issue.RepositoryStars != 0 {
		t.Errorf("missing repo should leave enrichment zeroed: %+v", issue)
	}
	if issue.IsRecommended {
		t.Error("no beginner signal, recommendation bit should stay false")
	}
}

func TestOwnerRepoFromURL(t *testing.T) {
	owner, name := ownerRepoFromURL("https://api.github.com/repos/acme/tools/")
	if owner != "acme" || name != "tools" {
		t.Errorf("got %s/%s", owner, name)
	}
	owner, name = ownerRepoFromURL("")
	if owner != "" || name != "" {
		t.Errorf("empty URL should yield empty parts, got %s/%s", owner, name)
	}
}

func TestBuildQuery(t *testing.T) {
	got := buildQuery("Go", "good first issue")
	want := `state:open is:issue label:"good first issue" language:"Go"`
	if got != want {
		t.Errorf("buildQuery = %q, want %q", got, want)
	}
}
