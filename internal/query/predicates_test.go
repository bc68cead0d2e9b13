// IssueScout - Open Source Issue Discovery and Recommendation
// Copyright 2026 IssueScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/issuescout/issuescout

package query

import (
	"testing"

	"github.com/issuescout/issuescout/internal/models"
)

func TestLanguageOk(t *testing.T) {
	tests := []struct {
		name      string
		language  string
		languages []string
		want      bool
	}{
		{"no constraint", "Go", nil, true},
		{"no constraint no language", "", nil, true},
		{"member", "Go", []string{"Go", "Rust"}, true},
		{"member case insensitive", "go", []string{"Go"}, true},
		{"not member", "Python", []string{"Go", "Rust"}, false},
		{"no language under active constraint", "", []string{"Go"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issue := &models.Issue{Language: tt.language}
			if got := languageOk(issue, tt.languages); got != tt.want {
				t.Errorf("languageOk(%q, %v) = %v, want %v", tt.language, tt.languages, got, tt.want)
			}
		})
	}
}

func TestDifficultyOk(t *testing.T) {
	tests := []struct {
		name       string
		difficulty models.Difficulty
		levels     []models.Difficulty
		want       bool
	}{
		{"no constraint", models.DifficultyBeginner, nil, true},
		{"no constraint unset", models.DifficultyUnset, nil, true},
		{"member", models.DifficultyBeginner, []models.Difficulty{models.DifficultyBeginner}, true},
		{"not member", models.DifficultyAdvanced, []models.Difficulty{models.DifficultyBeginner, models.DifficultyIntermediate}, false},
		{"unset under active constraint", models.DifficultyUnset, []models.Difficulty{models.DifficultyBeginner}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issue := &models.Issue{Difficulty: tt.difficulty}
			if got := difficultyOk(issue, tt.levels); got != tt.want {
				t.Errorf("difficultyOk(%v, %v) = %v, want %v", tt.difficulty, tt.levels, got, tt.want)
			}
		})
	}
}

func TestSizeOk(t *testing.T) {
	tests := []struct {
		name  string
		stars int
		size  models.RepositorySize
		want  bool
	}{
		{"any always passes", 0, models.SizeAny, true},
		{"small below boundary", 99, models.SizeSmall, true},
		{"small excludes exactly 100", 100, models.SizeSmall, false},
		{"medium includes exactly 100", 100, models.SizeMedium, true},
		{"medium upper interior", 999, models.SizeMedium, true},
		{"medium excludes exactly 1000", 1000, models.SizeMedium, false},
		{"large includes exactly 1000", 1000, models.SizeLarge, true},
		{"large excludes below", 999, models.SizeLarge, false},
		{"small zero stars", 0, models.SizeSmall, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issue := &models.Issue{RepositoryStars: tt.stars}
			if got := sizeOk(issue, tt.size); got != tt.want {
				t.Errorf("sizeOk(stars=%d, %v) = %v, want %v", tt.stars, tt.size, got, tt.want)
			}
		})
	}
}

func TestSearchOk(t *testing.T) {
	issue := &models.Issue{Title: "Improve parser error messages"}

	if !searchOk(issue, "") {
		t.Error("empty term should pass every issue")
	}
	if !searchOk(issue, "  \t ") {
		t.Error("whitespace-only term should pass every issue")
	}
	if !searchOk(issue, "  Parser ") {
		t.Error("term should be trimmed and case-folded before matching")
	}
	if searchOk(issue, "websocket") {
		t.Error("non-matching term should exclude the issue")
	}
}

func TestMatchesFiltersConjunction(t *testing.T) {
	issue := &models.Issue{
		ID:              "1",
		Title:           "Fix flaky retry test",
		Language:        "Go",
		Difficulty:      models.DifficultyBeginner,
		RepositoryStars: 500,
	}

	base := models.Filters{
		Languages:      []string{"Go"},
		Difficulty:     []models.Difficulty{models.DifficultyBeginner},
		RepositorySize: models.SizeMedium,
		Search:         "retry",
	}
	if !matchesFilters(issue, &base) {
		t.Fatal("issue should survive when every predicate passes")
	}

	// Failing any single predicate must exclude the issue.
	perturbed := []func(f *models.Filters){
		func(f *models.Filters) { f.Languages = []string{"Rust"} },
		func(f *models.Filters) { f.Difficulty = []models.Difficulty{models.DifficultyAdvanced} },
		func(f *models.Filters) { f.RepositorySize = models.SizeLarge },
		func(f *models.Filters) { f.Search = "unrelated" },
	}
	for i, mutate := range perturbed {
		f := base
		mutate(&f)
		if matchesFilters(issue, &f) {
			t.Errorf("perturbation %d: issue should be excluded when one predicate fails", i)
		}
	}
}

func TestAffinityOk(t *testing.T) {
	user := &models.UserProfile{ID: "u1", TopLanguages: []string{"Python"}}

	tests := []struct {
		name     string
		language string
		want     bool
	}{
		{"matching language survives", "Python", true},
		{"case insensitive", "python", true},
		{"no language survives", "", true},
		{"foreign language excluded", "Java", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issue := &models.Issue{Language: tt.language}
			if got := affinityOk(issue, user); got != tt.want {
				t.Errorf("affinityOk(%q) = %v, want %v", tt.language, got, tt.want)
			}
		})
	}
}
