// IssueScout - Open Source Issue Discovery and Recommendation
// Copyright 2026 IssueScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/issuescout/issuescout

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/issuescout/issuescout/internal/models"
	"github.com/issuescout/issuescout/internal/validation"
)

// IssuesRequest represents the validated query parameters for the /issues and
// /recommended endpoints. The validation tags follow go-playground/validator
// v10 syntax.
//
// Fields:
//   - Search: Free-text search term (max 200 characters)
//   - Languages: Comma-separated repository languages
//   - Difficulty: Comma-separated difficulty levels
//   - RepositorySize: Star-count bucket (small, medium, large)
//   - SortBy: Result ordering (recent, stars, match, comments)
//   - Page: 1-based page number
//   - Limit: Results per page (1-100)
type IssuesRequest struct {
	Search         string `validate:"omitempty,max=200"`
	Languages      string // Comma-separated, parsed leniently
	Difficulty     string // Comma-separated, unknown levels are dropped
	RepositorySize string `validate:"omitempty,oneof=small medium large"`
	SortBy         string `validate:"omitempty,oneof=recent stars match comments"`
	Page           int    `validate:"min=1"`
	Limit          int    `validate:"min=1,max=100"`
}

// Filters converts the validated request into the engine's query input.
func (req *IssuesRequest) Filters() models.Filters {
	var difficulty []models.Difficulty
	for _, d := range parseCommaSeparated(req.Difficulty) {
		if parsed := models.ParseDifficulty(d); parsed != models.DifficultyUnset {
			difficulty = append(difficulty, parsed)
		}
	}

	return models.Filters{
		Search:         strings.TrimSpace(req.Search),
		Languages:      parseCommaSeparated(req.Languages),
		Difficulty:     difficulty,
		RepositorySize: models.ParseRepositorySize(req.RepositorySize),
		SortBy:         models.ParseSortMode(req.SortBy),
		Page:           req.Page,
		Limit:          req.Limit,
	}
}

// parseIssuesRequest extracts the issues query parameters from the request,
// applying pagination defaults before validation.
func parseIssuesRequest(r *http.Request) IssuesRequest {
	q := r.URL.Query()
	return IssuesRequest{
		Search:         q.Get("search"),
		Languages:      q.Get("languages"),
		Difficulty:     q.Get("difficulty"),
		RepositorySize: q.Get("repository_size"),
		SortBy:         q.Get("sort_by"),
		Page:           getIntParam(r, "page", models.DefaultPage),
		Limit:          getIntParam(r, "limit", models.DefaultLimit),
	}
}

// UpsertProfileRequest represents the validated request body for
// PUT /users/{userID}.
//
// Fields:
//   - TopLanguages: The user's languages, most used first (max 20)
type UpsertProfileRequest struct {
	TopLanguages []string `json:"top_languages" validate:"max=20,dive,min=1,max=50"`
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes, or an APIError describing the failure.
func validateRequest(v interface{}) *APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// getIntParam extracts an integer query parameter with a default value.
func getIntParam(r *http.Request, key string, defaultValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}

// parseCommaSeparated parses a comma-separated string into a slice,
// trimming whitespace and dropping empty elements.
func parseCommaSeparated(value string) []string {
	if value == "" {
		return nil
	}

	var result []string
	for _, part := range strings.Split(value, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
