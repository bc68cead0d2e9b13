// IssueScout - Open Source Issue Discovery and Recommendation
// Copyright 2026 IssueScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/issuescout/issuescout

// Package github defines the wire types for the subset of the GitHub REST
// API v3 that IssueScout consumes: issue search and repository lookup.
// Field sets are intentionally partial; unknown response fields are ignored.
package github

import "time"

// SearchIssuesResponse is the envelope returned by GET /search/issues.
type SearchIssuesResponse struct {
	TotalCount        int     `json:"total_count"`
	IncompleteResults bool    `json:"incomplete_results"`
	Items             []Issue `json:"items"`
}

// Issue is one item of a search response. RepositoryURL points at the
// owning repository's API resource; stars, forks, and primary language
// come from a follow-up Repository lookup.
type Issue struct {
	ID            int64     `json:"id"`
	Number        int       `json:"number"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	State         string    `json:"state"`
	Comments      int       `json:"comments"`
	Labels        []Label   `json:"labels"`
	UpdatedAt     time.Time `json:"updated_at"`
	RepositoryURL string    `json:"repository_url"`
	HTMLURL       string    `json:"html_url"`
	PullRequest   *struct{} `json:"pull_request,omitempty"`
}

// IsPullRequest reports whether this search item is a pull request.
// The search API returns both; IssueScout only caches true issues.
func (i *Issue) IsPullRequest() bool {
	return i.PullRequest != nil
}

// Label is a GitHub issue label. Only the name participates in matching.
type Label struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Repository is the subset of GET /repos/{owner}/{repo} used to enrich
// cached issues.
type Repository struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Owner    struct {
		Login string `json:"login"`
	} `json:"owner"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
	Language        string `json:"language"`
}
