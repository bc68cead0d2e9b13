// IssueScout - Open Source Issue Discovery and Recommendation
// Copyright 2026 IssueScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/issuescout/issuescout

package githubsync

import (
	"context"
	"errors"
	"testing"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/issuescout/issuescout/internal/models/github"
)

func TestCircuitBreakerPassesThroughSuccess(t *testing.T) {
	api := &mockAPI{
		searchFunc: func(ctx context.Context, query string, page, perPage int) (*github.SearchIssuesResponse, error) {
			return &github.SearchIssuesResponse{TotalCount: 5}, nil
		},
		repoFunc: func(ctx context.Context, apiURL string) (*github.Repository, error) {
			return goRepo(), nil
		},
	}
	cbc := NewCircuitBreakerClient(api)

	resp, err := cbc.SearchIssues(context.Background(), "q", 1, 10)
	if err != nil {
		t.Fatalf("SearchIssues: %v", err)
	}
	if resp.TotalCount != 5 {
		t.Errorf("TotalCount = %d, want 5", resp.TotalCount)
	}

	repo, err := cbc.RepositoryByURL(context.Background(), "https://api.github.com/repos/acme/edge-proxy")
	if err != nil {
		t.Fatalf("RepositoryByURL: %v", err)
	}
	if repo.Owner.Login != "acme" {
		t.Errorf("repo = %+v", repo)
	}
}

func TestCircuitBreakerOpensAfterFailures(t *testing.T) {
	failure := errors.New("github search issues: 503")
	api := &mockAPI{
		searchFunc: func(ctx context.Context, query string, page, perPage int) (*github.SearchIssuesResponse, error) {
			return nil, failure
		},
		repoFunc: func(ctx context.Context, apiURL string) (*github.Repository, error) {
			return nil, nil
		},
	}
	cbc := NewCircuitBreakerClient(api)

	// 100% failure rate; the breaker trips once it has 10 samples.
	for i := 0; i < 10; i++ {
		if _, err := cbc.SearchIssues(context.Background(), "q", 1, 10); !errors.Is(err, failure) {
			t.Fatalf("attempt %d: err = %v, want underlying failure", i, err)
		}
	}

	_, err := cbc.SearchIssues(context.Background(), "q", 1, 10)
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("err = %v, want ErrOpenState once tripped", err)
	}
	// The wrapped client must not be reached while the circuit is open.
	if got := api.searchCalls.Load(); got != 10 {
		t.Errorf("search calls = %d, want 10", got)
	}
}

func TestCastResult(t *testing.T) {
	want := &github.Repository{Name: "tools"}
	got, err := castResult[github.Repository](want, nil)
	if err != nil || got.Name != "tools" {
		t.Fatalf("castResult = %v, %v", got, err)
	}

	if _, err := castResult[github.Repository]("not a repo", nil); err == nil {
		t.Error("expected type mismatch error")
	}

	sentinel := errors.New("boom")
	if _, err := castResult[github.Repository](nil, sentinel); !errors.Is(err, sentinel) {
		t.Errorf("error should pass through, got %v", err)
	}
}
