// IssueScout - Open Source Issue Discovery and Recommendation
// Copyright 2026 IssueScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/issuescout/issuescout

package githubsync

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/issuescout/issuescout/internal/config"
)

func testClientConfig(baseURL string) *config.GitHubConfig {
	return &config.GitHubConfig{
		BaseURL:           baseURL,
		Token:             "test-token",
		Timeout:           5 * time.Second,
		RequestsPerSecond: 1000, // Effectively unlimited for tests
		Burst:             1000,
	}
}

func TestSearchIssues(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/issues" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != `state:open is:issue label:"help wanted" language:"Go"` {
			t.Errorf("q = %q", got)
		}
		if got := r.URL.Query().Get("per_page"); got != "50" {
			t.Errorf("per_page = %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("authorization = %q", got)
		}
		if got := r.Header.Get("Accept"); got != "application/vnd.github+json" {
			t.Errorf("accept = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"total_count": 1,
			"items": [{"id": 99, "title": "Fix flag parsing", "state": "open", "comments": 2}]
		}`))
	}))
	defer srv.Close()

	c := NewClient(testClientConfig(srv.URL))
	resp, err := c.SearchIssues(context.Background(), buildQuery("Go", "help wanted"), 1, 50)
	if err != nil {
		t.Fatalf("SearchIssues: %v", err)
	}
	if resp.TotalCount != 1 || len(resp.Items) != 1 {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.Items[0].Title != "Fix flag parsing" {
		t.Errorf("title = %q", resp.Items[0].Title)
	}
}

func TestRepositoryByURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/acme/edge-proxy" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"name": "edge-proxy",
			"full_name": "acme/edge-proxy",
			"owner": {"login": "acme"},
			"stargazers_count": 320,
			"forks_count": 12,
			"language": "Go"
		}`))
	}))
	defer srv.Close()

	c := NewClient(testClientConfig(srv.URL))
	repo, err := c.RepositoryByURL(context.Background(), srv.URL+"/repos/acme/edge-proxy")
	if err != nil {
		t.Fatalf("RepositoryByURL: %v", err)
	}
	if repo.StargazersCount != 320 || repo.Owner.Login != "acme" || repo.Language != "Go" {
		t.Errorf("repo = %+v", repo)
	}
}

func TestRateLimitRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total_count": 0, "items": []}`))
	}))
	defer srv.Close()

	c := NewClient(testClientConfig(srv.URL))
	c.retryBaseDelay = time.Millisecond

	if _, err := c.SearchIssues(context.Background(), "q", 1, 10); err != nil {
		t.Fatalf("SearchIssues after retry: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("calls = %d, want 2 (one 429, one success)", got)
	}
}

func TestSecondaryRateLimitDetection(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			// Secondary rate limit: 403 with exhausted quota header.
			w.Header().Set("X-Ratelimit-Remaining", "0")
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_, _ = w.Write([]byte(`{"total_count": 0, "items": []}`))
	}))
	defer srv.Close()

	c := NewClient(testClientConfig(srv.URL))
	c.retryBaseDelay = time.Millisecond

	if _, err := c.SearchIssues(context.Background(), "q", 1, 10); err != nil {
		t.Fatalf("SearchIssues: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
}

func TestErrorStatusSurfacesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message": "Validation Failed"}`))
	}))
	defer srv.Close()

	c := NewClient(testClientConfig(srv.URL))
	_, err := c.SearchIssues(context.Background(), "bad", 1, 10)
	if err == nil {
		t.Fatal("expected error for 422 response")
	}
}

func TestContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(testClientConfig(srv.URL))
	c.retryBaseDelay = time.Minute // Would block without cancellation

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := c.SearchIssues(ctx, "q", 1, 10); err == nil {
		t.Fatal("expected context error during backoff wait")
	}
}
