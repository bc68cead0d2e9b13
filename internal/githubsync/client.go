// IssueScout - Open Source Issue Discovery and Recommendation
// Copyright 2026 IssueScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/issuescout/issuescout

package githubsync

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/issuescout/issuescout/internal/config"
	"github.com/issuescout/issuescout/internal/metrics"
	"github.com/issuescout/issuescout/internal/models/github"
)

// maxErrorBodySize limits how much of an error response body is read back
// for diagnostics.
const maxErrorBodySize = 64 * 1024 // 64KB

// GitHubAPI is the surface of the GitHub client the sync manager depends
// on. Implemented by Client and CircuitBreakerClient in production and by
// mocks in tests.
type GitHubAPI interface {
	SearchIssues(ctx context.Context, query string, page, perPage int) (*github.SearchIssuesResponse, error)
	RepositoryByURL(ctx context.Context, apiURL string) (*github.Repository, error)
}

// Client talks to the GitHub REST API v3.
//
// Every request passes through a client-side rate limiter sized from
// configuration, and HTTP 403/429 responses are retried with exponential
// backoff honoring the Retry-After header. An API token is optional;
// without one GitHub grants a much smaller request budget.
//
// Thread safety: safe for concurrent use.
type Client struct {
	baseURL        string
	token          string
	client         *http.Client
	limiter        *rate.Limiter
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewClient creates a GitHub API client from configuration.
func NewClient(cfg *config.GitHubConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter:        rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		maxRetries:     5,
		retryBaseDelay: time.Second,
	}
}

// SearchIssues runs GET /search/issues for the given search query. Pages
// are 1-based; perPage is capped at 100 by GitHub.
func (c *Client) SearchIssues(ctx context.Context, query string, page, perPage int) (*github.SearchIssuesResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("sort", "updated")
	params.Set("order", "desc")

	var result github.SearchIssuesResponse
	reqURL := c.baseURL + "/search/issues?" + params.Encode()
	if err := c.get(ctx, "search_issues", reqURL, &result); err != nil {
		return nil, fmt.Errorf("github search issues: %w", err)
	}
	return &result, nil
}

// RepositoryByURL fetches repository details from the API URL carried in a
// search item's repository_url field.
func (c *Client) RepositoryByURL(ctx context.Context, apiURL string) (*github.Repository, error) {
	var result github.Repository
	if err := c.get(ctx, "repository", apiURL, &result); err != nil {
		return nil, fmt.Errorf("github repository: %w", err)
	}
	return &result, nil
}

// get performs a rate-limited GET with backoff on secondary rate limits
// and decodes the JSON response into result.
func (c *Client) get(ctx context.Context, endpoint, reqURL string, result interface{}) error {
	resp, err := c.doWithBackoff(ctx, endpoint, reqURL)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body := readBodyForError(resp.Body)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// doWithBackoff issues the request, retrying rate-limited responses with
// exponential backoff (1s, 2s, 4s, 8s, 16s), preferring the server's
// Retry-After value when present. The context cancels backoff waits.
func (c *Client) doWithBackoff(ctx context.Context, endpoint, reqURL string) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/vnd.github+json")
		req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("request failed: %w", err)
		}
		metrics.GitHubRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

		if !rateLimited(resp) {
			return resp, nil
		}
		_ = resp.Body.Close()

		if attempt == c.maxRetries {
			return nil, fmt.Errorf("rate limit exceeded after %d retries (HTTP %d)", c.maxRetries, resp.StatusCode)
		}

		delay := c.retryBaseDelay * time.Duration(1<<uint(attempt))
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds > 0 {
				delay = time.Duration(seconds) * time.Second
			}
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// rateLimited reports whether the response is a primary or secondary
// GitHub rate limit. GitHub signals both 429 and, for secondary limits,
// 403 with an exhausted x-ratelimit-remaining.
func rateLimited(resp *http.Response) bool {
	if resp.StatusCode == http.StatusTooManyRequests {
		return true
	}
	return resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-Ratelimit-Remaining") == "0"
}

// readBodyForError reads at most maxErrorBodySize bytes of a response body
// for inclusion in an error message.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}
