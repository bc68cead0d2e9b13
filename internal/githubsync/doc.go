// IssueScout - Open Source Issue Discovery and Recommendation
// Copyright 2026 IssueScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/issuescout/issuescout

/*
Package githubsync fetches open issues from the GitHub REST API and loads
them into the issue store.

The package is organized as a small pipeline:

  - Client: raw HTTP access to GET /search/issues and repository lookups,
    with client-side rate limiting (golang.org/x/time/rate) and exponential
    backoff on HTTP 403/429 responses.
  - CircuitBreakerClient: wraps the client with sony/gobreaker so a flapping
    or unreachable GitHub API cannot stall the sync loop.
  - Normalize: converts wire-format search items plus their repository
    details into the cache's issue model, inferring a difficulty level from
    labels.
  - Manager: the periodic sync worker. Runs one sync on startup (when
    configured), then on a fixed interval, and also serves on-demand syncs
    triggered over the HTTP API.

All GitHub access goes through the GitHubAPI interface so tests can swap in
a mock without a network.
*/
package githubsync
