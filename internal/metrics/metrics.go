// IssueScout - Open Source Issue Discovery and Recommendation
// Copyright 2026 IssueScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/issuescout/issuescout

// Package metrics provides Prometheus instrumentation for the API layer,
// the query engine, GitHub sync, and the issue cache.
package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Query Engine Metrics
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "query_duration_seconds",
			Help:    "Duration of issue queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"mode"}, // "anonymous", "personalized"
	)

	QueryResultSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "query_result_size",
			Help:    "Number of issues matched by a query before pagination",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
		[]string{"mode"},
	)

	// GitHub Sync Metrics
	SyncDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "github_sync_duration_seconds",
			Help:    "Duration of GitHub sync operations in seconds",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
		},
	)

	SyncIssuesFetched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "github_sync_issues_fetched_total",
			Help: "Total number of issues fetched from GitHub",
		},
	)

	SyncErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "github_sync_errors_total",
			Help: "Total number of sync errors",
		},
		[]string{"error_type"}, // "github_api", "store", "other"
	)

	SyncLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "github_sync_last_success_timestamp_seconds",
			Help: "Unix timestamp of the last successful sync",
		},
	)

	GitHubRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "github_api_requests_total",
			Help: "Total number of requests to the GitHub API",
		},
		[]string{"endpoint", "status_code"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Store Metrics
	StoreIssuesCached = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "store_issues_cached",
			Help: "Current number of issues in the cache",
		},
	)

	StoreProfilesCached = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "store_profiles_cached",
			Help: "Current number of user profiles in the cache",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordQuery records a query engine invocation
func RecordQuery(mode string, matched int, duration time.Duration) {
	QueryDuration.WithLabelValues(mode).Observe(duration.Seconds())
	QueryResultSize.WithLabelValues(mode).Observe(float64(matched))
}

// RecordSync records the outcome of one sync run
func RecordSync(duration time.Duration, fetched int, err error) {
	SyncDuration.Observe(duration.Seconds())
	SyncIssuesFetched.Add(float64(fetched))
	if err != nil {
		SyncErrors.WithLabelValues(classifySyncError(err)).Inc()
		return
	}
	SyncLastSuccess.Set(float64(time.Now().Unix()))
}

// RecordRateLimitHit counts a rate-limited request against its endpoint
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// UpdateStoreGauges refreshes the cache size gauges
func UpdateStoreGauges(issues, profiles int) {
	StoreIssuesCached.Set(float64(issues))
	StoreProfilesCached.Set(float64(profiles))
}

func classifySyncError(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "github"):
		return "github_api"
	case strings.Contains(msg, "store"), strings.Contains(msg, "badger"):
		return "store"
	default:
		return "other"
	}
}
