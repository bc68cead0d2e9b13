// IssueScout - Open Source Issue Discovery and Recommendation
// Copyright 2026 IssueScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/issuescout/issuescout

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/issuescout/issuescout/internal/metrics"
)

func TestRateLimitCustomRejectsOverBudget(t *testing.T) {
	m := NewMiddleware(DefaultMiddlewareConfig())
	handler := m.RateLimitCustom(1, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	before := testutil.ToFloat64(metrics.APIRateLimitHits.WithLabelValues("/api/v1/sync"))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", second.Code)
	}

	env := decodeEnvelope(t, second)
	if env.Error == nil || env.Error.Code != ErrCodeTooManyRequests {
		t.Errorf("expected %s error envelope, got %+v", ErrCodeTooManyRequests, env.Error)
	}

	after := testutil.ToFloat64(metrics.APIRateLimitHits.WithLabelValues("/api/v1/sync"))
	if after != before+1 {
		t.Errorf("rate limit hits for /api/v1/sync = %v, want %v", after, before+1)
	}
}

func TestRateLimitDisabledPassesThrough(t *testing.T) {
	cfg := DefaultMiddlewareConfig()
	cfg.RateLimitDisabled = true
	m := NewMiddleware(cfg)
	handler := m.RateLimitCustom(1, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/issues", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, rec.Code)
		}
	}
}
