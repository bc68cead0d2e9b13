// IssueScout - Open Source Issue Discovery and Recommendation
// Copyright 2026 IssueScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/issuescout/issuescout

package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/issuescout/issuescout/internal/githubsync"
	"github.com/issuescout/issuescout/internal/logging"
	"github.com/issuescout/issuescout/internal/metrics"
	"github.com/issuescout/issuescout/internal/models"
	"github.com/issuescout/issuescout/internal/query"
	"github.com/issuescout/issuescout/internal/store"
)

// SyncController is the subset of the sync manager the HTTP layer needs.
// Implemented by *githubsync.Manager; mocked in tests.
type SyncController interface {
	// SyncNow runs one synchronization pass and returns the number of
	// issues fetched.
	SyncNow(ctx context.Context) (int, error)

	// Status returns the current sync status.
	Status() githubsync.Status
}

// Handler holds the dependencies for all HTTP handlers.
type Handler struct {
	store *store.Store
	sync  SyncController
}

// NewHandler creates a handler with the given store and sync controller.
// sync may be nil when background synchronization is disabled; the sync
// endpoints then respond 503.
func NewHandler(st *store.Store, sync SyncController) *Handler {
	return &Handler{
		store: st,
		sync:  sync,
	}
}

// HealthLive handles GET /api/v1/health/live.
// Liveness only confirms the process is serving requests.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, map[string]string{"status": "alive"})
}

// HealthReady handles GET /api/v1/health/ready.
// Readiness requires the store to be open; an empty cache is still ready
// since the first sync may not have completed yet.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.store == nil {
		rw.ServiceUnavailable("Store not initialized")
		return
	}

	rw.Success(map[string]interface{}{
		"status":          "ready",
		"issues_cached":   h.store.IssueCount(),
		"profiles_cached": h.store.ProfileCount(),
	})
}

// Health handles GET /api/v1/health, a one-call summary for dashboards.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	summary := map[string]interface{}{
		"status":          "ok",
		"issues_cached":   h.store.IssueCount(),
		"profiles_cached": h.store.ProfileCount(),
		"sync_enabled":    h.sync != nil,
	}
	if h.sync != nil {
		summary["sync"] = h.sync.Status()
	}

	rw.Success(summary)
}

// Issues handles GET /api/v1/issues, the anonymous query path.
// Filtering, search, sorting, and pagination all run against the in-memory
// snapshot; no personalization signals are applied.
func (h *Handler) Issues(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := parseIssuesRequest(r)
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	filters := req.Filters()

	start := time.Now()
	result := query.Issues(h.store.Snapshot(), filters)
	metrics.RecordQuery("anonymous", result.Total, time.Since(start))

	rw.SuccessWithPagination(result.Items, paginationMeta(&result, &filters))
}

// Recommended handles GET /api/v1/recommended/{userID}, the personalized
// query path. An unknown user yields an empty result, not an error, so
// clients can treat cold-start users uniformly.
func (h *Handler) Recommended(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID := strings.TrimSpace(chi.URLParam(r, "userID"))
	if userID == "" {
		rw.BadRequest("User ID is required")
		return
	}

	req := parseIssuesRequest(r)
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	filters := req.Filters()

	start := time.Now()
	result := query.Recommended(h.store.Snapshot(), h.store, userID, filters)
	metrics.RecordQuery("personalized", result.Total, time.Since(start))

	rw.SuccessWithPagination(result.Items, paginationMeta(&result, &filters))
}

// GetUserProfile handles GET /api/v1/users/{userID}.
func (h *Handler) GetUserProfile(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID := strings.TrimSpace(chi.URLParam(r, "userID"))
	if userID == "" {
		rw.BadRequest("User ID is required")
		return
	}

	profile, ok := h.store.UserProfile(userID)
	if !ok {
		rw.NotFound("Unknown user: " + userID)
		return
	}

	rw.Success(profile)
}

// PutUserProfile handles PUT /api/v1/users/{userID}.
// The profile is replaced wholesale; UpdatedAt is set server-side.
func (h *Handler) PutUserProfile(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID := strings.TrimSpace(chi.URLParam(r, "userID"))
	if userID == "" {
		rw.BadRequest("User ID is required")
		return
	}

	var req UpsertProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rw.BadRequest("Invalid JSON body: " + err.Error())
		return
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	profile := models.UserProfile{
		ID:           userID,
		TopLanguages: req.TopLanguages,
		UpdatedAt:    time.Now().UTC(),
	}

	if err := h.store.PutUserProfile(r.Context(), profile); err != nil {
		rw.StoreError(err)
		return
	}

	metrics.UpdateStoreGauges(h.store.IssueCount(), h.store.ProfileCount())
	rw.Success(profile)
}

// TriggerSync handles POST /api/v1/sync. The sync runs inside the request;
// a pass over a few search queries completes well within client timeouts,
// and overlapping requests are rejected with 409.
func (h *Handler) TriggerSync(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if h.sync == nil {
		rw.ServiceUnavailable("Synchronization is disabled")
		return
	}

	fetched, err := h.sync.SyncNow(r.Context())
	if err != nil {
		if errors.Is(err, githubsync.ErrSyncInProgress) {
			rw.Conflict("A sync is already running")
			return
		}
		logging.Ctx(r.Context()).Error().Err(err).Msg("Manual sync failed")
		rw.Error(http.StatusBadGateway, ErrCodeServiceUnavailable, "Sync failed: "+err.Error())
		return
	}

	rw.Success(map[string]interface{}{
		"fetched": fetched,
	})
}

// SyncStatus handles GET /api/v1/sync/status.
func (h *Handler) SyncStatus(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if h.sync == nil {
		rw.ServiceUnavailable("Synchronization is disabled")
		return
	}

	rw.Success(h.sync.Status())
}

// paginationMeta derives response pagination from a query result and the
// normalized filters that produced it.
func paginationMeta(result *models.QueryResult, filters *models.Filters) *PaginationMeta {
	return &PaginationMeta{
		Total:   result.Total,
		Count:   len(result.Items),
		Page:    filters.Page,
		Limit:   filters.Limit,
		HasMore: filters.Page*filters.Limit < result.Total,
	}
}
