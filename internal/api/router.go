// IssueScout - Open Source Issue Discovery and Recommendation
// Copyright 2026 IssueScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/issuescout/issuescout

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/issuescout/issuescout/internal/config"
)

// Router wires handlers and middleware into the HTTP routing tree.
type Router struct {
	handler    *Handler
	middleware *Middleware
}

// NewRouter creates a router from the API configuration.
func NewRouter(handler *Handler, cfg *config.APIConfig) *Router {
	mwConfig := DefaultMiddlewareConfig()
	if cfg != nil {
		mwConfig.CORSAllowedOrigins = cfg.CORSOrigins
		mwConfig.RateLimitRequests = cfg.RateLimitReqs
		mwConfig.RateLimitWindow = cfg.RateLimitWindow
	}

	return &Router{
		handler:    handler,
		middleware: NewMiddleware(mwConfig),
	}
}

// Setup builds the Chi routing tree with all endpoints and middleware.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, outermost first.
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.middleware.CORS()) // CORS must be global to handle OPTIONS preflight

	// Health endpoints skip rate limiting so orchestrator probes never 429.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(SecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/", router.handler.Health)
	})

	// Query and profile endpoints.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.middleware.RateLimit())
		r.Use(SecurityHeaders())
		r.Use(PrometheusRequests())

		r.Get("/issues", router.handler.Issues)
		r.Get("/recommended/{userID}", router.handler.Recommended)

		r.Get("/users/{userID}", router.handler.GetUserProfile)
		r.Put("/users/{userID}", router.handler.PutUserProfile)

		r.Get("/sync/status", router.handler.SyncStatus)

		// Manual sync runs a full fetch pass, so it gets a tighter budget
		// than the read endpoints.
		r.With(router.middleware.RateLimitCustom(10, time.Minute)).
			Post("/sync", router.handler.TriggerSync)
	})

	// Prometheus exposition, unwrapped.
	r.Handle("/metrics", promhttp.Handler())

	return r
}
