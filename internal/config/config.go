// IssueScout - Open Source Issue Discovery and Recommendation
// Copyright 2026 IssueScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/issuescout/issuescout

// Package config defines the IssueScout configuration model and its layered
// loader: built-in defaults, then an optional YAML file, then environment
// variables, each layer overriding the one below.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the IssueScout server.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	GitHub  GitHubConfig  `koanf:"github"`
	Sync    SyncConfig    `koanf:"sync"`
	Store   StoreConfig   `koanf:"store"`
	API     APIConfig     `koanf:"api"`
	Logging LoggingConfig `koanf:"logging"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// GitHubConfig holds the GitHub API client settings. Token is optional;
// unauthenticated requests work against api.github.com with a much lower
// rate budget.
type GitHubConfig struct {
	BaseURL           string        `koanf:"base_url"`
	Token             string        `koanf:"token"`
	Timeout           time.Duration `koanf:"timeout"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Burst             int           `koanf:"burst"`
}

// SyncConfig controls the periodic issue sync from GitHub.
type SyncConfig struct {
	Enabled       bool          `koanf:"enabled"`
	Interval      time.Duration `koanf:"interval"`
	Languages     []string      `koanf:"languages"`
	Labels        []string      `koanf:"labels"`
	PerPage       int           `koanf:"per_page"`
	MaxPages      int           `koanf:"max_pages"`
	SyncOnStartup bool          `koanf:"sync_on_startup"`
}

// StoreConfig controls BadgerDB persistence for the issue cache.
type StoreConfig struct {
	Path           string        `koanf:"path"`
	InMemory       bool          `koanf:"in_memory"`
	GCInterval     time.Duration `koanf:"gc_interval"`
	GCDiscardRatio float64       `koanf:"gc_discard_ratio"`
}

// APIConfig holds request-handling policy for the HTTP API.
type APIConfig struct {
	CORSOrigins     []string      `koanf:"cors_origins"`
	RateLimitReqs   int           `koanf:"rate_limit_reqs"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // "json" or "console"
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1-65535, got %d", c.Server.Port)
	}
	if c.GitHub.BaseURL == "" {
		return fmt.Errorf("github.base_url must not be empty")
	}
	if c.GitHub.RequestsPerSecond <= 0 {
		return fmt.Errorf("github.requests_per_second must be positive, got %g", c.GitHub.RequestsPerSecond)
	}
	if c.Sync.Enabled {
		if c.Sync.Interval < time.Minute {
			return fmt.Errorf("sync.interval must be at least 1m, got %s", c.Sync.Interval)
		}
		if c.Sync.PerPage < 1 || c.Sync.PerPage > 100 {
			return fmt.Errorf("sync.per_page must be in 1-100, got %d", c.Sync.PerPage)
		}
		if c.Sync.MaxPages < 1 {
			return fmt.Errorf("sync.max_pages must be at least 1, got %d", c.Sync.MaxPages)
		}
	}
	if !c.Store.InMemory && c.Store.Path == "" {
		return fmt.Errorf("store.path must be set unless store.in_memory is true")
	}
	if c.Store.GCDiscardRatio <= 0 || c.Store.GCDiscardRatio >= 1 {
		return fmt.Errorf("store.gc_discard_ratio must be in (0,1), got %g", c.Store.GCDiscardRatio)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// Addr returns the host:port the HTTP server binds to.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
