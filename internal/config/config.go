// GameGate - Casual Games Catalog and Recommendation Service
// Copyright 2026 GameGate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamegate/gamegate

// Package config holds the application configuration, loaded with Koanf v2
// from layered sources: struct defaults, an optional YAML file, then
// environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/gamegate/gamegate/internal/recommend"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig     `koanf:"server"`
	API       APIConfig        `koanf:"api"`
	Security  SecurityConfig   `koanf:"security"`
	Session   SessionConfig    `koanf:"session"`
	Catalog   CatalogConfig    `koanf:"catalog"`
	Recommend recommend.Config `koanf:"recommend"`
	Logging   LoggingConfig    `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the server's listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// APIConfig holds pagination and response cache settings.
type APIConfig struct {
	DefaultPageSize int           `koanf:"default_page_size"`
	MaxPageSize     int           `koanf:"max_page_size"`
	CacheTTL        time.Duration `koanf:"cache_ttl"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// SessionConfig holds the session store settings.
type SessionConfig struct {
	Store            string        `koanf:"store"` // "memory" or "badger"
	StorePath        string        `koanf:"store_path"`
	BadgerGCInterval time.Duration `koanf:"badger_gc_interval"`
}

// CatalogConfig holds catalog settings.
type CatalogConfig struct {
	DefaultLocale string `koanf:"default_locale"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`  // trace, debug, info, warn, error
	Format string `koanf:"format"` // json or console
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server shutdown_timeout must be positive, got %v", c.Server.ShutdownTimeout)
	}

	if c.API.DefaultPageSize <= 0 {
		return fmt.Errorf("api default_page_size must be positive, got %d", c.API.DefaultPageSize)
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("api max_page_size (%d) must be >= default_page_size (%d)",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}
	if c.API.CacheTTL <= 0 {
		return fmt.Errorf("api cache_ttl must be positive, got %v", c.API.CacheTTL)
	}

	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitRequests <= 0 {
			return fmt.Errorf("security rate_limit_requests must be positive, got %d", c.Security.RateLimitRequests)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("security rate_limit_window must be positive, got %v", c.Security.RateLimitWindow)
		}
	}

	switch c.Session.Store {
	case "memory":
	case "badger":
		if c.Session.StorePath == "" {
			return fmt.Errorf("session store_path is required when store is badger")
		}
		if c.Session.BadgerGCInterval <= 0 {
			return fmt.Errorf("session badger_gc_interval must be positive, got %v", c.Session.BadgerGCInterval)
		}
	default:
		return fmt.Errorf("session store must be memory or badger, got %q", c.Session.Store)
	}

	if c.Catalog.DefaultLocale == "" {
		return fmt.Errorf("catalog default_locale is required")
	}

	if err := c.Recommend.Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}

	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging level must be one of trace, debug, info, warn, error; got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging format must be json or console, got %q", c.Logging.Format)
	}

	return nil
}
