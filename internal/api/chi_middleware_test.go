// GameGate - Casual Games Catalog and Recommendation Service
// Copyright 2026 GameGate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamegate/gamegate

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAPISecurityHeaders(t *testing.T) {
	t.Run("standard headers always set", func(t *testing.T) {
		handler := APISecurityHeaders()(okHandler())

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		want := map[string]string{
			"X-Content-Type-Options": "nosniff",
			"X-Frame-Options":        "DENY",
			"Referrer-Policy":        "strict-origin-when-cross-origin",
		}
		for header, value := range want {
			if got := rec.Header().Get(header); got != value {
				t.Errorf("%s = %q, want %q", header, got, value)
			}
		}
		if rec.Header().Get("Strict-Transport-Security") != "" {
			t.Error("HSTS set on plain HTTP request")
		}
	})

	t.Run("HSTS behind TLS-terminating proxy", func(t *testing.T) {
		handler := APISecurityHeaders()(okHandler())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-Proto", "https")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Header().Get("Strict-Transport-Security") == "" {
			t.Error("expected HSTS behind https proxy")
		}
	})
}

func TestRequestIDWithLogging(t *testing.T) {
	t.Run("generates an ID when absent", func(t *testing.T) {
		var seen string
		handler := RequestIDWithLogging()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = r.Header.Get("X-Request-ID")
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		if seen == "" {
			t.Error("expected a generated request ID")
		}
	})

	t.Run("preserves an upstream ID", func(t *testing.T) {
		var seen string
		handler := RequestIDWithLogging()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = r.Header.Get("X-Request-ID")
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "upstream-id-42")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		if seen != "upstream-id-42" {
			t.Errorf("request ID = %q, want upstream-id-42", seen)
		}
	})
}

func TestRateLimitCustom(t *testing.T) {
	t.Run("enforces the budget", func(t *testing.T) {
		m := NewChiMiddleware(DefaultChiMiddlewareConfig())
		handler := m.RateLimitCustom(RateLimitConfig{Requests: 2, Window: time.Minute})(okHandler())

		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "203.0.113.7:9999"
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			codes = append(codes, rec.Code)
		}

		if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
			t.Errorf("first two requests = %v, want 200s", codes[:2])
		}
		if codes[2] != http.StatusTooManyRequests {
			t.Errorf("third request = %d, want 429", codes[2])
		}
	})

	t.Run("disabled limiter passes everything", func(t *testing.T) {
		cfg := DefaultChiMiddlewareConfig()
		cfg.RateLimitDisabled = true
		m := NewChiMiddleware(cfg)
		handler := m.RateLimitCustom(RateLimitConfig{Requests: 1, Window: time.Minute})(okHandler())

		for i := 0; i < 5; i++ {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			if rec.Code != http.StatusOK {
				t.Fatalf("request %d = %d, want 200", i, rec.Code)
			}
		}
	})
}

func TestDefaultChiMiddlewareConfig(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()

	if len(cfg.CORSAllowedOrigins) != 0 {
		t.Errorf("CORSAllowedOrigins = %v, want empty by default", cfg.CORSAllowedOrigins)
	}
	if cfg.RateLimitRequests != 100 {
		t.Errorf("RateLimitRequests = %d, want 100", cfg.RateLimitRequests)
	}
	if cfg.RateLimitWindow != time.Minute {
		t.Errorf("RateLimitWindow = %v, want 1m", cfg.RateLimitWindow)
	}
	if cfg.RateLimitDisabled {
		t.Error("rate limiting should be enabled by default")
	}
}
