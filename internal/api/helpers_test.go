// GameGate - Casual Games Catalog and Recommendation Service
// Copyright 2026 GameGate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamegate/gamegate

package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/gamegate/gamegate/internal/catalog"
	"github.com/gamegate/gamegate/internal/config"
	"github.com/gamegate/gamegate/internal/recommend"
	"github.com/gamegate/gamegate/internal/session"
)

// newTestConfig builds a config with sane defaults for handler tests.
func newTestConfig() *config.Config {
	return &config.Config{
		API: config.APIConfig{
			DefaultPageSize: 12,
			MaxPageSize:     100,
			CacheTTL:        time.Minute,
		},
		Security: config.SecurityConfig{
			RateLimitRequests: 1000,
			RateLimitWindow:   time.Minute,
		},
		Recommend: recommend.DefaultConfig(),
	}
}

// newTestHandler wires a handler against the built-in catalogs and an
// in-memory session store.
func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	catalogs, err := catalog.NewStore(catalog.LocaleEN)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	cfg := newTestConfig()
	sessions := session.NewManager(session.NewMemoryStore(), catalogs)
	scorer := recommend.NewScorer(cfg.Recommend)

	handler := NewHandler(catalogs, sessions, scorer, cfg)
	t.Cleanup(handler.Close)
	return handler
}

// newTestServer builds the full Chi route tree around a fresh handler.
func newTestServer(t *testing.T) (http.Handler, *Handler) {
	t.Helper()

	handler := newTestHandler(t)
	router := NewRouter(handler, nil)
	return router.SetupChi(), handler
}

// doRequest performs one request against the route tree.
func doRequest(t *testing.T, srv http.Handler, method, target string, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

// envelope mirrors the response envelope with the payload left raw so each
// test can decode its own shape.
type envelope struct {
	Status   string          `json:"status"`
	Data     json.RawMessage `json:"data"`
	Metadata struct {
		Timestamp   time.Time `json:"timestamp"`
		QueryTimeMS int64     `json:"query_time_ms"`
		Cached      bool      `json:"cached"`
	} `json:"metadata"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// decodeEnvelope parses the recorded response body.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode envelope: %v\nbody: %s", err, rec.Body.String())
	}
	return env
}

// decodeData parses the envelope payload into v.
func decodeData(t *testing.T, env envelope, v interface{}) {
	t.Helper()

	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("failed to decode data payload: %v\ndata: %s", err, string(env.Data))
	}
}

// wantErrorCode asserts an error envelope with the given status and code.
func wantErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	if rec.Code != status {
		t.Fatalf("status = %d, want %d\nbody: %s", rec.Code, status, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if env.Status != "error" {
		t.Errorf("envelope status = %q, want %q", env.Status, "error")
	}
	if env.Error == nil {
		t.Fatal("expected error payload, got none")
	}
	if env.Error.Code != code {
		t.Errorf("error code = %q, want %q", env.Error.Code, code)
	}
}
