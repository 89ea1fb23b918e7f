// GameGate - Casual Games Catalog and Recommendation Service
// Copyright 2026 GameGate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamegate/gamegate

package api

import (
	"net/http"
	"time"

	"github.com/gamegate/gamegate/internal/cache"
	"github.com/gamegate/gamegate/internal/metrics"
	"github.com/gamegate/gamegate/internal/models"
)

// healthStatus is the payload for the main health endpoint.
type healthStatus struct {
	Status         string         `json:"status"`
	Version        string         `json:"version"`
	Uptime         float64        `json:"uptime"` // seconds
	Locales        []string       `json:"locales"`
	CatalogSizes   map[string]int `json:"catalogSizes"`
	ActiveSessions int            `json:"activeSessions"`
	StoreConnected bool           `json:"storeConnected"`
}

// Health reports overall service health: catalog sizes per locale, session
// store connectivity and the active session count.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	sizes := make(map[string]int)
	for _, locale := range h.catalogs.Locales() {
		sizes[locale] = h.catalogs.Catalog(locale).Len()
	}

	active, err := h.sessions.ActiveSessions(r.Context())
	storeConnected := err == nil
	if storeConnected {
		metrics.SessionsActive.Set(float64(active))
	}

	status := "healthy"
	if !storeConnected {
		status = "degraded"
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: healthStatus{
			Status:         status,
			Version:        "1.0.0",
			Uptime:         time.Since(h.startTime).Seconds(),
			Locales:        h.catalogs.Locales(),
			CatalogSizes:   sizes,
			ActiveSessions: active,
			StoreConnected: storeConnected,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthLive is the liveness probe. Returns 200 whenever the process is
// up, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady is the readiness probe. Returns 503 until the catalogs are
// loaded and the session store answers.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	catalogsLoaded := len(h.catalogs.Locales()) > 0
	_, err := h.sessions.ActiveSessions(r.Context())
	storeConnected := err == nil
	ready := catalogsLoaded && storeConnected

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: status,
		Data: map[string]interface{}{
			"catalogs_loaded": catalogsLoaded,
			"store_connected": storeConnected,
			"ready_to_serve":  ready,
			"uptime":          time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// GetCacheStats returns response cache performance counters.
func (h *Handler) GetCacheStats() cache.Stats {
	if h.cache != nil {
		return h.cache.GetStats()
	}
	return cache.Stats{}
}
