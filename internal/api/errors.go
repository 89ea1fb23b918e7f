// GameGate - Casual Games Catalog and Recommendation Service
// Copyright 2026 GameGate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamegate/gamegate

package api

import (
	"errors"
	"net/http"

	"github.com/gamegate/gamegate/internal/catalog"
	"github.com/gamegate/gamegate/internal/query"
	"github.com/gamegate/gamegate/internal/session"
)

// API error codes.
const (
	CodeInvalidScenario  = "INVALID_SCENARIO"
	CodeInvalidTimeRange = "INVALID_TIME_RANGE"
	CodeQueryTooShort    = "QUERY_TOO_SHORT"
	CodeNotFound         = "NOT_FOUND"
	CodeMissingField     = "MISSING_FIELD"
	CodeSessionExpired   = "SESSION_EXPIRED"
	CodeValidationError  = "VALIDATION_ERROR"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeInternalError    = "INTERNAL_ERROR"
)

// respondDomainError maps domain sentinel errors onto HTTP statuses and
// API error codes, falling back to a 500 for anything unrecognized.
func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, query.ErrInvalidScenario):
		respondError(w, http.StatusBadRequest, CodeInvalidScenario, err.Error(), nil)
	case errors.Is(err, query.ErrInvalidTimeRange):
		respondError(w, http.StatusBadRequest, CodeInvalidTimeRange, err.Error(), nil)
	case errors.Is(err, query.ErrQueryTooShort):
		respondError(w, http.StatusBadRequest, CodeQueryTooShort, err.Error(), nil)
	case errors.Is(err, catalog.ErrGameNotFound):
		respondError(w, http.StatusNotFound, CodeNotFound, "The requested game does not exist", nil)
	case errors.Is(err, session.ErrMissingField):
		respondError(w, http.StatusBadRequest, CodeMissingField, err.Error(), nil)
	case errors.Is(err, session.ErrSessionExpired):
		respondError(w, http.StatusUnauthorized, CodeSessionExpired, "Session expired, please start over", nil)
	default:
		respondError(w, http.StatusInternalServerError, CodeInternalError, "Internal server error", err)
	}
}
