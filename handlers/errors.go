// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/survey-builder/allocation"
	"github.com/danielhkuo/survey-builder/demographics"
	"github.com/danielhkuo/survey-builder/middleware"
	"github.com/danielhkuo/survey-builder/session"
	"github.com/danielhkuo/survey-builder/store"
	"github.com/danielhkuo/survey-builder/survey"
)

var errDemographicNotFound = errors.New("demographic not found")

// statusFor maps domain errors onto HTTP status codes. Anything not listed
// is a storage or internal failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, allocation.ErrEmptyLabel),
		errors.Is(err, allocation.ErrDuplicateLabel),
		errors.Is(err, allocation.ErrIndexOutOfRange),
		errors.Is(err, survey.ErrNameRequired),
		errors.Is(err, survey.ErrUnknownQuestionType),
		errors.Is(err, demographics.ErrUnknownTemplate):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrSurveyNotFound),
		errors.Is(err, survey.ErrQuestionNotFound),
		errors.Is(err, session.ErrSessionNotFound),
		errors.Is(err, errDemographicNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrIncompleteAllocation),
		errors.Is(err, session.ErrMissingName),
		errors.Is(err, session.ErrInvalidState):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError sends err to the client. Internal errors are logged and
// replaced with fallback so storage details do not leak.
func writeError(w http.ResponseWriter, err error, fallback string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error(fallback, "error", err)
		middleware.ErrorResponse(w, status, fallback)
		return
	}
	middleware.ErrorResponse(w, status, err.Error())
}
