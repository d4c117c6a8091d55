// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/survey-builder/demographics"
	"github.com/danielhkuo/survey-builder/middleware"
	"github.com/danielhkuo/survey-builder/models"
	"github.com/danielhkuo/survey-builder/session"
	"github.com/danielhkuo/survey-builder/store"
	"github.com/danielhkuo/survey-builder/survey"
)

// ChartHandler drives chart edit sessions. A session belongs to one survey
// and only writes to it on commit.
type ChartHandler struct {
	repo     *store.Surveys
	sessions *session.Registry
	catalog  demographics.Catalog
	now      func() time.Time
}

func NewChartHandler(repo *store.Surveys, sessions *session.Registry, catalog demographics.Catalog) *ChartHandler {
	return &ChartHandler{repo: repo, sessions: sessions, catalog: catalog, now: time.Now}
}

func chartView(s *session.Session, surveyID string) models.ChartSession {
	def := s.Definition()
	return models.ChartSession{
		SessionID:     s.ID(),
		SurveyID:      surveyID,
		State:         s.State().String(),
		DemographicID: def.ID,
		Label:         def.Label,
		Custom:        def.IsCustom(),
		Ranges:        def.Ranges.Ranges(),
		Sum:           def.Ranges.Sum(),
		Remaining:     def.Ranges.Remaining(),
		Complete:      def.Ranges.IsComplete(),
		PendingLabel:  s.PendingLabel(),
	}
}

// OpenChart handles POST /surveys/{id}/charts
// Either demographic_id (edit an existing chart) or template_id (new chart)
// must be set.
func (h *ChartHandler) OpenChart(w http.ResponseWriter, r *http.Request) {
	surveyID := r.PathValue("id")

	var req models.OpenChartRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.DemographicID == "" && req.TemplateID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "template_id or demographic_id is required")
		return
	}

	s, err := h.repo.Get(r.Context(), surveyID)
	if err != nil {
		writeError(w, err, "Failed to load survey")
		return
	}

	var def demographics.Definition
	if req.DemographicID != "" {
		existing, ok := s.Demographic(req.DemographicID)
		if !ok {
			middleware.ErrorResponse(w, http.StatusNotFound, errDemographicNotFound.Error())
			return
		}
		def = existing
	} else {
		def, err = h.catalog.Instantiate(req.TemplateID)
		if err != nil {
			writeError(w, err, "Failed to open chart")
			return
		}
	}

	sid, err := h.sessions.Open(surveyID, def)
	if err != nil {
		writeError(w, err, "Failed to open chart")
		return
	}

	slog.Info("chart opened", "survey_id", surveyID, "session_id", sid, "demographic_id", def.ID)

	h.respond(w, http.StatusCreated, sid, func(*session.Session) error { return nil })
}

// GetChart handles GET /charts/{sid}
func (h *ChartHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, r.PathValue("sid"), func(*session.Session) error { return nil })
}

// SetLabel handles PUT /charts/{sid}/label
func (h *ChartHandler) SetLabel(w http.ResponseWriter, r *http.Request) {
	var req models.SetLabelRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	h.respond(w, http.StatusOK, r.PathValue("sid"), func(s *session.Session) error {
		return s.SetLabel(req.Label)
	})
}

// SetPendingLabel handles PUT /charts/{sid}/pending-label
func (h *ChartHandler) SetPendingLabel(w http.ResponseWriter, r *http.Request) {
	var req models.SetLabelRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	h.respond(w, http.StatusOK, r.PathValue("sid"), func(s *session.Session) error {
		return s.SetPendingLabel(req.Label)
	})
}

// AddRange handles POST /charts/{sid}/ranges
// Without a label in the body the pending label buffer is used.
func (h *ChartHandler) AddRange(w http.ResponseWriter, r *http.Request) {
	var req models.AddRangeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	h.respond(w, http.StatusCreated, r.PathValue("sid"), func(s *session.Session) error {
		if req.Label == "" {
			return s.AddPendingRange()
		}
		return s.AddRangeFromRemainder(req.Label)
	})
}

// UpdateRange handles PUT /charts/{sid}/ranges/{index}
func (h *ChartHandler) UpdateRange(w http.ResponseWriter, r *http.Request) {
	index, ok := parseIndex(w, r)
	if !ok {
		return
	}

	var req models.UpdateRangeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Value == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "value is required")
		return
	}
	value := *req.Value
	h.respond(w, http.StatusOK, r.PathValue("sid"), func(s *session.Session) error {
		return s.UpdateValue(index, value)
	})
}

// DeleteRange handles DELETE /charts/{sid}/ranges/{index}
func (h *ChartHandler) DeleteRange(w http.ResponseWriter, r *http.Request) {
	index, ok := parseIndex(w, r)
	if !ok {
		return
	}
	h.respond(w, http.StatusOK, r.PathValue("sid"), func(s *session.Session) error {
		return s.DeleteRange(index)
	})
}

// Rescale handles POST /charts/{sid}/rescale
func (h *ChartHandler) Rescale(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, r.PathValue("sid"), func(s *session.Session) error {
		return s.Rescale()
	})
}

// CommitChart handles POST /charts/{sid}/commit
// The definition is written to the survey before the session is closed, so
// a storage failure leaves the session open for a retry.
func (h *ChartHandler) CommitChart(w http.ResponseWriter, r *http.Request) {
	sid := r.PathValue("sid")

	var resp models.CommitChartResponse
	err := h.sessions.Do(sid, func(s *session.Session, surveyID string) error {
		def, err := s.Validate()
		if err != nil {
			return err
		}

		saved, err := h.repo.Update(r.Context(), surveyID, func(sv *survey.Survey) error {
			sv.UpsertDemographic(def)
			sv.Touch(h.now().UTC())
			return nil
		})
		if err != nil {
			return err
		}

		if _, err := s.Commit(); err != nil {
			return err
		}

		resp = models.CommitChartResponse{Demographic: def, Survey: saved}
		return nil
	})
	if err != nil {
		writeError(w, err, "Failed to commit chart")
		return
	}

	slog.Info("chart committed", "survey_id", resp.Survey.ID, "session_id", sid, "demographic_id", resp.Demographic.ID)

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// DiscardChart handles POST /charts/{sid}/discard
func (h *ChartHandler) DiscardChart(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, r.PathValue("sid"), func(s *session.Session) error {
		return s.Discard()
	})
}

// respond runs fn on the session and writes the resulting chart state.
func (h *ChartHandler) respond(w http.ResponseWriter, status int, sid string, fn func(*session.Session) error) {
	var view models.ChartSession
	err := h.sessions.Do(sid, func(s *session.Session, surveyID string) error {
		if err := fn(s); err != nil {
			return err
		}
		view = chartView(s, surveyID)
		return nil
	})
	if err != nil {
		writeError(w, err, "Chart session error")
		return
	}
	middleware.JSONResponse(w, status, view)
}

func parseIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "index must be an integer")
		return 0, false
	}
	return index, true
}
