// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/survey-builder/middleware"
	"github.com/danielhkuo/survey-builder/models"
	"github.com/danielhkuo/survey-builder/session"
	"github.com/danielhkuo/survey-builder/store"
	"github.com/danielhkuo/survey-builder/survey"
)

type SurveyHandler struct {
	repo     *store.Surveys
	sessions *session.Registry
	now      func() time.Time
}

func NewSurveyHandler(repo *store.Surveys, sessions *session.Registry) *SurveyHandler {
	return &SurveyHandler{repo: repo, sessions: sessions, now: time.Now}
}

// Summarize converts a survey into its listing row.
func Summarize(s survey.Survey, now time.Time) models.SurveySummary {
	last := s.LastActivity()
	return models.SurveySummary{
		ID:              s.ID,
		Name:            s.Name,
		Owner:           s.Owner,
		CreationDate:    s.CreationDate,
		LastModified:    last,
		LastModifiedAgo: humanize.RelTime(last, now, "ago", "from now"),
		Starred:         s.Starred,
		Demographics:    len(s.Demographics),
		Questions:       len(s.Questions),
	}
}

// CreateSurvey handles POST /surveys
func (h *SurveyHandler) CreateSurvey(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSurveyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	s, err := survey.New(req.Name, req.Owner, h.now().UTC())
	if err != nil {
		writeError(w, err, "Failed to create survey")
		return
	}
	s.CustomInformation = req.CustomInformation

	if err := h.repo.Save(r.Context(), s); err != nil {
		writeError(w, err, "Failed to create survey")
		return
	}

	slog.Info("survey created", "survey_id", s.ID, "owner", s.Owner)

	middleware.JSONResponse(w, http.StatusCreated, s)
}

// ListSurveys handles GET /surveys?sort=&starred=&q=
func (h *SurveyHandler) ListSurveys(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter survey.Filter
	if v := query.Get("starred"); v != "" {
		starred, err := strconv.ParseBool(v)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "starred must be a boolean")
			return
		}
		filter.StarredOnly = starred
	}
	filter.Query = query.Get("q")

	sortBy := query.Get("sort")
	switch sortBy {
	case "", survey.SortLastModified, survey.SortName, survey.SortCreated:
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "sort must be one of last_modified, name, created")
		return
	}

	all, err := h.repo.List(r.Context())
	if err != nil {
		writeError(w, err, "Failed to list surveys")
		return
	}

	now := h.now()
	summaries := []models.SurveySummary{}
	for _, s := range survey.List(all, filter, sortBy) {
		summaries = append(summaries, Summarize(s, now))
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListSurveysResponse{Surveys: summaries})
}

// GetSurvey handles GET /surveys/{id}
func (h *SurveyHandler) GetSurvey(w http.ResponseWriter, r *http.Request) {
	s, err := h.repo.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err, "Failed to load survey")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, s)
}

// UpdateSurvey handles PUT /surveys/{id}
func (h *SurveyHandler) UpdateSurvey(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSurveyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	s, err := h.repo.Update(r.Context(), r.PathValue("id"), func(s *survey.Survey) error {
		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				return survey.ErrNameRequired
			}
			s.Name = name
		}
		if req.Owner != nil {
			s.Owner = strings.TrimSpace(*req.Owner)
		}
		if req.CustomInformation != nil {
			s.CustomInformation = *req.CustomInformation
		}
		s.Touch(h.now().UTC())
		return nil
	})
	if err != nil {
		writeError(w, err, "Failed to update survey")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, s)
}

// DeleteSurvey handles DELETE /surveys/{id}
func (h *SurveyHandler) DeleteSurvey(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.repo.Delete(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete survey")
		return
	}

	// Open charts of the survey can no longer commit anywhere
	dropped := h.sessions.CloseOwner(id)

	slog.Info("survey deleted", "survey_id", id, "sessions_closed", dropped)

	w.WriteHeader(http.StatusNoContent)
}

// StarSurvey handles POST /surveys/{id}/star
func (h *SurveyHandler) StarSurvey(w http.ResponseWriter, r *http.Request) {
	var req models.StarSurveyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Starring is not an edit, LastModified stays
	s, err := h.repo.Update(r.Context(), r.PathValue("id"), func(s *survey.Survey) error {
		s.Starred = req.Starred
		return nil
	})
	if err != nil {
		writeError(w, err, "Failed to star survey")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, s)
}

// DeleteDemographics handles POST /surveys/{id}/demographics/delete
func (h *SurveyHandler) DeleteDemographics(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteDemographicsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if len(req.IDs) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "ids is required")
		return
	}

	var removed int
	_, err := h.repo.Update(r.Context(), r.PathValue("id"), func(s *survey.Survey) error {
		removed = s.RemoveDemographics(req.IDs...)
		if removed > 0 {
			s.Touch(h.now().UTC())
		}
		return nil
	})
	if err != nil {
		writeError(w, err, "Failed to delete demographics")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DeleteDemographicsResponse{Removed: removed})
}

// AddQuestion handles POST /surveys/{id}/questions
func (h *SurveyHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	var req survey.Question
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var added survey.Question
	_, err := h.repo.Update(r.Context(), r.PathValue("id"), func(s *survey.Survey) error {
		q, err := s.AddQuestion(req)
		if err != nil {
			return err
		}
		added = q
		s.Touch(h.now().UTC())
		return nil
	})
	if err != nil {
		writeError(w, err, "Failed to add question")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, added)
}

// UpdateQuestion handles PUT /surveys/{id}/questions/{qid}
func (h *SurveyHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	var req survey.Question
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	req.ID = r.PathValue("qid")

	var updated survey.Question
	_, err := h.repo.Update(r.Context(), r.PathValue("id"), func(s *survey.Survey) error {
		q, err := s.UpdateQuestion(req)
		if err != nil {
			return err
		}
		updated = q
		s.Touch(h.now().UTC())
		return nil
	})
	if err != nil {
		writeError(w, err, "Failed to update question")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, updated)
}

// DeleteQuestion handles DELETE /surveys/{id}/questions/{qid}
func (h *SurveyHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	_, err := h.repo.Update(r.Context(), r.PathValue("id"), func(s *survey.Survey) error {
		if err := s.DeleteQuestion(r.PathValue("qid")); err != nil {
			return err
		}
		s.Touch(h.now().UTC())
		return nil
	})
	if err != nil {
		writeError(w, err, "Failed to delete question")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MoveQuestion handles POST /surveys/{id}/questions/move
func (h *SurveyHandler) MoveQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.MoveQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ActiveID == "" || req.OverID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "active_id and over_id are required")
		return
	}

	s, err := h.repo.Update(r.Context(), r.PathValue("id"), func(s *survey.Survey) error {
		if err := s.MoveQuestion(req.ActiveID, req.OverID); err != nil {
			return err
		}
		s.Touch(h.now().UTC())
		return nil
	})
	if err != nil {
		writeError(w, err, "Failed to move question")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, s)
}
