// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/survey-builder/demographics"
	"github.com/danielhkuo/survey-builder/middleware"
	"github.com/danielhkuo/survey-builder/models"
	"github.com/danielhkuo/survey-builder/survey"
)

type TemplateHandler struct {
	catalog demographics.Catalog
}

func NewTemplateHandler(catalog demographics.Catalog) *TemplateHandler {
	return &TemplateHandler{catalog: catalog}
}

// ListDemographics handles GET /templates/demographics
func (h *TemplateHandler) ListDemographics(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.TemplatesResponse{
		Demographics: h.catalog.List(),
	})
}

// ListQuestions handles GET /templates/questions
func (h *TemplateHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.TemplatesResponse{
		Questions: survey.QuestionTemplates(),
	})
}
