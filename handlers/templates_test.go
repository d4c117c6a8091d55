// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/survey-builder/demographics"
	"github.com/danielhkuo/survey-builder/models"
	"github.com/danielhkuo/survey-builder/testutil"
)

func TestListTemplates(t *testing.T) {
	handler := NewTemplateHandler(demographics.DefaultCatalog())

	w := httptest.NewRecorder()
	handler.ListDemographics(w, httptest.NewRequest("GET", "/templates/demographics", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.TemplatesResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Demographics) != 5 || resp.Demographics[0].ID != "age" {
		t.Errorf("Unexpected demographic templates: %+v", resp.Demographics)
	}
	if len(resp.Questions) != 0 {
		t.Error("Expected no question templates in demographic listing")
	}

	w = httptest.NewRecorder()
	handler.ListQuestions(w, httptest.NewRequest("GET", "/templates/questions", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	resp = models.TemplatesResponse{}
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Questions) != 4 || resp.Questions[0].ID != "multiple-choice" {
		t.Errorf("Unexpected question templates: %+v", resp.Questions)
	}
}
