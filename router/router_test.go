// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/survey-builder/allocation"
	"github.com/danielhkuo/survey-builder/models"
	"github.com/danielhkuo/survey-builder/survey"
	"github.com/danielhkuo/survey-builder/testutil"
)

func setValue(v float64) models.UpdateRangeRequest {
	return models.UpdateRangeRequest{Value: &v}
}

func TestHealthEndpoint(t *testing.T) {
	mux := NewRouter(testutil.SetupTestStore(t))

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := NewRouter(testutil.SetupTestStore(t))

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "survey-builder API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux := NewRouter(testutil.SetupTestStore(t))

	// Unknown ids make handlers answer 404 with a JSON error; a missing
	// route would answer 405 or fall through to the root handler.
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/surveys/test-id"},
		{"PUT", "/surveys/test-id"},
		{"DELETE", "/surveys/test-id"},
		{"POST", "/surveys/test-id/star"},
		{"POST", "/surveys/test-id/demographics/delete"},
		{"POST", "/surveys/test-id/questions"},
		{"PUT", "/surveys/test-id/questions/q1"},
		{"DELETE", "/surveys/test-id/questions/q1"},
		{"POST", "/surveys/test-id/questions/move"},
		{"POST", "/surveys/test-id/charts"},
		{"GET", "/charts/sid"},
		{"PUT", "/charts/sid/label"},
		{"PUT", "/charts/sid/pending-label"},
		{"POST", "/charts/sid/ranges"},
		{"PUT", "/charts/sid/ranges/0"},
		{"DELETE", "/charts/sid/ranges/0"},
		{"POST", "/charts/sid/rescale"},
		{"POST", "/charts/sid/commit"},
		{"POST", "/charts/sid/discard"},
	}

	bodies := map[string]interface{}{
		"/surveys/test-id/demographics/delete": models.DeleteDemographicsRequest{IDs: []string{"age"}},
		"/surveys/test-id/questions/move":      models.MoveQuestionRequest{ActiveID: "a", OverID: "b"},
		"/surveys/test-id/charts":              models.OpenChartRequest{TemplateID: "age"},
		"/surveys/test-id/questions":           survey.Question{Type: survey.TypeTrueFalse},
		"/surveys/test-id/questions/q1":        survey.Question{Type: survey.TypeTrueFalse},
		"/charts/sid/ranges/0":                 setValue(10),
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			body, ok := bodies[tc.path]
			if !ok && (tc.method == "PUT" || tc.method == "POST") {
				body = map[string]interface{}{}
			}

			req := testutil.MakeRequest(tc.method, tc.path, body, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, http.StatusNotFound)

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Message == "" {
				t.Errorf("Expected handler error message for %s %s", tc.method, tc.path)
			}
		})
	}
}

// TestAllocationWorkflow drives a chart through the mux from template to
// stored survey
func TestAllocationWorkflow(t *testing.T) {
	mux := NewRouter(testutil.SetupTestStore(t))

	do := func(method, path string, body interface{}, expected int) *httptest.ResponseRecorder {
		t.Helper()
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest(method, path, body, nil))
		testutil.AssertStatus(t, w, expected)
		return w
	}

	// Step 1: Create a survey
	var s survey.Survey
	testutil.AssertJSON(t, do("POST", "/surveys", models.CreateSurveyRequest{Name: "Market study", Owner: "Akiva"}, http.StatusCreated), &s)

	// Step 2: Open a custom chart
	var chart models.ChartSession
	testutil.AssertJSON(t, do("POST", "/surveys/"+s.ID+"/charts", models.OpenChartRequest{TemplateID: "custom"}, http.StatusCreated), &chart)
	base := "/charts/" + chart.SessionID

	// Step 3: Name it and add a third option
	do("PUT", base+"/label", models.SetLabelRequest{Label: "Device"}, http.StatusOK)
	do("PUT", base+"/ranges/0", setValue(30), http.StatusOK)
	testutil.AssertJSON(t, do("POST", base+"/ranges", models.AddRangeRequest{Label: "Tablet"}, http.StatusCreated), &chart)
	if len(chart.Ranges) != 3 || chart.Ranges[2].Value != 20 || !chart.Complete {
		t.Fatalf("Step 3 - unexpected chart %+v", chart)
	}

	// Step 4: Over-allocate, then observe the clamp
	testutil.AssertJSON(t, do("PUT", base+"/ranges/2", models.UpdateRangeRequest{Value: 60}, http.StatusOK), &chart)
	if chart.Sum > allocation.Total+allocation.Epsilon {
		t.Fatalf("Step 4 - sum exceeded 100: %v", chart.Sum)
	}

	// Step 5: Commit
	do("POST", base+"/commit", nil, http.StatusOK)

	// Step 6: The survey listing shows one demographic
	var list models.ListSurveysResponse
	testutil.AssertJSON(t, do("GET", "/surveys", nil, http.StatusOK), &list)
	if len(list.Surveys) != 1 || list.Surveys[0].Demographics != 1 {
		t.Fatalf("Step 6 - unexpected listing %+v", list)
	}

	// Step 7: Remove it again
	var removed models.DeleteDemographicsResponse
	id := ""
	var stored survey.Survey
	testutil.AssertJSON(t, do("GET", "/surveys/"+s.ID, nil, http.StatusOK), &stored)
	if len(stored.Demographics) == 1 {
		id = stored.Demographics[0].ID
	}
	testutil.AssertJSON(t, do("POST", "/surveys/"+s.ID+"/demographics/delete", models.DeleteDemographicsRequest{IDs: []string{id}}, http.StatusOK), &removed)
	if removed.Removed != 1 {
		t.Errorf("Step 7 - expected 1 removed, got %d", removed.Removed)
	}
}
