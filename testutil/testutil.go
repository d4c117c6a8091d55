// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/survey-builder/cliparse"
	"github.com/danielhkuo/survey-builder/db"
	"github.com/danielhkuo/survey-builder/store"
	"github.com/danielhkuo/survey-builder/survey"
)

// SetupTestStore returns a survey repository backed by a fresh in-memory
// SQLite database with the full schema.
func SetupTestStore(t *testing.T) *store.Surveys {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	kv, err := store.NewSQL(conn, db.TypeSQLite)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	return store.NewSurveys(kv, store.DefaultSurveysKey)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  ":memory:",
		DatabaseType: db.TypeSQLite,
		SurveysKey:   store.DefaultSurveysKey,
	}
}

// CreateTestSurvey saves an empty survey and returns it
func CreateTestSurvey(t *testing.T, repo *store.Surveys, name string) survey.Survey {
	t.Helper()

	s, err := survey.New(name, "TestUser", time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to build test survey: %v", err)
	}
	if err := repo.Save(context.Background(), s); err != nil {
		t.Fatalf("Failed to create test survey: %v", err)
	}

	return s
}

// AddTestQuestion appends a question of the given type to a stored survey
func AddTestQuestion(t *testing.T, repo *store.Surveys, surveyID, questionType string) survey.Question {
	t.Helper()

	var added survey.Question
	_, err := repo.Update(context.Background(), surveyID, func(s *survey.Survey) error {
		q, err := s.AddQuestion(survey.Question{Type: questionType, Question: "Test question"})
		added = q
		return err
	})
	if err != nil {
		t.Fatalf("Failed to add test question: %v", err)
	}

	return added
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
