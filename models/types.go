// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"time"

	"github.com/danielhkuo/survey-builder/allocation"
	"github.com/danielhkuo/survey-builder/demographics"
	"github.com/danielhkuo/survey-builder/survey"
)

// Request types

type CreateSurveyRequest struct {
	Name              string `json:"name"`
	Owner             string `json:"owner"`
	CustomInformation string `json:"custom_information"`
}

// Nil fields are left unchanged
type UpdateSurveyRequest struct {
	Name              *string `json:"name"`
	Owner             *string `json:"owner"`
	CustomInformation *string `json:"custom_information"`
}

type StarSurveyRequest struct {
	Starred bool `json:"starred"`
}

type DeleteDemographicsRequest struct {
	IDs []string `json:"ids"`
}

// Drag-and-drop reorder: active question moves to the position of over
type MoveQuestionRequest struct {
	ActiveID string `json:"active_id"`
	OverID   string `json:"over_id"`
}

// Exactly one of TemplateID or DemographicID
type OpenChartRequest struct {
	TemplateID    string `json:"template_id"`
	DemographicID string `json:"demographic_id"`
}

type SetLabelRequest struct {
	Label string `json:"label"`
}

// Empty label uses the session's pending label buffer
type AddRangeRequest struct {
	Label string `json:"label"`
}

type UpdateRangeRequest struct {
	Value *float64 `json:"value"` // required
}

// Response types

type SurveySummary struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Owner           string    `json:"owner"`
	CreationDate    time.Time `json:"creation_date"`
	LastModified    time.Time `json:"last_modified"`
	LastModifiedAgo string    `json:"last_modified_ago"`
	Starred         bool      `json:"starred"`
	Demographics    int       `json:"demographics"`
	Questions       int       `json:"questions"`
}

type ListSurveysResponse struct {
	Surveys []SurveySummary `json:"surveys"`
}

type DeleteDemographicsResponse struct {
	Removed int `json:"removed"`
}

type ChartSession struct {
	SessionID     string             `json:"session_id"`
	SurveyID      string             `json:"survey_id"`
	State         string             `json:"state"`
	DemographicID string             `json:"demographic_id"`
	Label         string             `json:"label"`
	Custom        bool               `json:"custom"`
	Ranges        []allocation.Range `json:"ranges"`
	Sum           float64            `json:"sum"`
	Remaining     float64            `json:"remaining"` // may be negative
	Complete      bool               `json:"complete"`
	PendingLabel  string             `json:"pending_label"`
}

type CommitChartResponse struct {
	Demographic demographics.Definition `json:"demographic"`
	Survey      survey.Survey           `json:"survey"`
}

type TemplatesResponse struct {
	Demographics []demographics.Template   `json:"demographics,omitempty"`
	Questions    []survey.QuestionTemplate `json:"questions,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
