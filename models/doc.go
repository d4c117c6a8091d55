// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateSurveyRequest: name, owner, custom_information
  - UpdateSurveyRequest: optional name, owner, custom_information
  - StarSurveyRequest: starred
  - DeleteDemographicsRequest: ids
  - MoveQuestionRequest: active_id, over_id
  - OpenChartRequest: template_id or demographic_id
  - SetLabelRequest: label
  - AddRangeRequest: label (empty = pending label buffer)
  - UpdateRangeRequest: value (required)

# Response Types

Types for JSON responses:

  - SurveySummary / ListSurveysResponse: survey listings
  - ChartSession: live state of a chart edit session
  - CommitChartResponse: committed demographic and updated survey
  - TemplatesResponse: demographic and question templates
  - ErrorResponse: error, message

Survey records themselves (survey.Survey) are returned as stored, with
camelCase field names matching the persisted format.

# Chart Sessions

ChartSession.remaining is 100 minus the sum of the ranges and is not
clamped: a negative value means the chart is over-allocated and cannot be
committed until corrected.
*/
package models
