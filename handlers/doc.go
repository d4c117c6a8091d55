// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the survey builder API.

# Handler Types

Each handler is a struct with its storage and session dependencies:

  - SurveyHandler: Survey records, demographic removal and questions
  - ChartHandler: Chart edit sessions over demographic allocations
  - TemplateHandler: Demographic and question template catalogs

Handlers are created via constructor functions:

	sessions := session.NewRegistry()
	surveyHandler := handlers.NewSurveyHandler(repo, sessions)
	chartHandler := handlers.NewChartHandler(repo, sessions, demographics.DefaultCatalog())

# Chart Sessions

A chart session edits a working copy of one demographic definition:

	POST /surveys/{id}/charts        → OpenChart (template_id or demographic_id)
	PUT  /charts/{sid}/ranges/{index} → UpdateRange (others shrink to keep ≤ 100%)
	DELETE /charts/{sid}/ranges/{index} → DeleteRange (value spread over survivors)
	POST /charts/{sid}/rescale       → Rescale (scale to exactly 100%)
	POST /charts/{sid}/commit        → CommitChart (writes into the survey)
	POST /charts/{sid}/discard       → DiscardChart

Deleting a survey closes its open chart sessions. Every chart response carries the unclamped remaining percentage and
whether the chart is complete. Commit is refused with 409 until the
ranges add up to 100% and custom charts have a name.

# Errors

Validation errors map to 400, unknown surveys, questions and sessions to
404, and session state conflicts to 409. Storage failures are logged with
slog and returned as a generic 500.
*/
package handlers
