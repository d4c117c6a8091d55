// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the survey builder API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(repo)

# Endpoints

Health:

	GET /health

Templates:

	GET /templates/demographics - Demographic chart templates
	GET /templates/questions    - Question types and defaults

Surveys:

	POST   /surveys                            - Create survey
	GET    /surveys?sort=&starred=&q=          - List summaries
	GET    /surveys/{id}                       - Full survey
	PUT    /surveys/{id}                       - Rename, set owner or info
	DELETE /surveys/{id}                       - Delete survey
	POST   /surveys/{id}/star                  - Star or unstar
	POST   /surveys/{id}/demographics/delete   - Remove selected demographics

Questions:

	POST   /surveys/{id}/questions        - Add question
	PUT    /surveys/{id}/questions/{qid}  - Replace question
	DELETE /surveys/{id}/questions/{qid}  - Remove question
	POST   /surveys/{id}/questions/move   - Drag-and-drop reorder

Chart sessions:

	POST   /surveys/{id}/charts            - Open session
	GET    /charts/{sid}                   - Current state
	PUT    /charts/{sid}/label             - Rename chart
	PUT    /charts/{sid}/pending-label     - Fill the new range label buffer
	POST   /charts/{sid}/ranges            - Add range from the remainder
	PUT    /charts/{sid}/ranges/{index}    - Set a value
	DELETE /charts/{sid}/ranges/{index}    - Delete a range
	POST   /charts/{sid}/rescale           - Scale to exactly 100%
	POST   /charts/{sid}/commit            - Save into the survey
	POST   /charts/{sid}/discard           - Drop the working copy

# Handler Initialization

The router creates handler instances with dependency injection:

	sessions := session.NewRegistry()
	surveyHandler := handlers.NewSurveyHandler(repo, sessions)
	chartHandler := handlers.NewChartHandler(repo, sessions, catalog)
	templateHandler := handlers.NewTemplateHandler(catalog)

Chart sessions live in memory until they are committed or discarded, or
their survey is deleted. Both handlers share one session registry.
*/
package router
