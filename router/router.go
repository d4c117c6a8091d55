// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/survey-builder/demographics"
	"github.com/danielhkuo/survey-builder/handlers"
	"github.com/danielhkuo/survey-builder/middleware"
	"github.com/danielhkuo/survey-builder/session"
	"github.com/danielhkuo/survey-builder/store"
)

func NewRouter(repo *store.Surveys) *http.ServeMux {
	mux := http.NewServeMux()

	catalog := demographics.DefaultCatalog()
	sessions := session.NewRegistry()

	// Initialize handlers
	surveyHandler := handlers.NewSurveyHandler(repo, sessions)
	chartHandler := handlers.NewChartHandler(repo, sessions, catalog)
	templateHandler := handlers.NewTemplateHandler(catalog)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Template catalogs
	mux.HandleFunc("GET /templates/demographics", middleware.WithLogging(templateHandler.ListDemographics))
	mux.HandleFunc("GET /templates/questions", middleware.WithLogging(templateHandler.ListQuestions))

	// Survey records
	mux.HandleFunc("POST /surveys", middleware.WithLogging(surveyHandler.CreateSurvey))
	mux.HandleFunc("GET /surveys", middleware.WithLogging(surveyHandler.ListSurveys))
	mux.HandleFunc("GET /surveys/{id}", middleware.WithLogging(surveyHandler.GetSurvey))
	mux.HandleFunc("PUT /surveys/{id}", middleware.WithLogging(surveyHandler.UpdateSurvey))
	mux.HandleFunc("DELETE /surveys/{id}", middleware.WithLogging(surveyHandler.DeleteSurvey))
	mux.HandleFunc("POST /surveys/{id}/star", middleware.WithLogging(surveyHandler.StarSurvey))
	mux.HandleFunc("POST /surveys/{id}/demographics/delete", middleware.WithLogging(surveyHandler.DeleteDemographics))

	// Questions
	mux.HandleFunc("POST /surveys/{id}/questions", middleware.WithLogging(surveyHandler.AddQuestion))
	mux.HandleFunc("PUT /surveys/{id}/questions/{qid}", middleware.WithLogging(surveyHandler.UpdateQuestion))
	mux.HandleFunc("DELETE /surveys/{id}/questions/{qid}", middleware.WithLogging(surveyHandler.DeleteQuestion))
	mux.HandleFunc("POST /surveys/{id}/questions/move", middleware.WithLogging(surveyHandler.MoveQuestion))

	// Chart edit sessions
	mux.HandleFunc("POST /surveys/{id}/charts", middleware.WithLogging(chartHandler.OpenChart))
	mux.HandleFunc("GET /charts/{sid}", middleware.WithLogging(chartHandler.GetChart))
	mux.HandleFunc("PUT /charts/{sid}/label", middleware.WithLogging(chartHandler.SetLabel))
	mux.HandleFunc("PUT /charts/{sid}/pending-label", middleware.WithLogging(chartHandler.SetPendingLabel))
	mux.HandleFunc("POST /charts/{sid}/ranges", middleware.WithLogging(chartHandler.AddRange))
	mux.HandleFunc("PUT /charts/{sid}/ranges/{index}", middleware.WithLogging(chartHandler.UpdateRange))
	mux.HandleFunc("DELETE /charts/{sid}/ranges/{index}", middleware.WithLogging(chartHandler.DeleteRange))
	mux.HandleFunc("POST /charts/{sid}/rescale", middleware.WithLogging(chartHandler.Rescale))
	mux.HandleFunc("POST /charts/{sid}/commit", middleware.WithLogging(chartHandler.CommitChart))
	mux.HandleFunc("POST /charts/{sid}/discard", middleware.WithLogging(chartHandler.DiscardChart))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("survey-builder API v1"))
	})

	return mux
}
