package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the public API. Collection routes answer with and
// without a trailing slash.
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/health", handlers.healthHandler.health())

	r.Route("/proyectos", func(r chi.Router) {
		r.Get("/", handlers.projectHandler.getAllProjects())
		r.Post("/", handlers.projectHandler.createProject())
		r.Get("/{projectID}", handlers.projectHandler.getProject())
		r.Put("/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/{projectID}", handlers.projectHandler.deleteProject())
	})

	r.Route("/diagnostico", func(r chi.Router) {
		r.Get("/requisitos", handlers.diagnosticHandler.getRequirements())
		r.Post("/respuestas", handlers.diagnosticHandler.submitAnswers())
		r.Post("/respuestas/", handlers.diagnosticHandler.submitAnswers())
		r.Get("/{projectID}/metricas", handlers.diagnosticHandler.getMetrics())
		r.Get("/{projectID}/respuestas", handlers.diagnosticHandler.getAnswers())
	})
}
