package web

import (
	"github.com/go-chi/chi/v5"
	"github.com/kozaktomas/journal-press/internal/store"
	"github.com/kozaktomas/journal-press/internal/web/handlers"
)

func (s *Server) setupRoutes(st *store.Store) {
	notebooksHandler := handlers.NewNotebooksHandler(st)
	exportsHandler := handlers.NewExportsHandler(s.config, st, s.jobManager)

	s.router.Get("/api/v1/health", handlers.HealthCheck)

	s.router.Route("/api/v1", func(r chi.Router) {
		// Notebooks
		r.Get("/notebooks", notebooksHandler.List)
		r.Get("/notebooks/{slug}", notebooksHandler.Get)

		// Exports (long-running operations)
		r.Post("/exports", exportsHandler.Start)
		r.Get("/exports/{jobId}", exportsHandler.Status)
		r.Get("/exports/{jobId}/events", exportsHandler.Events)
		r.Get("/exports/{jobId}/download", exportsHandler.Download)
		r.Delete("/exports/{jobId}", exportsHandler.Cancel)
	})
}
