package api

import (
	"github.com/alwitt/larder/store"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

/*
NewRouter build the HTTP router of the archive server

	@param archive store.DocumentArchive - the document archive controller
	@returns the router
*/
func NewRouter(archive store.DocumentArchive) *chi.Mux {
	handler := NewHandler(archive)

	router := chi.NewRouter()
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	router.Route("/v1", func(r chi.Router) {
		r.Route("/documents", func(r chi.Router) {
			r.Get("/", handler.ListDocuments)
			r.Post("/", handler.CreateDocument)
			r.Get("/search", handler.SearchDocuments)
			r.Get("/{id}", handler.GetDocument)
			r.Put("/{id}", handler.AmendDocument)
			r.Delete("/{id}", handler.DeleteDocument)
		})
		r.Route("/archive", func(r chi.Router) {
			r.Get("/folders", handler.BrowseArchiveFolders)
			r.Get("/kinds", handler.ListDocumentKinds)
			r.Get("/events", handler.ListArchiveEvents)
		})
	})

	router.Get("/healthz", handler.Healthz)
	router.Handle("/metrics", promhttp.Handler())

	return router
}
