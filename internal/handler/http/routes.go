package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// compressionLevel is the gzip level used for responses.
const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZipRequest)
	router.Use(middleware.Compress(compressionLevel, "application/json", "text/plain"))

	router.Group(func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		r.Post("/api/encrypt", h.encrypt)
		r.Post("/api/decrypt", h.decrypt)
	})

	router.Group(func(r chi.Router) {
		r.Get("/api/candidates", h.candidates)
		r.Get("/api/candidates/check", h.checkCandidates)
		r.Get("/api/version/", h.getServerVersion)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
