package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// Landing pages are served from arbitrary origins during the prerelease
	// phase, so the cross-origin policy is fully permissive.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	router.Get("/", h.root)
	router.Get("/health", h.health)

	router.Post("/notifyme", h.notifyMe)
	router.Get("/notifyme", h.listSignups)

	router.Post("/contrib/exam_paper", h.submitExamPaper)
	router.Get("/contrib/exam_paper", h.listExamPapers)

	router.Post("/register", h.register)
	router.Post("/login", h.login)

	return router
}
