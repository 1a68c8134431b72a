// Package api exposes the dictionary over a JSON HTTP interface.
package api

import (
	"net/http"

	"dictionary/internal/middleware"
	"dictionary/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Server routes HTTP requests to the dictionary services
type Server struct {
	router       chi.Router
	languages    *service.LanguageService
	words        *service.WordService
	translations *service.TranslationService
	logger       *zap.Logger
}

// NewServer creates the router and registers all routes
func NewServer(
	languages *service.LanguageService,
	words *service.WordService,
	translations *service.TranslationService,
	logger *zap.Logger,
) *Server {
	s := &Server{
		router:       chi.NewRouter(),
		languages:    languages,
		words:        words,
		translations: translations,
		logger:       logger,
	}
	s.routes()
	return s
}

// Handler returns the root http.Handler
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := s.router

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLogger(s.logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.CleanPath)

	r.Get("/health", s.health)

	r.Route("/languages", func(r chi.Router) {
		r.Get("/", s.listLanguages)
		r.Post("/", s.createLanguage)
		r.Get("/{id}/words", s.listLanguageWords)
	})

	r.Route("/words", func(r chi.Router) {
		r.Get("/", s.searchWords)
		r.Post("/", s.createWord)
		r.Get("/{id}", s.getWord)
		r.Get("/{id}/translations", s.wordTranslations)
	})

	r.Post("/translations", s.addTranslation)
	r.Get("/lookup/{name}", s.lookup)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
