// Package web provides the read-only HTTP API over the sections dataset.
package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/JonMunkholm/omareport/internal/config"
	"github.com/JonMunkholm/omareport/internal/report"
	webmw "github.com/JonMunkholm/omareport/internal/web/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server serves sections and chart series to the reporting front end.
type Server struct {
	store  *report.Store
	cfg    config.ServerConfig
	router *chi.Mux
	server *http.Server
}

// NewServer creates a Server over store.
func NewServer(store *report.Store, cfg config.ServerConfig) *Server {
	s := &Server{
		store:  store,
		cfg:    cfg,
		router: chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(webmw.TrustedRealIP(s.cfg.TrustedProxies))
	s.router.Use(webmw.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(s.cfg.RequestTimeout))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/sections", s.handleListSections)

		r.Route("/sections/{sectionID}", func(r chi.Router) {
			r.Get("/", s.handleGetSection)
			r.Get("/totals", s.handleTotals)
			r.Get("/bars", s.handleBars)
			r.Get("/pie", s.handlePie)
			r.Get("/comparison", s.handleComparison)
		})
	})
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins listening for HTTP requests. It blocks until the server stops.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	slog.Info("server listening", "addr", s.cfg.Addr(), "sections", s.store.Len())
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
