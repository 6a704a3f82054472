// Package httpserver exposes the dashboard data as JSON over HTTP.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/renato0307/kdash/internal/httpserver/handlers"
	"github.com/renato0307/kdash/internal/httpserver/mw"
	"github.com/renato0307/kdash/internal/k8s"
	"github.com/renato0307/kdash/internal/logging"
)

// DefaultListenAddr is used when no address is configured
const DefaultListenAddr = ":8080"

// Server wraps the HTTP server and its dependencies.
type Server struct {
	http *http.Server
}

// NewRouter builds the router with middlewares and routes
func NewRouter(d handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.GetHead)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(k8s.ListTimeout + 5*time.Second))
	r.Use(mw.Log())

	r.Get("/healthz", handlers.Healthz(d))
	r.Route("/api", func(r chi.Router) {
		r.Get("/services", handlers.Services(d))
		r.Get("/workloads", handlers.Workloads(d))
		r.Post("/workloads/refresh", handlers.RefreshWorkloads(d))
	})

	return r
}

// New builds the HTTP server listening on addr
func New(addr string, d handlers.Deps) *Server {
	if addr == "" {
		addr = DefaultListenAddr
	}

	s := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(d),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      k8s.ListTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	return &Server{http: s}
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.http.Addr
}

// Start runs the HTTP server (blocks until error or shutdown).
func (s *Server) Start() error {
	logging.Info("HTTP server listening", "addr", s.http.Addr)
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop gracefully shuts down the server with the provided context deadline.
func (s *Server) Stop(ctx context.Context) error {
	logging.Info("HTTP server shutting down")
	return s.http.Shutdown(ctx)
}
