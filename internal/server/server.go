// Package server hosts the local web dashboard: a single page showing
// the derived metrics plus an entry form that appends to the ledger.
package server

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/finstat-dev/finstat/internal/config"
	"github.com/finstat-dev/finstat/internal/ledger"
	"github.com/finstat-dev/finstat/web"
)

// Server wires the ledger store and templates into an http.Server.
type Server struct {
	cfg       *config.Config
	store     *ledger.Store
	templates *template.Template
	http      *http.Server
}

// New creates a Server listening on addr.
func New(addr string, cfg *config.Config, store *ledger.Store) (*Server, error) {
	templates, err := template.ParseFS(web.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	s := &Server{cfg: cfg, store: store, templates: templates}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleDashboard)
	mux.HandleFunc("/entries", s.handleAddEntry)

	s.http = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s, nil
}

// ListenAndServe starts serving until Shutdown or failure.
func (s *Server) ListenAndServe() error {
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler exposes the route mux, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}
