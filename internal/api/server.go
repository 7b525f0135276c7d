// Package api exposes staticd over HTTP: the JSON health and info
// endpoints plus the static-file pipeline for everything else.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"staticd/internal/config"
	"staticd/internal/logging"
	"staticd/internal/static"
)

// Server represents the HTTP server
type Server struct {
	router   *http.ServeMux
	server   *http.Server
	addr     string
	logger   *logging.Logger
	pipeline *static.Pipeline
	cfg      *config.Config
	started  time.Time
}

// NewServer creates a new HTTP server instance serving cfg.Content.Root
func NewServer(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	pipeline, err := static.NewPipeline(static.Options{
		Root:               cfg.Content.Root,
		IndexFile:          cfg.Content.IndexFile,
		NotFoundFile:       cfg.Content.NotFoundFile,
		AssetMaxAgeSeconds: cfg.Cache.AssetMaxAgeSeconds,
		Logger:             logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pipeline: %w", err)
	}

	s := &Server{
		addr:     cfg.ServerAddress(),
		logger:   logger,
		pipeline: pipeline,
		cfg:      cfg,
		router:   http.NewServeMux(),
		started:  time.Now(),
	}

	// Register routes
	s.registerRoutes()

	// Create HTTP server with configured routing and middleware
	handler := s.applyMiddleware(http.HandlerFunc(s.route))
	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return s, nil
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": s.addr,
		"root": s.cfg.Content.Root,
	})

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server", nil)

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	s.logger.Info("Server shut down successfully", nil)
	return nil
}

// ServeHTTP implements http.Handler for testing
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.server.Handler.ServeHTTP(w, r)
}

// applyMiddleware wraps the handler with middleware in the correct order
func (s *Server) applyMiddleware(handler http.Handler) http.Handler {
	// Apply middleware in reverse order (last one wraps first)
	handler = RecoveryMiddleware(s.logger)(handler)
	handler = LoggingMiddleware(s.logger)(handler)
	handler = RequestIDMiddleware()(handler)
	handler = CORSMiddleware()(handler)
	return handler
}
