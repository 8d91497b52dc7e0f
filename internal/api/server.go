// Package api exposes the research pipeline over HTTP: a streaming analyze
// endpoint plus health and metrics.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/corpintel/corpintel/internal/intel"
	"github.com/corpintel/corpintel/internal/logging"
)

// Pipeline is the research pipeline the server fronts.
type Pipeline interface {
	Handle(ctx context.Context, req intel.Request) <-chan intel.StreamEvent
}

// Server handles HTTP API requests
type Server struct {
	port     int
	server   *http.Server
	router   *http.ServeMux
	logger   *logging.Logger
	pipeline Pipeline
}

// New creates a new API server. gatherer backs the /metrics endpoint and may
// be nil to disable it.
func New(port int, pipeline Pipeline, gatherer prometheus.Gatherer) *Server {
	s := &Server{
		port:     port,
		logger:   logging.GetLogger("api"),
		router:   http.NewServeMux(),
		pipeline: pipeline,
	}

	s.router.HandleFunc("/analyze", s.withMethod(http.MethodPost, s.handleAnalyze))
	s.router.HandleFunc("/healthz", s.handleHealth)
	if gatherer != nil {
		s.router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.corsMiddleware(s.router),
		// No WriteTimeout: the analyze stream stays open for the full
		// pipeline run.
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	return s
}

// Handler returns the server's root handler, CORS included.
func (s *Server) Handler() http.Handler {
	return s.corsMiddleware(s.router)
}

// withMethod wraps a handler to enforce HTTP method
func (s *Server) withMethod(method string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			writeError(w, http.StatusMethodNotAllowed, ErrorCodeMethodNotAllowed, fmt.Sprintf("method %s not allowed", r.Method))
			return
		}
		handler(w, r)
	}
}

// corsMiddleware adds CORS headers to allow browser access
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "3600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Start begins listening for requests. It returns once the listener is up.
func (s *Server) Start(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("HTTP server error: %v", err)
		}
	}()

	s.logger.Info("HTTP API server started and listening on port %d", s.port)
	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping API server...")

	done := make(chan error, 1)
	go func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		done <- s.server.Shutdown(shutdownCtx)
	}()

	select {
	case err := <-done:
		if err != nil {
			s.logger.Error("HTTP server shutdown error: %v", err)
			return err
		}
		s.logger.Info("HTTP server stopped")
		return nil
	case <-ctx.Done():
		s.logger.Warn("HTTP server shutdown timeout")
		return ctx.Err()
	}
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = writeJSON(w, map[string]string{"status": "ok"})
}
