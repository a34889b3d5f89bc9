package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/chartlens-labs/chartlens-cli/internal/logger"
)

// Config holds the dashboard server configuration.
type Config struct {
	// Addr is the listen address, host:port.
	Addr string

	// RateLimit is the sustained requests-per-second budget. Zero
	// disables rate limiting.
	RateLimit float64
}

// Server is the dashboard HTTP server.
type Server struct {
	cfg    Config
	ports  *Ports
	router *mux.Router
	tmpl   *template.Template
}

// NewServer creates a dashboard server with its routes registered.
func NewServer(cfg Config, ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating server: %w", err)
	}

	tmpl, err := template.New("dashboard").Parse(pageTemplates)
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	s := &Server{
		cfg:   cfg,
		ports: ports,
		tmpl:  tmpl,
	}

	router := mux.NewRouter()
	router.HandleFunc("/health", s.handleHealth).Methods("GET")
	router.HandleFunc("/", s.handleIndex).Methods("GET")
	router.HandleFunc("/records/{id}", s.handleRecord).Methods("GET")

	router.Use(s.logRequests)
	if cfg.RateLimit > 0 {
		router.Use(s.rateLimit(cfg.RateLimit))
	}

	s.router = router
	return s, nil
}

// Router returns the HTTP handler, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// ListenAndServe runs the server until the context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("dashboard listening on %s", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"healthy"}`))
}
