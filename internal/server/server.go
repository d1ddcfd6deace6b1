// Package server exposes the plan generation core over HTTP. Handlers hold
// only immutable collaborators; every piece of request state flows through
// parameters and return values, so one Server instance can serve concurrent
// requests safely.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"stratplan/internal/audit"
)

// Server wires the HTTP routes to the plan assembly core.
type Server struct {
	cfg   Config
	audit *audit.Logger
}

// New builds a Server. auditLogger may be nil to disable event logging.
func New(cfg Config, auditLogger *audit.Logger) *Server {
	return &Server{cfg: cfg, audit: auditLogger}
}

// Handler returns the full route tree with CORS applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/generate_plan", s.handleGeneratePlan)
	mux.HandleFunc("/healthz", s.handleHealthz)
	return cors(mux)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", s.cfg.ListenAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	grace := s.cfg.ShutdownGrace
	if grace <= 0 {
		grace = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// cors enables browser clients on other origins, matching the service's
// public, unauthenticated surface.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
