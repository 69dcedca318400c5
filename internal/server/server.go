// Package server exposes a collection provider over HTTP so several
// QuantumLife clients can share one store.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/logger"
)

// APIPrefix is the path every collection route hangs off.
const APIPrefix = "/api/v1/collections"

type Config struct {
	Addr string
	// Token, when set, must be presented as "Authorization: Bearer <token>".
	Token string
	// RatePerMinute bounds requests per client IP. Zero disables limiting.
	RatePerMinute   int
	ShutdownTimeout time.Duration
}

type Server struct {
	cfg      Config
	provider collection.Provider
	log      *log.Logger
	limiter  *limiterSet
}

func New(cfg Config, provider collection.Provider) *Server {
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	s := &Server{
		cfg:      cfg,
		provider: provider,
		log:      logger.Component("server"),
	}
	if cfg.RatePerMinute > 0 {
		s.limiter = newLimiterSet(cfg.RatePerMinute)
	}
	return s
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.health)

	r.Group(func(r chi.Router) {
		if s.limiter != nil {
			r.Use(s.limiter.middleware)
		}
		if s.cfg.Token != "" {
			r.Use(bearerAuth(s.cfg.Token))
		}

		r.Route(APIPrefix+"/{name}", func(r chi.Router) {
			r.Get("/", s.list)
			r.Post("/", s.create)
			r.Patch("/{id}", s.update)
			r.Delete("/{id}", s.delete)
		})
	})

	return r
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Listening", "addr", s.cfg.Addr, "store", s.provider.GetConfigPath())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
