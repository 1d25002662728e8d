package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/RubachokBoss/textinspect/internal/config"
)

type Server struct {
	server *http.Server
	logger zerolog.Logger
	// chi не дает вызывать Use после регистрации маршрутов, поэтому API
	// монтируется в root после middleware
	appRouter  chi.Router
	rootRouter *chi.Mux
	mounted    bool
}

func NewServer(cfg config.ServerConfig, router chi.Router, logger zerolog.Logger) *Server {
	s := &Server{
		logger:     logger,
		appRouter:  router,
		rootRouter: chi.NewRouter(),
	}

	s.server = &http.Server{
		Addr:         cfg.Address,
		Handler:      s.rootRouter,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

func (s *Server) Handler() http.Handler {
	return s.rootRouter
}

// Start blocks until the server stops. A graceful shutdown is not an error.
func (s *Server) Start() error {
	s.logger.Info().Str("address", s.server.Addr).Msg("Starting server")
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("Shutting down server")
	return s.server.Shutdown(ctx)
}

// SetupMiddleware installs the chain and mounts the API router. Nil
// middlewares are skipped.
func (s *Server) SetupMiddleware(
	corsMiddleware func(http.Handler) http.Handler,
	loggerMiddleware func(http.Handler) http.Handler,
	recoveryMiddleware func(http.Handler) http.Handler,
) {
	s.rootRouter.Use(middleware.RequestID)
	s.rootRouter.Use(middleware.RealIP)
	s.rootRouter.Use(middleware.StripSlashes)
	s.rootRouter.Use(middleware.CleanPath)
	s.rootRouter.Use(middleware.GetHead)
	s.rootRouter.Use(middleware.Compress(5))

	for _, mw := range []func(http.Handler) http.Handler{corsMiddleware, loggerMiddleware, recoveryMiddleware} {
		if mw != nil {
			s.rootRouter.Use(mw)
		}
	}

	if !s.mounted {
		s.rootRouter.Mount("/", s.appRouter)
		s.mounted = true
	}
}
