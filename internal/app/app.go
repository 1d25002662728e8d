package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/RubachokBoss/textinspect/internal/config"
	"github.com/RubachokBoss/textinspect/internal/delivery/httpd"
	"github.com/RubachokBoss/textinspect/internal/middleware"
	"github.com/RubachokBoss/textinspect/internal/repository"
	"github.com/RubachokBoss/textinspect/internal/server"
	"github.com/RubachokBoss/textinspect/internal/service"
	"github.com/RubachokBoss/textinspect/internal/service/integration"
	"github.com/RubachokBoss/textinspect/internal/service/mock"
	"github.com/RubachokBoss/textinspect/internal/service/page"
	"github.com/RubachokBoss/textinspect/internal/worker"
	"github.com/RubachokBoss/textinspect/internal/worker/queue"
)

type App struct {
	server       *server.Server
	logger       zerolog.Logger
	config       *config.Config
	workerPool   *worker.WorkerPool
	rabbitMQRepo repository.RabbitMQRepository
}

func New(cfg *config.Config, log zerolog.Logger) (*App, error) {
	a := &App{
		logger: log,
		config: cfg,
	}

	client, err := integration.NewDetectionClient(integration.ClientConfig{
		APIKey:             cfg.Provider.APIKey,
		BaseURL:            cfg.Provider.BaseURL,
		AIDetectionPath:    cfg.Provider.AIDetectionPath,
		PlagiarismPath:     cfg.Provider.PlagiarismPath,
		AIProvider:         cfg.Provider.AIProvider,
		PlagiarismProvider: cfg.Provider.PlagiarismProvider,
		Timeout:            cfg.Provider.Timeout,
	}, mock.NewGenerator(cfg.Detection.MockSeed), log)
	if err != nil {
		return nil, fmt.Errorf("failed to create detection client: %w", err)
	}

	if !client.CredentialPresent() {
		log.Warn().Msg("Provider credential is not configured, only demo mode will succeed")
	}

	reporter := a.setupEvents(cfg.Events)

	sessionRepo := repository.NewSessionRepository(cfg.Sessions.MaxSessions, cfg.Sessions.TTL, log)
	sessionService := service.NewSessionService(sessionRepo, client, cfg.Detection.MinWords, reporter, log)
	catalogService := service.NewCatalogService()

	handler := httpd.NewHandler(
		sessionService,
		catalogService,
		client,
		a.workerPool,
		a.workerPool != nil,
		log,
	)

	router := chi.NewRouter()
	handler.RegisterRoutes(router)

	a.server = server.NewServer(cfg.Server, router, log)
	a.server.SetupMiddleware(
		middleware.NewCORS(cfg.CORS),
		middleware.RequestLogger(log),
		middleware.Recovery(log),
	)

	return a, nil
}

// setupEvents connects the usage reporter to RabbitMQ. Broker problems only
// disable the events.
func (a *App) setupEvents(cfg config.EventsConfig) page.UsageReporter {
	if !cfg.Enabled {
		return service.NewNoopReporter()
	}

	rabbitMQRepo, err := repository.NewRabbitMQRepository(cfg.URL, a.logger)
	if err != nil {
		a.logger.Warn().Err(err).Msg("Events disabled: RabbitMQ is unavailable")
		return service.NewNoopReporter()
	}

	if err := rabbitMQRepo.SetupExchange(cfg.Exchange); err != nil {
		a.logger.Warn().Err(err).Msg("Events disabled: failed to declare exchange")
		rabbitMQRepo.Close()
		return service.NewNoopReporter()
	}

	publisher := queue.NewRabbitMQPublisher(rabbitMQRepo.Channel(), cfg.Exchange, cfg.RoutingKey, a.logger)
	a.rabbitMQRepo = rabbitMQRepo
	a.workerPool = worker.NewWorkerPool(cfg.Workers, a.logger)

	return service.NewQueuedReporter(a.workerPool, publisher, a.logger)
}

func (a *App) Handler() http.Handler {
	return a.server.Handler()
}

func (a *App) Run(ctx context.Context) error {
	if a.workerPool != nil {
		if err := a.workerPool.Start(ctx); err != nil {
			a.logger.Error().Err(err).Msg("Failed to start worker pool")
			return err
		}
	}

	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info().Msg("Shutting down TextInspect...")

	if err := a.server.Shutdown(ctx); err != nil {
		a.logger.Error().Err(err).Msg("Failed to shutdown HTTP server")
		return err
	}

	// пул дочищает события уже после остановки приема запросов
	if a.workerPool != nil {
		if err := a.workerPool.Stop(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to stop worker pool")
		}
	}

	if a.rabbitMQRepo != nil {
		if err := a.rabbitMQRepo.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close RabbitMQ connection")
		}
	}

	a.logger.Info().Msg("TextInspect stopped")
	return nil
}
