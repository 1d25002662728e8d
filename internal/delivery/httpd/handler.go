package httpd

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/RubachokBoss/textinspect/internal/service"
	"github.com/RubachokBoss/textinspect/internal/service/integration"
	"github.com/RubachokBoss/textinspect/internal/service/page"
	"github.com/RubachokBoss/textinspect/internal/worker"
	"github.com/RubachokBoss/textinspect/pkg/utils"
)

type Handler struct {
	sessionService service.SessionService
	catalogService service.CatalogService
	client         integration.DetectionClient
	pool           *worker.WorkerPool
	eventsEnabled  bool
	startedAt      time.Time
	logger         zerolog.Logger
}

// NewHandler wires the HTTP API. pool may be nil when events are disabled.
func NewHandler(
	sessionService service.SessionService,
	catalogService service.CatalogService,
	client integration.DetectionClient,
	pool *worker.WorkerPool,
	eventsEnabled bool,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		sessionService: sessionService,
		catalogService: catalogService,
		client:         client,
		pool:           pool,
		eventsEnabled:  eventsEnabled,
		startedAt:      time.Now(),
		logger:         logger,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/health", h.HealthCheck)
	router.Get("/status", h.GetServiceStatus)

	router.Route("/api/v1", func(api chi.Router) {
		api.Route("/catalog", func(r chi.Router) {
			r.Get("/", h.GetCatalog)
			r.Get("/pricing", h.GetPricing)
			r.Get("/features", h.GetFeatures)
		})

		// Разовый анализ без сессии
		api.Post("/ai-detection", h.DetectAIContent)
		api.Post("/plagiarism-detection", h.DetectPlagiarism)

		api.Route("/sessions", func(r chi.Router) {
			r.Post("/", h.CreateSession)
			r.Get("/{session_id}", h.GetSession)
			r.Delete("/{session_id}", h.DeleteSession)
			r.Post("/{session_id}/submit", h.SubmitSession)
			r.Post("/{session_id}/demo", h.EnableDemoMode)
		})
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	utils.WriteJSON(w, status, data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	utils.ErrorResponse(w, status, message)
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	utils.SuccessResponse(w, http.StatusOK, data)
}

func (h *Handler) handleSessionError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownKind):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, page.ErrSubmissionInFlight):
		// кнопка отправки на форме заблокирована, пока идет запрос
		writeError(w, http.StatusConflict, err.Error())
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("Session operation failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
