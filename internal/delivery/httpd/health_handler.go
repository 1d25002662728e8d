package httpd

import (
	"net/http"
	"time"

	"github.com/RubachokBoss/textinspect/internal/models"
)

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "textinspect",
		"timestamp": time.Now().UTC(),
		"version":   "1.0.0",
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) GetServiceStatus(w http.ResponseWriter, r *http.Request) {
	status := models.ServiceStatusResponse{
		Status:             "running",
		CredentialPresent:  h.client.CredentialPresent(),
		AIProvider:         h.client.AIProvider(),
		PlagiarismProvider: h.client.PlagiarismProvider(),
		EventsEnabled:      h.eventsEnabled,
		ActiveSessions:     h.sessionService.ActiveSessions(),
		Uptime:             time.Since(h.startedAt).Round(time.Second).String(),
		Timestamp:          time.Now().UTC(),
	}
	if h.pool != nil {
		status.Workers = h.pool.GetStats()
	}

	writeSuccess(w, status)
}
