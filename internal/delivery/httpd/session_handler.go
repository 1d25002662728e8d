package httpd

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/RubachokBoss/textinspect/internal/models"
	"github.com/RubachokBoss/textinspect/internal/service/page"
	"github.com/RubachokBoss/textinspect/pkg/utils"
)

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	snap, err := h.sessionService.Create(req.Kind)
	if err != nil {
		h.handleSessionError(w, r, err)
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, snap)
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	snap, err := h.sessionService.Get(id)
	if err != nil {
		h.handleSessionError(w, r, err)
		return
	}

	writeSuccess(w, snap)
}

func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	if err := h.sessionService.Delete(id); err != nil {
		h.handleSessionError(w, r, err)
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) SubmitSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	var req models.SubmitRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	snap, err := h.sessionService.Submit(r.Context(), id, page.Submission{
		Text:  req.Text,
		Title: req.Title,
	})
	if err != nil {
		h.handleSessionError(w, r, err)
		return
	}

	writeSuccess(w, snap)
}

func (h *Handler) EnableDemoMode(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	snap, err := h.sessionService.EnableDemoMode(id)
	if err != nil {
		h.handleSessionError(w, r, err)
		return
	}

	writeSuccess(w, snap)
}

func sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := strings.TrimSpace(chi.URLParam(r, "session_id"))
	if !utils.ValidateUUID(id) {
		writeError(w, http.StatusBadRequest, "Invalid session ID")
		return "", false
	}
	return id, true
}
