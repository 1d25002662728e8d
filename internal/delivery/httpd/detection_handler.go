package httpd

import (
	"net/http"

	"github.com/RubachokBoss/textinspect/internal/models"
	"github.com/RubachokBoss/textinspect/internal/service/page"
	"github.com/RubachokBoss/textinspect/pkg/utils"
)

func (h *Handler) DetectAIContent(w http.ResponseWriter, r *http.Request) {
	h.analyze(w, r, models.KindAIDetection)
}

func (h *Handler) DetectPlagiarism(w http.ResponseWriter, r *http.Request) {
	h.analyze(w, r, models.KindPlagiarismDetection)
}

// analyze answers 200 with the page snapshot; detection failures are part
// of the snapshot.
func (h *Handler) analyze(w http.ResponseWriter, r *http.Request, kind models.DetectionKind) {
	var req models.AnalyzeRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	snap, err := h.sessionService.Analyze(r.Context(), kind, page.Submission{
		Text:  req.Text,
		Title: req.Title,
	}, req.UseMock)
	if err != nil {
		h.handleSessionError(w, r, err)
		return
	}

	writeSuccess(w, snap)
}
