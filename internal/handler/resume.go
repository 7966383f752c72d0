package handler

import (
	"log/slog"
	"net/http"

	"atelier/internal/domain/models"
	"atelier/internal/httputil"
	"atelier/internal/service/resume"
)

// ResumeHandler handles resume document HTTP requests
type ResumeHandler struct {
	resume *resume.Service
	logger *slog.Logger
}

// NewResumeHandler creates a new resume handler
func NewResumeHandler(resumeService *resume.Service, logger *slog.Logger) *ResumeHandler {
	return &ResumeHandler{
		resume: resumeService,
		logger: logger,
	}
}

// GetResume returns the current resume document
// GET /api/resume
func (h *ResumeHandler) GetResume(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.resume.Get())
}

// ReplaceResume stores the document wholesale (auto-save semantics)
// PUT /api/resume
func (h *ResumeHandler) ReplaceResume(w http.ResponseWriter, r *http.Request) {
	var data models.ResumeData
	if err := httputil.ParseJSON(w, r, &data); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, h.resume.Replace(data))
}

// ResetResume clears the document back to its empty shape
// DELETE /api/resume
func (h *ResumeHandler) ResetResume(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.resume.Reset())
}
