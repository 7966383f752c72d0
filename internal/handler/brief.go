package handler

import (
	"log/slog"
	"net/http"

	models "atelier/internal/domain/models/archive"
	"atelier/internal/httputil"
	"atelier/internal/service/archive"
)

// BriefHandler handles project brief HTTP requests
type BriefHandler struct {
	archive *archive.Service
	logger  *slog.Logger
}

// NewBriefHandler creates a new brief handler
func NewBriefHandler(archiveService *archive.Service, logger *slog.Logger) *BriefHandler {
	return &BriefHandler{
		archive: archiveService,
		logger:  logger,
	}
}

// CreateBrief creates a brief at version 1
// POST /api/briefs
func (h *BriefHandler) CreateBrief(w http.ResponseWriter, r *http.Request) {
	var req archive.CreateBriefRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	brief, err := h.archive.CreateBrief(&req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, brief)
}

// ListBriefs lists the briefs in ?folder= (absent = root), pinned first
// GET /api/briefs
func (h *BriefHandler) ListBriefs(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.archive.ListBriefs(folderQuery(r)))
}

// GetBrief retrieves a brief by ID
// GET /api/briefs/{id}
func (h *BriefHandler) GetBrief(w http.ResponseWriter, r *http.Request) {
	brief, err := h.archive.GetBrief(r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, brief)
}

// UpdateBrief edits a brief; each edit bumps its version
// PATCH /api/briefs/{id}
func (h *BriefHandler) UpdateBrief(w http.ResponseWriter, r *http.Request) {
	var req archive.UpdateBriefRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	brief, err := h.archive.UpdateBrief(r.PathValue("id"), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, brief)
}

// TogglePin flips a brief's pinned flag
// POST /api/briefs/{id}/pin
func (h *BriefHandler) TogglePin(w http.ResponseWriter, r *http.Request) {
	brief, err := h.archive.TogglePinBrief(r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, brief)
}

// DeleteBrief removes a brief
// DELETE /api/briefs/{id}
func (h *BriefHandler) DeleteBrief(w http.ResponseWriter, r *http.Request) {
	if err := h.archive.DeleteItem(models.KindBrief, r.PathValue("id")); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
