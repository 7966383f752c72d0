package handler

import (
	"log/slog"
	"net/http"

	models "atelier/internal/domain/models/archive"
	"atelier/internal/httputil"
	"atelier/internal/service/archive"
)

// MoodboardHandler handles moodboard HTTP requests
type MoodboardHandler struct {
	archive *archive.Service
	logger  *slog.Logger
}

// NewMoodboardHandler creates a new moodboard handler
func NewMoodboardHandler(archiveService *archive.Service, logger *slog.Logger) *MoodboardHandler {
	return &MoodboardHandler{
		archive: archiveService,
		logger:  logger,
	}
}

// CreateMoodboard creates a moodboard
// POST /api/moodboards
func (h *MoodboardHandler) CreateMoodboard(w http.ResponseWriter, r *http.Request) {
	var req archive.CreateMoodboardRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	board, err := h.archive.CreateMoodboard(&req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, board)
}

// ListMoodboards lists the moodboards in ?folder= (absent = root)
// GET /api/moodboards
func (h *MoodboardHandler) ListMoodboards(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.archive.ListMoodboards(folderQuery(r)))
}

// UpdateMoodboard edits a moodboard's title or image set
// PATCH /api/moodboards/{id}
func (h *MoodboardHandler) UpdateMoodboard(w http.ResponseWriter, r *http.Request) {
	var req archive.UpdateMoodboardRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	board, err := h.archive.UpdateMoodboard(r.PathValue("id"), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, board)
}

// DeleteMoodboard removes a moodboard
// DELETE /api/moodboards/{id}
func (h *MoodboardHandler) DeleteMoodboard(w http.ResponseWriter, r *http.Request) {
	if err := h.archive.DeleteItem(models.KindMoodboard, r.PathValue("id")); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
