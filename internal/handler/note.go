package handler

import (
	"log/slog"
	"net/http"

	models "atelier/internal/domain/models/archive"
	"atelier/internal/httputil"
	"atelier/internal/service/archive"
)

// NoteHandler handles archive note HTTP requests
type NoteHandler struct {
	archive *archive.Service
	logger  *slog.Logger
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(archiveService *archive.Service, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{
		archive: archiveService,
		logger:  logger,
	}
}

// CreateNote creates a note
// POST /api/notes
func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req archive.CreateNoteRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	note, err := h.archive.CreateNote(&req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, note)
}

// ListNotes lists the notes in ?folder= (absent = root)
// GET /api/notes
func (h *NoteHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.archive.ListNotes(folderQuery(r)))
}

// UpdateNote edits a note's title or content
// PATCH /api/notes/{id}
func (h *NoteHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	var req archive.UpdateNoteRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	note, err := h.archive.UpdateNote(r.PathValue("id"), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, note)
}

// DeleteNote removes a note
// DELETE /api/notes/{id}
func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	if err := h.archive.DeleteItem(models.KindNote, r.PathValue("id")); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
