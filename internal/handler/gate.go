package handler

import (
	"log/slog"
	"net/http"

	models "atelier/internal/domain/models/archive"
	"atelier/internal/httputil"
	"atelier/internal/service/archive"
)

// GateHandler exposes the delete confirmation gate as a two-step token
// flow: request a delete, then confirm or cancel it with the token.
type GateHandler struct {
	archive *archive.Service
	logger  *slog.Logger
}

// NewGateHandler creates a new gate handler
func NewGateHandler(archiveService *archive.Service, logger *slog.Logger) *GateHandler {
	return &GateHandler{
		archive: archiveService,
		logger:  logger,
	}
}

// DeleteRequestBody names the entity whose deletion is being requested.
type DeleteRequestBody struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

// RequestDelete opens a pending delete and returns its token and the
// entity's display name for the confirmation prompt
// POST /api/archive/delete-requests
func (h *GateHandler) RequestDelete(w http.ResponseWriter, r *http.Request) {
	var req DeleteRequestBody
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	kind, err := models.ParseKind(req.Kind)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	pending, err := h.archive.RequestDelete(kind, req.ID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, pending)
}

// ConfirmDelete performs the pending delete (cascading for folders)
// POST /api/archive/delete-requests/{token}/confirm
func (h *GateHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.archive.ConfirmDelete(r.PathValue("token")); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CancelDelete discards the pending delete without mutation
// DELETE /api/archive/delete-requests/{token}
func (h *GateHandler) CancelDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.archive.CancelDelete(r.PathValue("token")); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
