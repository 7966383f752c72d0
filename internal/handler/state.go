package handler

import (
	"log/slog"
	"net/http"

	models "atelier/internal/domain/models/archive"
	"atelier/internal/httputil"
	"atelier/internal/service/archive"
)

// StateHandler handles archive navigation state HTTP requests
type StateHandler struct {
	archive *archive.Service
	logger  *slog.Logger
}

// NewStateHandler creates a new state handler
func NewStateHandler(archiveService *archive.Service, logger *slog.Logger) *StateHandler {
	return &StateHandler{
		archive: archiveService,
		logger:  logger,
	}
}

// UpdateStateRequest changes the current folder, the view mode, or both.
// CurrentFolder is tri-state: absent = keep, null = navigate to root.
type UpdateStateRequest struct {
	CurrentFolder httputil.OptionalString `json:"current_folder"`
	ViewMode      *string                 `json:"view_mode"`
}

// GetState returns the navigation state with derived breadcrumbs
// GET /api/archive/state
func (h *StateHandler) GetState(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.archive.State())
}

// UpdateState navigates and/or switches the view mode
// PATCH /api/archive/state
func (h *StateHandler) UpdateState(w http.ResponseWriter, r *http.Request) {
	var req UpdateStateRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.ViewMode != nil {
		if err := h.archive.SetViewMode(models.ViewMode(*req.ViewMode)); err != nil {
			handleError(w, err)
			return
		}
	}

	state := h.archive.State()
	if req.CurrentFolder.Present {
		state = h.archive.SetCurrentFolder(req.CurrentFolder.Value)
	}

	httputil.RespondJSON(w, http.StatusOK, state)
}

// GetHistory returns the recently visited folders, newest first
// GET /api/archive/history
func (h *StateHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.archive.History())
}
