package handler

import (
	"log/slog"
	"net/http"

	models "atelier/internal/domain/models/archive"
	"atelier/internal/httputil"
	"atelier/internal/service/archive"
)

// LinkHandler handles archive link HTTP requests
type LinkHandler struct {
	archive *archive.Service
	logger  *slog.Logger
}

// NewLinkHandler creates a new link handler
func NewLinkHandler(archiveService *archive.Service, logger *slog.Logger) *LinkHandler {
	return &LinkHandler{
		archive: archiveService,
		logger:  logger,
	}
}

// CreateLink creates a link
// POST /api/links
func (h *LinkHandler) CreateLink(w http.ResponseWriter, r *http.Request) {
	var req archive.CreateLinkRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	link, err := h.archive.CreateLink(&req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, link)
}

// ListLinks lists the links in ?folder= (absent = root)
// GET /api/links
func (h *LinkHandler) ListLinks(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.archive.ListLinks(folderQuery(r)))
}

// UpdateLink edits a link's title or URL
// PATCH /api/links/{id}
func (h *LinkHandler) UpdateLink(w http.ResponseWriter, r *http.Request) {
	var req archive.UpdateLinkRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	link, err := h.archive.UpdateLink(r.PathValue("id"), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, link)
}

// DeleteLink removes a link
// DELETE /api/links/{id}
func (h *LinkHandler) DeleteLink(w http.ResponseWriter, r *http.Request) {
	if err := h.archive.DeleteItem(models.KindLink, r.PathValue("id")); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
