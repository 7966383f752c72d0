package handler

import (
	"log/slog"
	"net/http"

	"atelier/internal/httputil"
	"atelier/internal/service/archive"
)

// FolderHandler handles folder HTTP requests
type FolderHandler struct {
	archive *archive.Service
	logger  *slog.Logger
}

// NewFolderHandler creates a new folder handler
func NewFolderHandler(archiveService *archive.Service, logger *slog.Logger) *FolderHandler {
	return &FolderHandler{
		archive: archiveService,
		logger:  logger,
	}
}

// CreateFolder creates a new folder
// POST /api/folders
func (h *FolderHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req archive.CreateFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	folder, err := h.archive.CreateFolder(&req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, folder)
}

// ListFolders lists the child folders of ?folder= (absent = root)
// GET /api/folders
func (h *FolderHandler) ListFolders(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.archive.ListFolders(folderQuery(r)))
}

// GetFolder retrieves a folder by ID
// GET /api/folders/{id}
func (h *FolderHandler) GetFolder(w http.ResponseWriter, r *http.Request) {
	folder, err := h.archive.GetFolder(r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folder)
}

// UpdateFolder renames, recolors, or moves a folder
// PATCH /api/folders/{id}
func (h *FolderHandler) UpdateFolder(w http.ResponseWriter, r *http.Request) {
	var req archive.UpdateFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	folder, err := h.archive.UpdateFolder(r.PathValue("id"), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folder)
}

// DeleteFolder deletes a folder and everything inside it
// DELETE /api/folders/{id}
func (h *FolderHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	if err := h.archive.DeleteFolder(r.PathValue("id")); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetBreadcrumbs returns the root-to-folder trail
// GET /api/folders/{id}/breadcrumbs
func (h *FolderHandler) GetBreadcrumbs(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := h.archive.GetFolder(id); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, h.archive.Breadcrumbs(&id))
}
