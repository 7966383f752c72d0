package handler

import (
	"log/slog"
	"net/http"

	models "atelier/internal/domain/models/archive"
	"atelier/internal/httputil"
	"atelier/internal/llm"
	"atelier/internal/service/archive"
)

// FileHandler handles archive file HTTP requests
type FileHandler struct {
	archive *archive.Service
	llm     llm.Client
	logger  *slog.Logger
}

// NewFileHandler creates a new file handler
func NewFileHandler(archiveService *archive.Service, llmClient llm.Client, logger *slog.Logger) *FileHandler {
	return &FileHandler{
		archive: archiveService,
		llm:     llmClient,
		logger:  logger,
	}
}

// CreateFile ingests an uploaded file. When the request carries no tags,
// the tagging assistant fills them in, falling back to the static tags on
// any failure.
// POST /api/files
func (h *FileHandler) CreateFile(w http.ResponseWriter, r *http.Request) {
	var req archive.CreateFileRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if len(req.Tags) == 0 && req.Name != "" {
		tags, err := h.llm.GenerateTags(r.Context(), req.Name)
		if err != nil {
			h.logger.Warn("tag generation failed, using fallback", "file", req.Name, "error", err)
			tags = llm.FallbackTags
		}
		req.Tags = tags
	}

	file, err := h.archive.CreateFile(&req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, file)
}

// ListFiles lists the files in ?folder= (absent = root)
// GET /api/files
func (h *FileHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.archive.ListFiles(folderQuery(r)))
}

// GetFile retrieves a file by ID
// GET /api/files/{id}
func (h *FileHandler) GetFile(w http.ResponseWriter, r *http.Request) {
	file, err := h.archive.GetFile(r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, file)
}

// DeleteFile removes a file
// DELETE /api/files/{id}
func (h *FileHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	if err := h.archive.DeleteItem(models.KindFile, r.PathValue("id")); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateFile renames, retags, or moves a file
// PATCH /api/files/{id}
func (h *FileHandler) UpdateFile(w http.ResponseWriter, r *http.Request) {
	var req archive.UpdateFileRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	file, err := h.archive.UpdateFile(r.PathValue("id"), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, file)
}
