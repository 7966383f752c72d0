package handler

import (
	"log/slog"
	"net/http"

	models "atelier/internal/domain/models/archive"
	"atelier/internal/httputil"
	"atelier/internal/service/archive"
)

// TaskHandler handles archive task HTTP requests
type TaskHandler struct {
	archive *archive.Service
	logger  *slog.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(archiveService *archive.Service, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		archive: archiveService,
		logger:  logger,
	}
}

// CreateTask creates a task
// POST /api/tasks
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req archive.CreateTaskRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	task, err := h.archive.CreateTask(&req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, task)
}

// ListTasks lists the tasks in ?folder= (absent = root)
// GET /api/tasks
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.archive.ListTasks(folderQuery(r)))
}

// UpdateTask edits a task's text or completion flag
// PATCH /api/tasks/{id}
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req archive.UpdateTaskRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	task, err := h.archive.UpdateTask(r.PathValue("id"), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, task)
}

// DeleteTask removes a task
// DELETE /api/tasks/{id}
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.archive.DeleteItem(models.KindTask, r.PathValue("id")); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
