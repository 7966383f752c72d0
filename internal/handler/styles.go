package handler

import (
	"log/slog"
	"net/http"

	"atelier/internal/httputil"
	"atelier/internal/service/styles"
)

// StyleHandler serves the read-only art-style reference library
type StyleHandler struct {
	library *styles.Library
	logger  *slog.Logger
}

// NewStyleHandler creates a new style handler
func NewStyleHandler(library *styles.Library, logger *slog.Logger) *StyleHandler {
	return &StyleHandler{
		library: library,
		logger:  logger,
	}
}

// ListStyles lists styles, optionally filtered by ?category= and ?q=
// GET /api/styles
func (h *StyleHandler) ListStyles(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	query := r.URL.Query().Get("q")
	httputil.RespondJSON(w, http.StatusOK, h.library.List(category, query))
}

// GetStyle retrieves one style by ID
// GET /api/styles/{id}
func (h *StyleHandler) GetStyle(w http.ResponseWriter, r *http.Request) {
	style, err := h.library.Get(r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, style)
}

// ListCategories returns the distinct style categories
// GET /api/styles/categories
func (h *StyleHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.library.Categories())
}
