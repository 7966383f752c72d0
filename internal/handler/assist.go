package handler

import (
	"log/slog"
	"net/http"

	"atelier/internal/httputil"
	"atelier/internal/llm"
)

// AssistHandler exposes the generative assistants. Every endpoint is
// best-effort: a failed remote call answers with the static fallback and
// a 200, never an error.
type AssistHandler struct {
	llm      llm.Client
	fallback *llm.Static
	logger   *slog.Logger
}

// NewAssistHandler creates a new assist handler
func NewAssistHandler(llmClient llm.Client, logger *slog.Logger) *AssistHandler {
	return &AssistHandler{
		llm:      llmClient,
		fallback: llm.NewStatic(),
		logger:   logger,
	}
}

// TagsRequest names the file to suggest tags for.
type TagsRequest struct {
	FileName string `json:"file_name"`
}

// TagsResponse carries the suggested tags.
type TagsResponse struct {
	Tags []string `json:"tags"`
}

// GenerateTags suggests tags for a file name
// POST /api/assist/tags
func (h *AssistHandler) GenerateTags(w http.ResponseWriter, r *http.Request) {
	var req TagsRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FileName == "" {
		httputil.RespondError(w, http.StatusBadRequest, "file_name is required")
		return
	}

	tags, err := h.llm.GenerateTags(r.Context(), req.FileName)
	if err != nil {
		h.logger.Warn("tag generation failed, using fallback", "file", req.FileName, "error", err)
		tags = llm.FallbackTags
	}

	httputil.RespondJSON(w, http.StatusOK, TagsResponse{Tags: tags})
}

// BriefAssistRequest seeds the brief draft.
type BriefAssistRequest struct {
	Title  string `json:"title"`
	Client string `json:"client"`
}

// DraftBrief drafts the free-text sections of a project brief
// POST /api/assist/brief
func (h *AssistHandler) DraftBrief(w http.ResponseWriter, r *http.Request) {
	var req BriefAssistRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" {
		httputil.RespondError(w, http.StatusBadRequest, "title is required")
		return
	}

	draft, err := h.llm.BriefAssist(r.Context(), req.Title, req.Client)
	if err != nil {
		h.logger.Warn("brief assist failed, using fallback", "title", req.Title, "error", err)
		draft, _ = h.fallback.BriefAssist(r.Context(), req.Title, req.Client)
	}

	httputil.RespondJSON(w, http.StatusOK, draft)
}
