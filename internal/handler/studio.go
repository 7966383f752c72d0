package handler

import (
	"log/slog"
	"net/http"

	"atelier/internal/httputil"
	"atelier/internal/service/studio"
)

// StudioHandler handles character persona and chat HTTP requests
type StudioHandler struct {
	studio *studio.Service
	logger *slog.Logger
}

// NewStudioHandler creates a new studio handler
func NewStudioHandler(studioService *studio.Service, logger *slog.Logger) *StudioHandler {
	return &StudioHandler{
		studio: studioService,
		logger: logger,
	}
}

// CreateCharacter creates a persona
// POST /api/characters
func (h *StudioHandler) CreateCharacter(w http.ResponseWriter, r *http.Request) {
	var req studio.SaveCharacterRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ch, err := h.studio.Create(&req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, ch)
}

// ListCharacters lists all personas
// GET /api/characters
func (h *StudioHandler) ListCharacters(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.studio.List())
}

// GetCharacter retrieves a persona by ID
// GET /api/characters/{id}
func (h *StudioHandler) GetCharacter(w http.ResponseWriter, r *http.Request) {
	ch, err := h.studio.Get(r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, ch)
}

// UpdateCharacter replaces a persona's editable fields
// PUT /api/characters/{id}
func (h *StudioHandler) UpdateCharacter(w http.ResponseWriter, r *http.Request) {
	var req studio.SaveCharacterRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ch, err := h.studio.Update(r.PathValue("id"), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, ch)
}

// DeleteCharacter removes a persona and its conversation history
// DELETE /api/characters/{id}
func (h *StudioHandler) DeleteCharacter(w http.ResponseWriter, r *http.Request) {
	if err := h.studio.Delete(r.PathValue("id")); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetMessages returns the conversation with a persona, oldest first
// GET /api/characters/{id}/messages
func (h *StudioHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.studio.Messages(r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, messages)
}

// SendMessageRequest carries one user chat turn.
type SendMessageRequest struct {
	Text string `json:"text"`
}

// SendMessage appends a user turn and the persona's reply
// POST /api/characters/{id}/messages
func (h *StudioHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	messages, err := h.studio.SendMessage(r.Context(), r.PathValue("id"), req.Text)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, messages)
}
