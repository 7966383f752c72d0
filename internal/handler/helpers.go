// Package handler is the HTTP edge: thin adapters between the JSON API
// and the services. Handlers parse, delegate, and map domain errors to
// problem responses; business rules live in the services.
package handler

import (
	"errors"
	"net/http"

	"atelier/internal/domain"
	"atelier/internal/httputil"
)

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, err error) {
	var httpErr domain.HTTPError

	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		httputil.RespondError(w, http.StatusConflict, err.Error())
	case errors.As(err, &httpErr):
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// folderQuery reads the ?folder= scope. Absent means the archive root,
// which the services represent as a nil reference.
func folderQuery(r *http.Request) *string {
	if !r.URL.Query().Has("folder") {
		return nil
	}
	id := r.URL.Query().Get("folder")
	if id == "" {
		return nil
	}
	return &id
}

// Health responds to liveness checks.
// GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
