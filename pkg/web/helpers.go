package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

func RespondJSON(w http.ResponseWriter, logger *slog.Logger, status int, payload any) {
	// Handle nil payload
	if payload == nil {
		w.WriteHeader(status)
		return
	}

	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error encoding response to JSON", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	RespondJSON(w, logger, status, map[string]string{"error": message})
}

// RespondValidationErrors responds with 400 and the full list of violation messages.
func RespondValidationErrors(w http.ResponseWriter, logger *slog.Logger, messages []string) {
	RespondJSON(w, logger, http.StatusBadRequest, map[string][]string{"errors": messages})
}

// ParseID extracts the ID from the request path. Returns the ID and a boolean indicating success.
// IDs are opaque strings; an unknown ID is a 404 concern, not a 400 one.
func ParseID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (string, bool) {
	id := r.PathValue("id")
	if id == "" {
		RespondError(w, logger, http.StatusBadRequest, "Missing product ID in request path")
		return "", false
	}
	return id, true
}
