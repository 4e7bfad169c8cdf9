package utils

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// RespondWithJSON writes payload as the JSON response body.
func RespondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// SendJSONError writes an error body of the form {"error": message}.
func SendJSONError(w http.ResponseWriter, message string, status int) {
	RespondWithJSON(w, status, map[string]string{"error": message})
}

// SendValidationError writes an error body carrying the list of violated
// rules: {"error": message, "details": [...]}.
func SendValidationError(w http.ResponseWriter, message string, details []string) {
	RespondWithJSON(w, http.StatusBadRequest, map[string]interface{}{
		"error":   message,
		"details": details,
	})
}
