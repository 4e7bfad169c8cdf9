package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"rolodex/internal/errs"
	"rolodex/internal/utils"
)

// respondServiceError maps the error taxonomy to HTTP status codes:
// validation 400, not found 404, conflict 409, everything else 500.
// Unknown errors never reach the client verbatim.
func respondServiceError(w http.ResponseWriter, err error) {
	var validationErr *errs.ValidationError
	if errors.As(err, &validationErr) {
		utils.SendValidationError(w, "Validation failed", validationErr.Details)
		return
	}

	var notFoundErr *errs.NotFoundError
	if errors.As(err, &notFoundErr) {
		utils.SendJSONError(w, notFoundErr.Error(), http.StatusNotFound)
		return
	}

	var conflictErr *errs.ConflictError
	if errors.As(err, &conflictErr) {
		utils.SendJSONError(w, conflictErr.Error(), http.StatusConflict)
		return
	}

	log.Error().Err(err).Msg("Unhandled service error")
	utils.SendJSONError(w, "Database error", http.StatusInternalServerError)
}
