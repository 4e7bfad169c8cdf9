package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"rolodex/internal/models"
	"rolodex/internal/services"
	"rolodex/internal/utils"
	"rolodex/internal/validation"
)

// ProfessionalHandler serves the singleton professional profile. None of
// its routes take a path id; the collection holds at most one document.
type ProfessionalHandler struct {
	service services.ProfessionalService
}

func NewProfessionalHandler(service services.ProfessionalService) *ProfessionalHandler {
	return &ProfessionalHandler{service: service}
}

func (h *ProfessionalHandler) GetProfessional(w http.ResponseWriter, r *http.Request) {
	professional, err := h.service.GetProfessional(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error getting professional profile")
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, professional)
}

func (h *ProfessionalHandler) CreateProfessional(w http.ResponseWriter, r *http.Request) {
	var professional models.Professional
	if err := json.NewDecoder(r.Body).Decode(&professional); err != nil {
		log.Error().Err(err).Msg("Invalid JSON for CreateProfessional")
		utils.SendJSONError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	professional.Normalize()
	if details := validation.Check(&professional); details != nil {
		utils.SendValidationError(w, "Validation failed", details)
		return
	}

	created, err := h.service.CreateProfessional(r.Context(), &professional)
	if err != nil {
		log.Error().Err(err).Msg("Error creating professional profile")
		respondServiceError(w, err)
		return
	}

	log.Info().Str("professional_id", created.ID.Hex()).Msg("Professional profile created successfully")
	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{"id": created.ID.Hex()})
}

func (h *ProfessionalHandler) UpdateProfessional(w http.ResponseWriter, r *http.Request) {
	var update models.ProfessionalUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Error().Err(err).Msg("Invalid JSON for UpdateProfessional")
		utils.SendJSONError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	update.Normalize()
	if details := validation.ProfessionalPatch(&update); details != nil {
		utils.SendValidationError(w, "Validation failed", details)
		return
	}

	professional, modified, err := h.service.UpdateProfessional(r.Context(), update)
	if err != nil {
		log.Error().Err(err).Msg("Error updating professional profile")
		respondServiceError(w, err)
		return
	}

	if !modified {
		utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "no changes"})
		return
	}

	log.Info().Msg("Professional profile updated successfully")
	utils.RespondWithJSON(w, http.StatusOK, professional)
}

func (h *ProfessionalHandler) DeleteProfessional(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteProfessional(r.Context()); err != nil {
		log.Error().Err(err).Msg("Error deleting professional profile")
		respondServiceError(w, err)
		return
	}

	log.Info().Msg("Professional profile deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}
