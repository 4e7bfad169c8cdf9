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

type ContactHandler struct {
	service services.ContactService
}

func NewContactHandler(service services.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

func (h *ContactHandler) GetContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.service.GetContacts(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error listing contacts")
		respondServiceError(w, err)
		return
	}

	log.Info().Int("count", len(contacts)).Msg("Contacts retrieved")
	utils.RespondWithJSON(w, http.StatusOK, contacts)
}

func (h *ContactHandler) GetContactByID(w http.ResponseWriter, r *http.Request) {
	contactID, err := utils.GetObjectIDFromVars(w, r, "id")
	if err != nil {
		return
	}

	contact, err := h.service.GetContactByID(r.Context(), contactID)
	if err != nil {
		log.Error().Err(err).Str("contact_id", contactID.Hex()).Msg("Error getting contact")
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, contact)
}

func (h *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var contact models.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		log.Error().Err(err).Msg("Invalid JSON for CreateContact")
		utils.SendJSONError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	contact.Normalize()
	if details := validation.Check(&contact); details != nil {
		utils.SendValidationError(w, "Validation failed", details)
		return
	}

	created, err := h.service.CreateContact(r.Context(), &contact)
	if err != nil {
		log.Error().Err(err).Msg("Error creating contact")
		respondServiceError(w, err)
		return
	}

	log.Info().Str("contact_id", created.ID.Hex()).Msg("Contact created successfully")
	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{"id": created.ID.Hex()})
}

func (h *ContactHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	contactID, err := utils.GetObjectIDFromVars(w, r, "id")
	if err != nil {
		return
	}

	var update models.ContactUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Error().Err(err).Msg("Invalid JSON for UpdateContact")
		utils.SendJSONError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	update.Normalize()
	if details := validation.ContactPatch(&update); details != nil {
		utils.SendValidationError(w, "Validation failed", details)
		return
	}

	contact, modified, err := h.service.UpdateContact(r.Context(), contactID, update)
	if err != nil {
		log.Error().Err(err).Str("contact_id", contactID.Hex()).Msg("Error updating contact")
		respondServiceError(w, err)
		return
	}

	if !modified {
		utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "no changes"})
		return
	}

	log.Info().Str("contact_id", contactID.Hex()).Msg("Contact updated successfully")
	utils.RespondWithJSON(w, http.StatusOK, contact)
}

func (h *ContactHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	contactID, err := utils.GetObjectIDFromVars(w, r, "id")
	if err != nil {
		return
	}

	if err := h.service.DeleteContact(r.Context(), contactID); err != nil {
		log.Error().Err(err).Str("contact_id", contactID.Hex()).Msg("Error deleting contact")
		respondServiceError(w, err)
		return
	}

	log.Info().Str("contact_id", contactID.Hex()).Msg("Contact deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}
