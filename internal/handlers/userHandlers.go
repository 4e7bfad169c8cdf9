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

type UserHandler struct {
	service services.UserService
}

func NewUserHandler(service services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetUsers(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error listing users")
		respondServiceError(w, err)
		return
	}

	log.Info().Int("count", len(users)).Msg("Users retrieved")
	utils.RespondWithJSON(w, http.StatusOK, users)
}

func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.GetObjectIDFromVars(w, r, "id")
	if err != nil {
		return
	}

	user, err := h.service.GetUserByID(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.Hex()).Msg("Error getting user")
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user)
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Error().Err(err).Msg("Invalid JSON for CreateUser")
		utils.SendJSONError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	user.Normalize()
	if details := validation.Check(&user); details != nil {
		utils.SendValidationError(w, "Validation failed", details)
		return
	}

	created, err := h.service.CreateUser(r.Context(), &user)
	if err != nil {
		log.Error().Err(err).Msg("Error creating user")
		respondServiceError(w, err)
		return
	}

	log.Info().Str("user_id", created.ID.Hex()).Msg("User created successfully")
	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{"id": created.ID.Hex()})
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.GetObjectIDFromVars(w, r, "id")
	if err != nil {
		return
	}

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Error().Err(err).Msg("Invalid JSON for UpdateUser")
		utils.SendJSONError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	update.Normalize()
	if details := validation.UserPatch(&update); details != nil {
		utils.SendValidationError(w, "Validation failed", details)
		return
	}

	user, modified, err := h.service.UpdateUser(r.Context(), userID, update)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.Hex()).Msg("Error updating user")
		respondServiceError(w, err)
		return
	}

	if !modified {
		utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "no changes"})
		return
	}

	log.Info().Str("user_id", userID.Hex()).Msg("User updated successfully")
	utils.RespondWithJSON(w, http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.GetObjectIDFromVars(w, r, "id")
	if err != nil {
		return
	}

	if err := h.service.DeleteUser(r.Context(), userID); err != nil {
		log.Error().Err(err).Str("user_id", userID.Hex()).Msg("Error deleting user")
		respondServiceError(w, err)
		return
	}

	log.Info().Str("user_id", userID.Hex()).Msg("User deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}
