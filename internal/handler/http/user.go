package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// getAllUsers handles GET /api/user. Admin only.
func (h *Handler) getAllUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}
	if !principal.IsAdmin() {
		log.Error().Str("subject", principal.Subject).Msg("user listing requires the admin role")
		utils.WriteJSONError(w, errForbidden.Error(), http.StatusForbidden)
		return
	}

	users, err := h.services.UserService.GetAllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.UsersResponse{Users: users}, http.StatusOK)
}

// getUser handles GET /api/user/{id}. Admin or the account owner.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	userID, err := pathID(r)
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !principal.IsAdmin() && !principal.IsOwner(userID) {
		log.Error().Str("subject", principal.Subject).Int64("target", userID).Msg("access to foreign account denied")
		utils.WriteJSONError(w, errForbidden.Error(), http.StatusForbidden)
		return
	}

	user, err := h.services.UserService.GetUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// updateUser handles PUT /api/user/{id}. Admin or the account owner; only the
// fields present in the body are changed.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	userID, err := pathID(r)
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !principal.IsAdmin() && !principal.IsOwner(userID) {
		log.Error().Str("subject", principal.Subject).Int64("target", userID).Msg("update of foreign account denied")
		utils.WriteJSONError(w, errForbidden.Error(), http.StatusForbidden)
		return
	}

	var upd models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.UpdateUser(ctx, userID, upd)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// deleteUser handles DELETE /api/user/{id}. Admin or the account owner. The
// credential and contacts of the account are removed with it.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	userID, err := pathID(r)
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !principal.IsAdmin() && !principal.IsOwner(userID) {
		log.Error().Str("subject", principal.Subject).Int64("target", userID).Msg("deletion of foreign account denied")
		utils.WriteJSONError(w, errForbidden.Error(), http.StatusForbidden)
		return
	}

	if err := h.services.UserService.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("user deletion failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "User deleted"}, http.StatusOK)
}
