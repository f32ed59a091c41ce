package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// listContacts handles GET /api/contacts/{id}/all, where {id} is the owning
// user. Admin or the owner.
func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
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
		log.Error().Str("subject", principal.Subject).Int64("owner", userID).Msg("listing of foreign contacts denied")
		utils.WriteJSONError(w, errForbidden.Error(), http.StatusForbidden)
		return
	}

	contacts, err := h.services.ContactService.GetContactsByUserID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("owner", userID).Msg("contact listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.ContactsResponse{Contacts: contacts}, http.StatusOK)
}

// createContact handles POST /api/contacts/{id}, where {id} is the owning
// user. Admin or the owner. The owner in the stored record always comes from
// the path, never from the request body.
func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
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
		log.Error().Str("subject", principal.Subject).Int64("owner", userID).Msg("creating a contact for a foreign account denied")
		utils.WriteJSONError(w, errForbidden.Error(), http.StatusForbidden)
		return
	}

	var contact models.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	contact.UserID = userID

	created, err := h.services.ContactService.CreateContact(ctx, contact)
	if err != nil {
		log.Err(err).Int64("owner", userID).Msg("contact creation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

// getContact handles GET /api/contacts/{id}, where {id} is the contact
// itself. Admin or the contact's owner; the owner is taken from the stored
// record, not from the path.
func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	contactID, err := pathID(r)
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	contact, err := h.services.ContactService.GetContactByID(ctx, contactID)
	if err != nil {
		log.Err(err).Int64("id", contactID).Msg("contact lookup failed")
		writeError(w, err)
		return
	}

	if !principal.IsAdmin() && !principal.IsOwner(contact.UserID) {
		log.Error().Str("subject", principal.Subject).Int64("owner", contact.UserID).Msg("access to foreign contact denied")
		utils.WriteJSONError(w, errForbidden.Error(), http.StatusForbidden)
		return
	}

	utils.WriteJSON(w, contact, http.StatusOK)
}

// updateContact handles PUT /api/contacts/{id}, where {id} is the contact
// itself. Admin or the contact's owner; only the fields present in the body
// are changed.
func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	contactID, err := pathID(r)
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Load first: authorization is decided against the stored owner.
	contact, err := h.services.ContactService.GetContactByID(ctx, contactID)
	if err != nil {
		log.Err(err).Int64("id", contactID).Msg("contact lookup failed")
		writeError(w, err)
		return
	}

	if !principal.IsAdmin() && !principal.IsOwner(contact.UserID) {
		log.Error().Str("subject", principal.Subject).Int64("owner", contact.UserID).Msg("update of foreign contact denied")
		utils.WriteJSONError(w, errForbidden.Error(), http.StatusForbidden)
		return
	}

	var upd models.ContactUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.ContactService.UpdateContact(ctx, contactID, upd)
	if err != nil {
		log.Err(err).Int64("id", contactID).Msg("contact update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// deleteContact handles DELETE /api/contacts/{id}, where {id} is the contact
// itself. Admin or the contact's owner.
func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	contactID, err := pathID(r)
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	contact, err := h.services.ContactService.GetContactByID(ctx, contactID)
	if err != nil {
		log.Err(err).Int64("id", contactID).Msg("contact lookup failed")
		writeError(w, err)
		return
	}

	if !principal.IsAdmin() && !principal.IsOwner(contact.UserID) {
		log.Error().Str("subject", principal.Subject).Int64("owner", contact.UserID).Msg("deletion of foreign contact denied")
		utils.WriteJSONError(w, errForbidden.Error(), http.StatusForbidden)
		return
	}

	if err := h.services.ContactService.DeleteContact(ctx, contactID); err != nil {
		log.Err(err).Int64("id", contactID).Msg("contact deletion failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Contact deleted"}, http.StatusOK)
}
