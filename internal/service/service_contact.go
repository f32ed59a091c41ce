package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// contactService is the concrete implementation of ContactService.
type contactService struct {
	contactRepository store.ContactRepository
	logger            *logger.Logger
}

func NewContactService(contactRepository store.ContactRepository, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		logger:            logger,
	}
}

// CreateContact persists a new contact for the owner set in contact.UserID.
//
// Returns the created record (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if the owner ID is missing.
//   - A wrapped storage error, e.g. store.ErrUserReferenceViolation when the
//     owner does not exist.
func (s *contactService) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	if contact.UserID <= 0 {
		log.Error().Msg("contact creation without an owner")
		return models.Contact{}, ErrInvalidDataProvided
	}

	created, err := s.contactRepository.CreateContact(ctx, contact)
	if err != nil {
		log.Err(err).Int64("user_id", contact.UserID).Msg("contact creation failed")
		return models.Contact{}, fmt.Errorf("contact creation failed: %w", err)
	}

	return created, nil
}

// GetContactByID returns the contact identified by contactID or a wrapped
// store.ErrNoContactWasFound.
func (s *contactService) GetContactByID(ctx context.Context, contactID int64) (models.Contact, error) {
	log := logger.FromContext(ctx)

	contact, err := s.contactRepository.FindContactByID(ctx, contactID)
	if err != nil {
		log.Err(err).Int64("id", contactID).Msg("contact search by id failed")
		return models.Contact{}, fmt.Errorf("contact search by id failed: %w", err)
	}

	return contact, nil
}

// GetContactsByUserID returns every contact owned by the given user. An empty
// address book yields an empty slice, not an error.
func (s *contactService) GetContactsByUserID(ctx context.Context, userID int64) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	contacts, err := s.contactRepository.FindContactsByUserID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("contact listing failed")
		return nil, fmt.Errorf("contact listing failed: %w", err)
	}

	return contacts, nil
}

// UpdateContact applies the non-nil fields of upd to the contact and returns
// the updated record.
func (s *contactService) UpdateContact(ctx context.Context, contactID int64, upd models.ContactUpdate) (models.Contact, error) {
	log := logger.FromContext(ctx)

	contact, err := s.contactRepository.UpdateContact(ctx, contactID, upd)
	if err != nil {
		log.Err(err).Int64("id", contactID).Msg("contact update failed")
		return models.Contact{}, fmt.Errorf("contact update failed: %w", err)
	}

	return contact, nil
}

// DeleteContact removes the contact identified by contactID.
func (s *contactService) DeleteContact(ctx context.Context, contactID int64) error {
	log := logger.FromContext(ctx)

	if err := s.contactRepository.DeleteContact(ctx, contactID); err != nil {
		log.Err(err).Int64("id", contactID).Msg("contact deletion failed")
		return fmt.Errorf("contact deletion failed: %w", err)
	}

	return nil
}
