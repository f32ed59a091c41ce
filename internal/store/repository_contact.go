package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/jackc/pgerrcode"
)

// contactRepository is the PostgreSQL-backed implementation of
// [ContactRepository] working against the "contacts" table.
type contactRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewContactRepository constructs a [ContactRepository] backed by the
// provided database connection and logger.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

// CreateContact persists a new contact owned by contact.UserID and returns
// the record with its server-assigned ID.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrUserReferenceViolation]
//     (the owner row does not exist).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	var created models.Contact
	row := r.db.QueryRowContext(ctx, createContact,
		contact.UserID, contact.LastName, contact.FirstName, contact.Email, contact.Phone)
	if err := row.Scan(&created.ID, &created.UserID, &created.LastName, &created.FirstName, &created.Email, &created.Phone); err != nil {
		log.Err(err).Str("func", "*contactRepository.CreateContact").Msg("error: creating contact row")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Contact{}, ErrUserReferenceViolation
		default:
			return models.Contact{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindContactByID retrieves a contact record by its surrogate key.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoContactWasFound].
func (r *contactRepository) FindContactByID(ctx context.Context, contactID int64) (models.Contact, error) {
	log := logger.FromContext(ctx)

	var contact models.Contact
	row := r.db.QueryRowContext(ctx, findContactByID, contactID)
	if err := row.Scan(&contact.ID, &contact.UserID, &contact.LastName, &contact.FirstName, &contact.Email, &contact.Phone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, ErrNoContactWasFound
		}

		log.Err(err).Str("func", "*contactRepository.FindContactByID").Msg("error: scanning contact row")
		return models.Contact{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return contact, nil
}

// FindContactsByUserID returns every contact owned by the given user,
// ordered by ID.
func (r *contactRepository) FindContactsByUserID(ctx context.Context, userID int64) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findContactsByUserID, userID)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.FindContactsByUserID").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0)
	for rows.Next() {
		var contact models.Contact
		if err := rows.Scan(&contact.ID, &contact.UserID, &contact.LastName, &contact.FirstName, &contact.Email, &contact.Phone); err != nil {
			log.Err(err).Str("func", "*contactRepository.FindContactsByUserID").Msg("error: scanning contact rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*contactRepository.FindContactsByUserID").Msg("error: iterating contact rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return contacts, nil
}

// UpdateContact applies the non-nil fields of upd to the contact row
// identified by contactID and returns the updated record. An update with no
// fields set falls back to a plain lookup.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoContactWasFound].
func (r *contactRepository) UpdateContact(ctx context.Context, contactID int64, upd models.ContactUpdate) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, ok, err := buildContactUpdateQuery(contactID, upd)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.UpdateContact").Msg("error: building update query")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if !ok {
		return r.FindContactByID(ctx, contactID)
	}

	var updated models.Contact
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&updated.ID, &updated.UserID, &updated.LastName, &updated.FirstName, &updated.Email, &updated.Phone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, ErrNoContactWasFound
		}

		log.Err(err).Str("func", "*contactRepository.UpdateContact").Msg("error: scanning updated contact row")
		return models.Contact{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteContact removes the contact row identified by contactID.
//
// Error handling:
//   - zero affected rows → [ErrNoContactWasFound].
func (r *contactRepository) DeleteContact(ctx context.Context, contactID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteContact, contactID)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.DeleteContact").Msg("error: executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.DeleteContact").Msg("error: reading affected rows")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoContactWasFound
	}

	return nil
}
