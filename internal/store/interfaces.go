package store

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	// CreateUserWithCredential inserts the user row and its credential row in
	// a single transaction. Either both rows exist afterwards or neither does.
	CreateUserWithCredential(ctx context.Context, user models.User, passwordHash string) (models.User, error)

	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)

	// UpdateUser applies the non-nil fields of upd to the user row and
	// returns the updated record.
	UpdateUser(ctx context.Context, userID int64, upd models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// CredentialRepository is the persistence contract for stored password hashes
// and their failed-attempt counters.
type CredentialRepository interface {
	FindCredentialByUserID(ctx context.Context, userID int64) (models.Credential, error)

	// IncrementFailedAttempts bumps the failure counter after a failed login
	// and returns the new value.
	IncrementFailedAttempts(ctx context.Context, userID int64) (int, error)

	// ResetFailedAttempts zeroes the failure counter after a successful login.
	ResetFailedAttempts(ctx context.Context, userID int64) error
}

// ContactRepository is the persistence contract for address-book entries.
type ContactRepository interface {
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	FindContactByID(ctx context.Context, contactID int64) (models.Contact, error)
	FindContactsByUserID(ctx context.Context, userID int64) ([]models.Contact, error)

	// UpdateContact applies the non-nil fields of upd to the contact row and
	// returns the updated record.
	UpdateContact(ctx context.Context, contactID int64, upd models.ContactUpdate) (models.Contact, error)
	DeleteContact(ctx context.Context, contactID int64) error
}
