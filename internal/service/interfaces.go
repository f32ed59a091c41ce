package service

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_service.go -package=mock

// AuthService covers account registration and the bearer-token lifecycle.
type AuthService interface {
	// Register creates a new account with the role forced to "user" and
	// stores the hashed password alongside it in one transaction.
	Register(ctx context.Context, user models.User, password string) (models.User, error)

	// Login authenticates an email/password pair and returns a signed token.
	// Failed attempts are counted; too many of them lock the account.
	Login(ctx context.Context, email, password string) (models.Token, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw bearer token and returns the request
	// principal derived from its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Principal, error)
}

// UserService covers account reads and mutations performed over the API.
type UserService interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, upd models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// ContactService covers the per-user address book.
type ContactService interface {
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	GetContactByID(ctx context.Context, contactID int64) (models.Contact, error)
	GetContactsByUserID(ctx context.Context, userID int64) ([]models.Contact, error)
	UpdateContact(ctx context.Context, contactID int64, upd models.ContactUpdate) (models.Contact, error)
	DeleteContact(ctx context.Context, contactID int64) error
}
