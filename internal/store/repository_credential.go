package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// credentialRepository is the PostgreSQL-backed implementation of
// [CredentialRepository]. It manages the password hash and failed-attempt
// counter stored in the "credentials" table.
//
// Credential rows are created only by
// [userRepository.CreateUserWithCredential]; this repository covers lookup
// and counter maintenance.
type credentialRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCredentialRepository constructs a [CredentialRepository] backed by the
// provided database connection and logger.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

// FindCredentialByUserID retrieves the credential record of the given user.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoCredentialWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *credentialRepository) FindCredentialByUserID(ctx context.Context, userID int64) (models.Credential, error) {
	log := logger.FromContext(ctx)

	var credential models.Credential
	row := r.db.QueryRowContext(ctx, findCredentialByUserID, userID)
	if err := row.Scan(&credential.UserID, &credential.PasswordHash, &credential.FailedAttempts); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Credential{}, ErrNoCredentialWasFound
		}

		log.Err(err).Str("func", "*credentialRepository.FindCredentialByUserID").Msg("error: scanning credential row")
		return models.Credential{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return credential, nil
}

// IncrementFailedAttempts bumps the failed-login counter of the given user by
// one and returns the new value.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoCredentialWasFound].
func (r *credentialRepository) IncrementFailedAttempts(ctx context.Context, userID int64) (int, error) {
	log := logger.FromContext(ctx)

	var failedAttempts int
	row := r.db.QueryRowContext(ctx, incrementFailedAttempts, userID)
	if err := row.Scan(&failedAttempts); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNoCredentialWasFound
		}

		log.Err(err).Str("func", "*credentialRepository.IncrementFailedAttempts").Msg("error: incrementing failed attempts")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return failedAttempts, nil
}

// ResetFailedAttempts zeroes the failed-login counter of the given user after
// a successful authentication.
func (r *credentialRepository) ResetFailedAttempts(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, resetFailedAttempts, userID); err != nil {
		log.Err(err).Str("func", "*credentialRepository.ResetFailedAttempts").Msg("error: resetting failed attempts")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
