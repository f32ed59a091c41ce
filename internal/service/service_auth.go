package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification with lockout
// accounting, and the JWT token lifecycle. Passwords are hashed with
// argon2id before storage or comparison.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// credentialRepository holds password hashes and failed-attempt counters.
	credentialRepository store.CredentialRepository

	// passwordSalt is the process-wide salt mixed into every argon2id hash.
	// Must match the value used at registration time.
	passwordSalt string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, credentialRepository store.CredentialRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:       userRepository,
		credentialRepository: credentialRepository,
		passwordSalt:         cfg.PasswordSalt,
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		tokenDuration:        cfg.TokenDuration,
		logger:               logger,
	}
}

// Register creates a new user account.
//
// It validates that both Email and the password are non-empty, forces the role
// to "user" regardless of what the caller supplied, hashes the password with
// the configured salt, and persists the user row together with its credential
// row in a single transaction.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if Email or password is empty.
//   - A wrapped storage error if the repository call fails (e.g. email already
//     taken — see store.ErrEmailAlreadyExists).
func (a *authService) Register(ctx context.Context, user models.User, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Email == "" || password == "" {
		log.Error().Str("email", user.Email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	// Self-registration never grants elevated privileges.
	user.Role = models.RoleUser

	passwordHash := utils.HashPassword(password, a.passwordSalt)

	registeredUser, err := a.userRepository.CreateUserWithCredential(ctx, user, passwordHash)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and issues a signed token.
//
// The flow is:
//  1. Validate that email and password are non-empty.
//  2. Look up the account by email.
//  3. Load its credential record. A missing credential row is reported as
//     store.ErrNoUserWasFound so a half-deleted account looks like an
//     unknown one.
//  4. Refuse locked accounts before touching the hash, so a locked account
//     fails even with the correct password.
//  5. Verify the password against the stored argon2id hash. A mismatch bumps
//     the failed-attempt counter; a verification failure (malformed hash) is
//     surfaced as an internal error, never as a wrong password.
//  6. On success clear the counter and issue a token.
//
// Returns the signed token or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - A wrapped storage error if a lookup fails (e.g. store.ErrNoUserWasFound).
//   - ErrAccountLocked if the account crossed the lockout threshold.
//   - ErrWrongPassword if the password does not match.
//   - ErrPasswordVerification if the stored hash cannot be checked.
func (a *authService) Login(ctx context.Context, email, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	credential, err := a.credentialRepository.FindCredentialByUserID(ctx, user.ID)
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("credential lookup failed")
		// An account whose credential row vanished between the two lookups
		// (deleted mid-login) is reported like an unknown account.
		if errors.Is(err, store.ErrNoCredentialWasFound) {
			return models.Token{}, fmt.Errorf("credential lookup failed: %w", store.ErrNoUserWasFound)
		}
		return models.Token{}, fmt.Errorf("credential lookup failed: %w", err)
	}

	if credential.IsBlocked() {
		log.Error().Int64("id", user.ID).Int("failed_attempts", credential.FailedAttempts).Msg("account is locked")
		return models.Token{}, ErrAccountLocked
	}

	match, err := utils.VerifyPassword(credential.PasswordHash, password, a.passwordSalt)
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("stored password hash could not be verified")
		return models.Token{}, fmt.Errorf("%w: %w", ErrPasswordVerification, err)
	}
	if !match {
		attempts, incErr := a.credentialRepository.IncrementFailedAttempts(ctx, user.ID)
		if incErr != nil {
			log.Err(incErr).Int64("id", user.ID).Msg("failed to increment failed attempts")
		} else {
			log.Error().Int64("id", user.ID).Int("failed_attempts", attempts).Msg("wrong password")
		}
		return models.Token{}, ErrWrongPassword
	}

	if credential.FailedAttempts > 0 {
		if resetErr := a.credentialRepository.ResetFailedAttempts(ctx, user.ID); resetErr != nil {
			log.Err(resetErr).Int64("id", user.ID).Msg("failed to reset failed attempts")
		}
	}

	return a.CreateToken(ctx, user)
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, the user ID as "sub", the account role as
// "role", and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, user.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string and derives the request principal.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Principal, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Principal{}, ErrTokenIsExpiredOrInvalid
	}

	claims, ok := token.Token.Claims.(*models.Claims)
	if !ok {
		return models.Principal{}, ErrTokenIsExpiredOrInvalid
	}

	principal := models.Principal{
		Subject: claims.Subject,
		Role:    claims.Role,
		Issuer:  claims.Issuer,
	}
	if claims.ExpiresAt != nil {
		principal.ExpiresAt = claims.ExpiresAt.Time
	}

	return principal, nil
}
