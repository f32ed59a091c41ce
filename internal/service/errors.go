package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrAccountLocked is returned by Login once the failed-attempt counter
	// of an account crosses the lockout threshold. Further logins keep
	// failing even with the correct password until the counter is cleared.
	ErrAccountLocked = errors.New("account is locked")

	// ErrPasswordVerification is returned when the stored hash cannot be
	// checked at all, e.g. it is malformed. Distinct from ErrWrongPassword:
	// this is an internal failure, not a bad credential.
	ErrPasswordVerification = errors.New("password verification failed")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
