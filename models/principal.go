package models

import (
	"strconv"
	"time"
)

// Principal is the verified identity derived from a bearer token, scoped to a
// single request. It is built by the auth middleware after signature and
// expiry checks succeed and is never persisted.
type Principal struct {
	// Subject is the string-encoded user ID from the token's "sub" claim.
	Subject string

	// Role is the account role from the token's "role" claim.
	Role string

	// Issuer is the "iss" claim of the validated token.
	Issuer string

	// ExpiresAt is the absolute expiry time of the token.
	ExpiresAt time.Time
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// IsOwner reports whether the principal's subject identifies the given user.
// A subject that does not parse as an integer makes the check fail rather
// than panic.
func (p Principal) IsOwner(userID int64) bool {
	subjectID, err := strconv.ParseInt(p.Subject, 10, 64)
	if err != nil {
		return false
	}

	return subjectID == userID
}
