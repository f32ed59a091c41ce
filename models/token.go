package models

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT payload issued by the auth service.
//
// It embeds [jwt.RegisteredClaims] for the standard claim set (sub, iss, exp,
// iat) and adds the account role so that authorization checks do not need a
// database round-trip.
type Claims struct {
	jwt.RegisteredClaims

	// Role is the account role copied from the user row at token issue time.
	Role string `json:"role"`
}

// Token wraps a signed JWT with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// UserID and Role are cached, parsed copies of the "sub" and "role" claims,
// populated during generation or validation to avoid repeated parsing.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`

	// Role is the account role extracted from the "role" claim.
	Role string `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject)
// claim, parses it as a base-10 int64, and returns the result.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.Claims.GetSubject()
	if err != nil {
		return 0, err
	}

	return strconv.ParseInt(userIDString, 10, 64)
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
