package models

// maxFailedLoginAttempts is the number of consecutive failed logins after
// which an account is considered blocked.
const maxFailedLoginAttempts = 5

// Credential holds the stored password hash and failure metadata for a user.
// Exactly one credential exists per user; it is created in the same database
// transaction as its user row.
//
// The struct is never serialized to JSON: the hash must not leave the server
// process.
type Credential struct {
	// UserID references the owning user row.
	UserID int64 `json:"-"`

	// PasswordHash is the encoded argon2id hash of the user's password.
	// The plaintext is never stored or logged.
	PasswordHash string `json:"-"`

	// FailedAttempts counts consecutive failed login attempts. It is reset
	// to zero on a successful login.
	FailedAttempts int `json:"-"`
}

// IsBlocked reports whether the account has exceeded the failed-login
// threshold and must not be allowed to authenticate.
func (c Credential) IsBlocked() bool {
	return c.FailedAttempts > maxFailedLoginAttempts
}

// TableName returns the name of the database table
// associated with the Credential model.
func (c Credential) TableName() string {
	return "credentials"
}
