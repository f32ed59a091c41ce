package models

import "time"

// Role values assigned to user accounts. Registration always assigns
// RoleUser; RoleAdmin is granted out of band.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes; credential data lives in [Credential].
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier of the account.
	Email string `json:"email"`

	// Role is either RoleAdmin or RoleUser and drives authorization checks.
	Role string `json:"role"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"-"`
}

// UserUpdate describes a partial update of a user record. Nil fields are
// left unchanged.
type UserUpdate struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
