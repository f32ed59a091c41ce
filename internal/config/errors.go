package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete. All of them are fatal at startup.
var (
	// ErrMissingDatabaseDSN indicates that no database connection string was
	// provided by any configuration source.
	ErrMissingDatabaseDSN = errors.New("database DSN is not configured")

	// ErrMissingTokenSignKey indicates that the JWT signing secret is absent.
	// Without it no token can be issued or verified.
	ErrMissingTokenSignKey = errors.New("token sign key is not configured")

	// ErrMissingPasswordSalt indicates that the process-wide password salt is
	// absent. Without it no credential can be created or verified.
	ErrMissingPasswordSalt = errors.New("password salt is not configured")
)
