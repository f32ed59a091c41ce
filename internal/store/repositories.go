package store

import (
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
)

// Repositories bundles every persistence-layer contract behind a single
// value that is passed to the service layer.
type Repositories struct {
	UserRepository       UserRepository
	CredentialRepository CredentialRepository
	ContactRepository    ContactRepository
}

// NewRepositories constructs all repositories backed by the given database
// connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db, logger),
		CredentialRepository: NewCredentialRepository(db, logger),
		ContactRepository:    NewContactRepository(db, logger),
	}
}
