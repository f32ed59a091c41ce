package service

import (
	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	ContactService ContactService
}

func NewServices(repositories *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(repositories.UserRepository, repositories.CredentialRepository, cfg.Auth, logger),
		UserService:    NewUserService(repositories.UserRepository, logger),
		ContactService: NewContactService(repositories.ContactRepository, logger),
	}
}
