package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/mock"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSalt    = "test-password-salt"
	testSignKey = "test-sign-key"
	testIssuer  = "go-contact-keeper"
)

// newTestAuthService builds an authService with repository mocks and fixed
// security parameters.
func newTestAuthService(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	AuthService,
	*mock.MockUserRepository,
	*mock.MockCredentialRepository,
) {
	t.Helper()
	mockUserRepo := mock.NewMockUserRepository(ctrl)
	mockCredentialRepo := mock.NewMockCredentialRepository(ctrl)

	cfg := config.Auth{
		PasswordSalt:  testSalt,
		TokenSignKey:  testSignKey,
		TokenIssuer:   testIssuer,
		TokenDuration: time.Hour,
	}

	svc := NewAuthService(mockUserRepo, mockCredentialRepo, cfg, logger.Nop())

	return svc, mockUserRepo, mockCredentialRepo
}

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUserRepo, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	user := models.User{
		Name:  "Alice",
		Email: "alice@x.com",
		Role:  models.RoleAdmin, // must be ignored
	}

	mockUserRepo.EXPECT().CreateUserWithCredential(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User, passwordHash string) (models.User, error) {
			assert.Equal(t, models.RoleUser, u.Role, "self-registration must not grant elevated roles")
			assert.Equal(t, utils.HashPassword("secret", testSalt), passwordHash)
			u.ID = 1
			return u, nil
		},
	)

	registered, err := svc.Register(ctx, user, "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.ID)
	assert.Equal(t, models.RoleUser, registered.Role)
}

func TestAuthService_Register_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No repository expectations: invalid input must be rejected before any
	// persistence call.
	svc, _, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	_, err := svc.Register(ctx, models.User{Email: ""}, "secret")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Register(ctx, models.User{Email: "alice@x.com"}, "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUserRepo, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	mockUserRepo.EXPECT().CreateUserWithCredential(ctx, gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Register(ctx, models.User{Email: "alice@x.com"}, "secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUserRepo, mockCredentialRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: 1, Email: "alice@x.com", Role: models.RoleUser}
	credential := models.Credential{
		UserID:       1,
		PasswordHash: utils.HashPassword("secret", testSalt),
	}

	gomock.InOrder(
		mockUserRepo.EXPECT().FindUserByEmail(ctx, "alice@x.com").Return(user, nil),
		mockCredentialRepo.EXPECT().FindCredentialByUserID(ctx, int64(1)).Return(credential, nil),
	)

	token, err := svc.Login(ctx, "alice@x.com", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(1), token.UserID)
	assert.Equal(t, models.RoleUser, token.Role)
}

func TestAuthService_Login_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No repository expectations: an empty email or password must short-circuit
	// without touching the store.
	svc, _, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	_, err := svc.Login(ctx, "", "secret")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Login(ctx, "alice@x.com", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUserRepo, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	mockUserRepo.EXPECT().FindUserByEmail(ctx, "ghost@x.com").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, "ghost@x.com", "secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_Login_MissingCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUserRepo, mockCredentialRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: 1, Email: "alice@x.com", Role: models.RoleUser}

	gomock.InOrder(
		mockUserRepo.EXPECT().FindUserByEmail(ctx, "alice@x.com").Return(user, nil),
		// The account was deleted between the user and credential lookups.
		mockCredentialRepo.EXPECT().FindCredentialByUserID(ctx, int64(1)).
			Return(models.Credential{}, store.ErrNoCredentialWasFound),
	)

	_, err := svc.Login(ctx, "alice@x.com", "secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
	assert.NotErrorIs(t, err, store.ErrNoCredentialWasFound)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUserRepo, mockCredentialRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: 1, Email: "alice@x.com", Role: models.RoleUser}
	credential := models.Credential{
		UserID:       1,
		PasswordHash: utils.HashPassword("secret", testSalt),
	}

	gomock.InOrder(
		mockUserRepo.EXPECT().FindUserByEmail(ctx, "alice@x.com").Return(user, nil),
		mockCredentialRepo.EXPECT().FindCredentialByUserID(ctx, int64(1)).Return(credential, nil),
		// A mismatch must be counted against the account.
		mockCredentialRepo.EXPECT().IncrementFailedAttempts(ctx, int64(1)).Return(1, nil),
	)

	_, err := svc.Login(ctx, "alice@x.com", "not-the-password")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_LockedAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUserRepo, mockCredentialRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: 1, Email: "alice@x.com", Role: models.RoleUser}
	credential := models.Credential{
		UserID:         1,
		PasswordHash:   utils.HashPassword("secret", testSalt),
		FailedAttempts: 6,
	}

	gomock.InOrder(
		mockUserRepo.EXPECT().FindUserByEmail(ctx, "alice@x.com").Return(user, nil),
		mockCredentialRepo.EXPECT().FindCredentialByUserID(ctx, int64(1)).Return(credential, nil),
	)

	// Even the correct password must not unlock the account.
	_, err := svc.Login(ctx, "alice@x.com", "secret")
	assert.ErrorIs(t, err, ErrAccountLocked)
}

func TestAuthService_Login_MalformedStoredHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUserRepo, mockCredentialRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: 1, Email: "alice@x.com", Role: models.RoleUser}
	credential := models.Credential{UserID: 1, PasswordHash: "not-an-argon2id-hash"}

	gomock.InOrder(
		mockUserRepo.EXPECT().FindUserByEmail(ctx, "alice@x.com").Return(user, nil),
		mockCredentialRepo.EXPECT().FindCredentialByUserID(ctx, int64(1)).Return(credential, nil),
	)

	// An unreadable hash is an internal failure, never a wrong password: the
	// counter is not incremented.
	_, err := svc.Login(ctx, "alice@x.com", "secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPasswordVerification)
	assert.NotErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_ResetsCounterAfterSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUserRepo, mockCredentialRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: 1, Email: "alice@x.com", Role: models.RoleUser}
	credential := models.Credential{
		UserID:         1,
		PasswordHash:   utils.HashPassword("secret", testSalt),
		FailedAttempts: 3,
	}

	gomock.InOrder(
		mockUserRepo.EXPECT().FindUserByEmail(ctx, "alice@x.com").Return(user, nil),
		mockCredentialRepo.EXPECT().FindCredentialByUserID(ctx, int64(1)).Return(credential, nil),
		mockCredentialRepo.EXPECT().ResetFailedAttempts(ctx, int64(1)).Return(nil),
	)

	token, err := svc.Login(ctx, "alice@x.com", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
}

func TestAuthService_Login_IncrementFailureStillWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUserRepo, mockCredentialRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: 1, Email: "alice@x.com", Role: models.RoleUser}
	credential := models.Credential{
		UserID:       1,
		PasswordHash: utils.HashPassword("secret", testSalt),
	}

	gomock.InOrder(
		mockUserRepo.EXPECT().FindUserByEmail(ctx, "alice@x.com").Return(user, nil),
		mockCredentialRepo.EXPECT().FindCredentialByUserID(ctx, int64(1)).Return(credential, nil),
		mockCredentialRepo.EXPECT().IncrementFailedAttempts(ctx, int64(1)).Return(0, errors.New("db down")),
	)

	_, err := svc.Login(ctx, "alice@x.com", "not-the-password")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_ParseToken_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{ID: 42, Role: models.RoleAdmin})
	require.NoError(t, err)

	principal, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "42", principal.Subject)
	assert.Equal(t, models.RoleAdmin, principal.Role)
	assert.Equal(t, testIssuer, principal.Issuer)
	assert.True(t, principal.IsAdmin())
	assert.True(t, principal.IsOwner(42))
	assert.False(t, principal.IsOwner(43))
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	_, err := svc.ParseToken(ctx, "not.a.token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
