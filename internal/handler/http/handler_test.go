package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn    func(ctx context.Context, user models.User, password string) (models.User, error)
	loginFn       func(ctx context.Context, email, password string) (models.Token, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Principal, error)
}

func (m *mockAuthService) Register(ctx context.Context, user models.User, password string) (models.User, error) {
	return m.registerFn(ctx, user, password)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.Token, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Principal, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockUserService implements service.UserService for unit tests.
type mockUserService struct {
	getAllFn func(ctx context.Context) ([]models.User, error)
	getFn    func(ctx context.Context, userID int64) (models.User, error)
	updateFn func(ctx context.Context, userID int64, upd models.UserUpdate) (models.User, error)
	deleteFn func(ctx context.Context, userID int64) error
}

func (m *mockUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return m.getAllFn(ctx)
}

func (m *mockUserService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	return m.getFn(ctx, userID)
}

func (m *mockUserService) UpdateUser(ctx context.Context, userID int64, upd models.UserUpdate) (models.User, error) {
	return m.updateFn(ctx, userID, upd)
}

func (m *mockUserService) DeleteUser(ctx context.Context, userID int64) error {
	return m.deleteFn(ctx, userID)
}

// mockContactService implements service.ContactService for unit tests.
type mockContactService struct {
	createFn func(ctx context.Context, contact models.Contact) (models.Contact, error)
	getFn    func(ctx context.Context, contactID int64) (models.Contact, error)
	listFn   func(ctx context.Context, userID int64) ([]models.Contact, error)
	updateFn func(ctx context.Context, contactID int64, upd models.ContactUpdate) (models.Contact, error)
	deleteFn func(ctx context.Context, contactID int64) error
}

func (m *mockContactService) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	return m.createFn(ctx, contact)
}

func (m *mockContactService) GetContactByID(ctx context.Context, contactID int64) (models.Contact, error) {
	return m.getFn(ctx, contactID)
}

func (m *mockContactService) GetContactsByUserID(ctx context.Context, userID int64) ([]models.Contact, error) {
	return m.listFn(ctx, userID)
}

func (m *mockContactService) UpdateContact(ctx context.Context, contactID int64, upd models.ContactUpdate) (models.Contact, error) {
	return m.updateFn(ctx, contactID, upd)
}

func (m *mockContactService) DeleteContact(ctx context.Context, contactID int64) error {
	return m.deleteFn(ctx, contactID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{AuthService: auth}, logger.Nop())
}

// newHandlerWithUsers builds a Handler with the given UserService mock.
func newHandlerWithUsers(t *testing.T, users service.UserService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{UserService: users}, logger.Nop())
}

// newHandlerWithContacts builds a Handler with the given ContactService mock.
func newHandlerWithContacts(t *testing.T, contacts service.ContactService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{ContactService: contacts}, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// withPrincipal stores the given principal in the request context, emulating
// a request that already passed the auth middleware.
func withPrincipal(r *http.Request, principal models.Principal) *http.Request {
	ctx := context.WithValue(r.Context(), utils.PrincipalCtxKey, principal)
	return r.WithContext(ctx)
}

// withURLParam injects a chi route parameter into the request context so that
// handlers can be invoked directly, without routing.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

// Convenience fixtures used across multiple tests.
var (
	adminPrincipal = models.Principal{Subject: "99", Role: models.RoleAdmin}
	alicePrincipal = models.Principal{Subject: "1", Role: models.RoleUser}
	bobPrincipal   = models.Principal{Subject: "2", Role: models.RoleUser}
)
