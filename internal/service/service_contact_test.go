package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/mock"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestContactService(t *testing.T, ctrl *gomock.Controller) (ContactService, *mock.MockContactRepository) {
	t.Helper()
	mockContactRepo := mock.NewMockContactRepository(ctrl)
	return NewContactService(mockContactRepo, logger.Nop()), mockContactRepo
}

func TestContactService_CreateContact_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockContactRepo := newTestContactService(t, ctrl)
	ctx := context.Background()

	contact := models.Contact{UserID: 1, LastName: "Smith", FirstName: "John"}
	created := contact
	created.ID = 10
	mockContactRepo.EXPECT().CreateContact(ctx, contact).Return(created, nil)

	got, err := svc.CreateContact(ctx, contact)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.ID)
}

func TestContactService_CreateContact_NoOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No repository expectations: a contact without an owner never reaches
	// the store.
	svc, _ := newTestContactService(t, ctrl)
	ctx := context.Background()

	_, err := svc.CreateContact(ctx, models.Contact{LastName: "Smith"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestContactService_CreateContact_MissingUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockContactRepo := newTestContactService(t, ctrl)
	ctx := context.Background()

	mockContactRepo.EXPECT().CreateContact(ctx, gomock.Any()).
		Return(models.Contact{}, store.ErrUserReferenceViolation)

	_, err := svc.CreateContact(ctx, models.Contact{UserID: 999})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrUserReferenceViolation)
}

func TestContactService_GetContactsByUserID_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockContactRepo := newTestContactService(t, ctrl)
	ctx := context.Background()

	mockContactRepo.EXPECT().FindContactsByUserID(ctx, int64(1)).
		Return([]models.Contact{}, nil)

	contacts, err := svc.GetContactsByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, contacts)
	assert.NotNil(t, contacts)
}

func TestContactService_UpdateContact_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockContactRepo := newTestContactService(t, ctrl)
	ctx := context.Background()

	newPhone := "555-0199"
	mockContactRepo.EXPECT().UpdateContact(ctx, int64(99), models.ContactUpdate{Phone: &newPhone}).
		Return(models.Contact{}, store.ErrNoContactWasFound)

	_, err := svc.UpdateContact(ctx, 99, models.ContactUpdate{Phone: &newPhone})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNoContactWasFound)
}

func TestContactService_DeleteContact_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockContactRepo := newTestContactService(t, ctrl)
	ctx := context.Background()

	mockContactRepo.EXPECT().DeleteContact(ctx, int64(10)).Return(nil)

	require.NoError(t, svc.DeleteContact(ctx, 10))
}
