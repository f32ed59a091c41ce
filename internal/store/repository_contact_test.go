package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/jackc/pgerrcode"
)

func newTestContactRepo(t *testing.T) (*contactRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &contactRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func contactColumns() []string {
	return []string{"id", "user_id", "lastname", "firstname", "email", "phone"}
}

func TestCreateContact_Success(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	ctx := context.Background()
	contact := models.Contact{
		UserID:    1,
		LastName:  "Smith",
		FirstName: "John",
		Email:     "john@x.com",
		Phone:     "555-0101",
	}

	mock.ExpectQuery("INSERT INTO contacts").
		WithArgs(contact.UserID, contact.LastName, contact.FirstName, contact.Email, contact.Phone).
		WillReturnRows(sqlmock.NewRows(contactColumns()).
			AddRow(10, contact.UserID, contact.LastName, contact.FirstName, contact.Email, contact.Phone))

	created, err := repo.CreateContact(ctx, contact)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 10 {
		t.Errorf("expected ID=10, got %d", created.ID)
	}
	if created.UserID != contact.UserID {
		t.Errorf("expected owner %d, got %d", contact.UserID, created.UserID)
	}
}

func TestCreateContact_MissingOwner(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO contacts").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateContact(ctx, models.Contact{UserID: 999})
	if !errors.Is(err, ErrUserReferenceViolation) {
		t.Fatalf("expected ErrUserReferenceViolation, got %v", err)
	}
}

func TestFindContactByID_NotFound(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, user_id, lastname, firstname, email, phone").
		WithArgs(int64(5)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindContactByID(ctx, 5)
	if !errors.Is(err, ErrNoContactWasFound) {
		t.Fatalf("expected ErrNoContactWasFound, got %v", err)
	}
}

func TestFindContactsByUserID_Success(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, user_id, lastname, firstname, email, phone").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(contactColumns()).
			AddRow(10, 1, "Smith", "John", "john@x.com", "555-0101").
			AddRow(11, 1, "Doe", "Jane", "jane@x.com", "555-0102"))

	contacts, err := repo.FindContactsByUserID(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contacts) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(contacts))
	}
	if contacts[1].LastName != "Doe" {
		t.Errorf("expected second contact Doe, got %s", contacts[1].LastName)
	}
}

func TestUpdateContact_PartialFields(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	ctx := context.Background()
	newPhone := "555-0199"

	mock.ExpectQuery("UPDATE contacts SET phone = ").
		WithArgs(newPhone, int64(10)).
		WillReturnRows(sqlmock.NewRows(contactColumns()).
			AddRow(10, 1, "Smith", "John", "john@x.com", newPhone))

	updated, err := repo.UpdateContact(ctx, 10, models.ContactUpdate{Phone: &newPhone})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Phone != newPhone {
		t.Errorf("expected phone %q, got %q", newPhone, updated.Phone)
	}
}

func TestUpdateContact_NotFound(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	ctx := context.Background()
	newPhone := "555-0199"

	mock.ExpectQuery("UPDATE contacts SET phone = ").
		WithArgs(newPhone, int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateContact(ctx, 99, models.ContactUpdate{Phone: &newPhone})
	if !errors.Is(err, ErrNoContactWasFound) {
		t.Fatalf("expected ErrNoContactWasFound, got %v", err)
	}
}

func TestDeleteContact_NotFound(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM contacts").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteContact(ctx, 99)
	if !errors.Is(err, ErrNoContactWasFound) {
		t.Fatalf("expected ErrNoContactWasFound, got %v", err)
	}
}
