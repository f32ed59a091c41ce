// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-contact-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (name, email, role)
    VALUES ($1, $2, $3)
    RETURNING id, name, email, role, created_at;`

	createCredential = `INSERT INTO credentials (user_id, password_hash)
    VALUES ($1, $2);`

	findUserByEmail = `SELECT id, name, email, role, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, name, email, role, created_at
    FROM users
    WHERE id = $1;`

	getAllUsers = `SELECT id, name, email, role, created_at
    FROM users
    ORDER BY id;`

	deleteUser = `DELETE FROM users
    WHERE id = $1;`

	findCredentialByUserID = `SELECT user_id, password_hash, failed_attempts
    FROM credentials
    WHERE user_id = $1;`

	incrementFailedAttempts = `UPDATE credentials
    SET failed_attempts = failed_attempts + 1
    WHERE user_id = $1
    RETURNING failed_attempts;`

	resetFailedAttempts = `UPDATE credentials
    SET failed_attempts = 0
    WHERE user_id = $1;`

	createContact = `INSERT INTO contacts (user_id, lastname, firstname, email, phone)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, user_id, lastname, firstname, email, phone;`

	findContactByID = `SELECT id, user_id, lastname, firstname, email, phone
    FROM contacts
    WHERE id = $1;`

	findContactsByUserID = `SELECT id, user_id, lastname, firstname, email, phone
    FROM contacts
    WHERE user_id = $1
    ORDER BY id;`

	deleteContact = `DELETE FROM contacts
    WHERE id = $1;`
)

// psql is the squirrel statement builder configured for PostgreSQL
// positional placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUserUpdateQuery builds a partial UPDATE for the users table from the
// non-nil fields of upd. Returns ok == false when there is nothing to update.
func buildUserUpdateQuery(userID int64, upd models.UserUpdate) (query string, args []any, ok bool, err error) {
	builder := psql.Update("users")

	hasFields := false
	if upd.Name != nil {
		builder = builder.Set("name", *upd.Name)
		hasFields = true
	}
	if upd.Email != nil {
		builder = builder.Set("email", *upd.Email)
		hasFields = true
	}
	if upd.Role != nil {
		builder = builder.Set("role", *upd.Role)
		hasFields = true
	}

	if !hasFields {
		return "", nil, false, nil
	}

	query, args, err = builder.
		Where(sq.Eq{"id": userID}).
		Suffix("RETURNING id, name, email, role, created_at").
		ToSql()

	return query, args, true, err
}

// buildContactUpdateQuery builds a partial UPDATE for the contacts table from
// the non-nil fields of upd. Returns ok == false when there is nothing to
// update.
func buildContactUpdateQuery(contactID int64, upd models.ContactUpdate) (query string, args []any, ok bool, err error) {
	builder := psql.Update("contacts")

	hasFields := false
	if upd.LastName != nil {
		builder = builder.Set("lastname", *upd.LastName)
		hasFields = true
	}
	if upd.FirstName != nil {
		builder = builder.Set("firstname", *upd.FirstName)
		hasFields = true
	}
	if upd.Email != nil {
		builder = builder.Set("email", *upd.Email)
		hasFields = true
	}
	if upd.Phone != nil {
		builder = builder.Set("phone", *upd.Phone)
		hasFields = true
	}

	if !hasFields {
		return "", nil, false, nil
	}

	query, args, err = builder.
		Where(sq.Eq{"id": contactID}).
		Suffix("RETURNING id, user_id, lastname, firstname, email, phone").
		ToSql()

	return query, args, true, err
}
