package models

// Contact is an address-book entry owned by exactly one user. Only the
// owning user or an admin may read or mutate it.
type Contact struct {
	// ID is the internal unique identifier of the contact.
	ID int64 `json:"id"`

	// UserID references the owning user.
	UserID int64 `json:"user_id"`

	LastName  string `json:"lastname"`
	FirstName string `json:"firstname"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// ContactUpdate describes a partial update of a contact record. Nil fields
// are left unchanged.
type ContactUpdate struct {
	LastName  *string `json:"lastname"`
	FirstName *string `json:"firstname"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

// TableName returns the name of the database table
// associated with the Contact model.
func (c Contact) TableName() string {
	return "contacts"
}
