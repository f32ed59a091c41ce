package models

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the bearer token returned by a successful login.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
}

// UsersResponse wraps the admin-only user listing.
type UsersResponse struct {
	Users []User `json:"users"`
}

// ContactsResponse wraps a per-user contact listing.
type ContactsResponse struct {
	Contacts []Contact `json:"contacts"`
}

// MessageResponse is a generic success message body, e.g. after a delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}
