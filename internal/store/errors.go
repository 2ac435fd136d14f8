package store

import "errors"

// Error kinds consumed at the handler boundary and mapped to HTTP status
// codes there.
var (
	// ErrNotFound is returned when no book exists with the given id.
	ErrNotFound = errors.New("book not found")

	// ErrForbidden is returned when the caller is not the book's owner.
	ErrForbidden = errors.New("not the owner of this book")

	// ErrUserExists is returned when registering an already-taken username.
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials is returned when a username or password is
	// empty or missing.
	ErrInvalidCredentials = errors.New("missing username or password")
)

// MissingFieldError reports a required book field absent from the payload.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing required field: " + e.Field
}
