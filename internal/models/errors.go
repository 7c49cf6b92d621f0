package models

import "errors"

// Domain failures surfaced by the service layer. Transports map them to
// status codes; anything else is treated as an internal error.
var (
	ErrInvalidInput = errors.New("invalid input")

	ErrDuplicateEmail = errors.New("a user with this email already exists")

	// ErrInvalidCredentials is deliberately generic: unknown email, wrong
	// password and unverified email all produce it.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrUnauthorized = errors.New("authentication required")

	ErrForbidden = errors.New("access to the requested user is forbidden")

	ErrNotFound = errors.New("user not found")
)
