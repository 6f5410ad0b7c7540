package domain

import "errors"

var (
	// ErrInvalidInput covers malformed or missing request data.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidCredentials is returned for both unknown emails and wrong
	// passwords so responses cannot be used for account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken covers malformed, expired, tampered and already
	// consumed tokens. The distinction is logged, never returned.
	ErrInvalidToken = errors.New("invalid token")
	// ErrEmailTaken is returned when a normalized email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUserNotFound is returned for a well-formed id with no matching user.
	ErrUserNotFound = errors.New("user not found")
	// ErrForbidden is returned when an authenticated caller lacks the
	// required role.
	ErrForbidden = errors.New("access forbidden")
)
