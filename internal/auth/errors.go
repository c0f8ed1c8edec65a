package auth

import (
	"errors"
	"fmt"
)

var (
	// ErrBadRequest marks malformed or incomplete client input.
	ErrBadRequest = errors.New("bad request")
	// ErrEmailTaken is returned when the email address is already registered,
	// compared case-insensitively.
	ErrEmailTaken = errors.New("User with this email already exists")
	// ErrInvalidCredentials is deliberately generic so login failures do not
	// leak whether the account exists.
	ErrInvalidCredentials = errors.New("Invalid email or password")
	// ErrUserNotFound is returned for lookups by a missing or malformed id.
	ErrUserNotFound = errors.New("User not found")
)

type requestError struct {
	kind error
	msg  string
}

func (e *requestError) Error() string { return e.msg }
func (e *requestError) Unwrap() error { return e.kind }

func badRequest(format string, args ...any) error {
	return &requestError{kind: ErrBadRequest, msg: fmt.Sprintf(format, args...)}
}
