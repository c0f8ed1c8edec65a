package notification

import (
	"errors"
	"fmt"
)

var (
	// ErrBadRequest marks shape and data-integrity failures detected before
	// a strategy runs.
	ErrBadRequest = errors.New("bad request")
	// ErrForbidden is returned when the caller lacks the role matching the
	// requested notification type.
	ErrForbidden = errors.New("forbidden")
	// ErrUnsupportedType is returned by the selector for unknown type tags.
	ErrUnsupportedType = errors.New("notification type is not supported")
	// ErrNotFound marks lookups of a missing record id.
	ErrNotFound = errors.New("Notification not found")
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

func forbidden(format string, args ...any) error {
	return &requestError{kind: ErrForbidden, msg: fmt.Sprintf(format, args...)}
}
