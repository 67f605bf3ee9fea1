package models

import "github.com/pkg/errors"

// Error classes returned by lib handlers. Controllers map them to HTTP statuses,
// callers wrap them with errors.Wrap to keep a readable message.
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("authentication failed")
	ErrForbidden    = errors.New("operation not allowed")
	ErrNotFound     = errors.New("record not found")
	ErrPrecondition = errors.New("precondition failed")
)

func NewValidationError(msg string) error {
	return errors.Wrap(ErrValidation, msg)
}

func NewNotFoundError(msg string) error {
	return errors.Wrap(ErrNotFound, msg)
}

func NewPreconditionError(msg string) error {
	return errors.Wrap(ErrPrecondition, msg)
}

func NewUnauthorizedError(msg string) error {
	return errors.Wrap(ErrUnauthorized, msg)
}

func NewForbiddenError(msg string) error {
	return errors.Wrap(ErrForbidden, msg)
}

// HumanMessage strips the class suffix added by errors.Wrap.
func HumanMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, class := range []error{ErrValidation, ErrUnauthorized, ErrForbidden, ErrNotFound, ErrPrecondition} {
		suffix := ": " + class.Error()
		if len(msg) > len(suffix) && msg[len(msg)-len(suffix):] == suffix {
			return msg[:len(msg)-len(suffix)]
		}
	}
	return msg
}
