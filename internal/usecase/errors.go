package usecase

import (
	"errors"
	"fmt"
)

// Kind classifies application-level failures so the boundary can map
// them to its own presentation.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindAlreadyExists
	KindWrongPassword
	KindPasswordRequirement
	KindNotDirectory
)

// Error is the typed application error carried by every interactor
// failure that is not a domain validation error.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// KindOf extracts the Kind from err, or KindUnknown.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnknown
}

// ErrNotFound builds a KindNotFound error for the named subject.
func ErrNotFound(subject string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s not found", subject)}
}

// ErrAlreadyExists builds a KindAlreadyExists error for the named subject.
func ErrAlreadyExists(subject string) *Error {
	return &Error{Kind: KindAlreadyExists, Message: fmt.Sprintf("%s already exists", subject)}
}

// ErrWrongPassword signals a login password mismatch.
func ErrWrongPassword() *Error {
	return &Error{Kind: KindWrongPassword, Message: "wrong password"}
}

// ErrPasswordRequirement signals a register-time password policy failure.
func ErrPasswordRequirement() *Error {
	return &Error{
		Kind: KindPasswordRequirement,
		Message: "password must be at least 8 characters long, with only Latin letters, digits or " +
			"!@#$%^&*_, and at least one digit or special character",
	}
}

// ErrNotDirectory signals a directory operation on a non-directory path.
func ErrNotDirectory() *Error {
	return &Error{Kind: KindNotDirectory, Message: "resource path is not a directory"}
}
