package domain

import (
	"errors"
	"fmt"
)

// ValidationError is the single validation-failure kind shared by Path,
// Resource and User construction. It carries a human-readable reason and
// nothing else; callers map it to their own presentation.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// NewValidation builds a validation failure with the given reason.
func NewValidation(reason string) error {
	return &ValidationError{Reason: reason}
}

// IsValidation reports whether err is a domain validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrNotDirectoryJoin is returned by Path.Join when the receiver is not
// a directory path.
var ErrNotDirectoryJoin = errors.New("join requires a directory path")

// ErrNotNested is returned by Path.RelativeTo when the receiver is not
// nested under the given base.
var ErrNotNested = errors.New("path is not nested under base")
