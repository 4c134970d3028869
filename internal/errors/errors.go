// Package errors provides the shared error sentinels used across passgen packages.
// Domain packages wrap these so callers can branch on intent (bad input versus
// an internal failure such as an exhausted entropy source) without knowing the
// concrete error type.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates the caller supplied a configuration or value that can never succeed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal indicates a failure outside the caller's control, e.g. the secure random source failed.
	ErrInternal = errors.New("internal error")
)

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps err with message while preserving the error chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
