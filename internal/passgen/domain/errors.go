package domain

import (
	"fmt"

	apperrors "github.com/allisson/passgen/internal/errors"
)

// ErrorKind discriminates configuration failures.
type ErrorKind string

const (
	KindAmbiguousLengthMode                  ErrorKind = "ambiguous_length_mode"
	KindInvalidLength                        ErrorKind = "invalid_length"
	KindNoCharacterClassSelected             ErrorKind = "no_character_class_selected"
	KindInvalidLetterCase                    ErrorKind = "invalid_letter_case"
	KindInsufficientLengthForRequiredClasses ErrorKind = "insufficient_length_for_required_classes"
	KindInvalidAlphabetEntry                 ErrorKind = "invalid_alphabet_entry"
)

// ConfigurationError is returned when a GenerationConfig describes an infeasible
// task. It matches the sentinel of the same kind under errors.Is and unwraps to
// errors.ErrInvalidInput.
type ConfigurationError struct {
	Kind    ErrorKind
	Message string
}

func newConfigurationError(kind ErrorKind, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

func (e *ConfigurationError) Unwrap() error {
	return apperrors.ErrInvalidInput
}

// Is reports whether target is a ConfigurationError of the same kind.
func (e *ConfigurationError) Is(target error) bool {
	t, ok := target.(*ConfigurationError)
	return ok && t.Kind == e.Kind
}

var (
	// ErrAmbiguousLengthMode indicates both length modes were given, or only half of a range.
	ErrAmbiguousLengthMode = &ConfigurationError{
		Kind:    KindAmbiguousLengthMode,
		Message: "ambiguous length mode",
	}

	// ErrInvalidLength indicates neither a valid fixed length nor a valid range is present.
	ErrInvalidLength = &ConfigurationError{
		Kind:    KindInvalidLength,
		Message: "invalid length",
	}

	// ErrNoCharacterClassSelected indicates letters, digits and symbols are all disabled.
	ErrNoCharacterClassSelected = &ConfigurationError{
		Kind:    KindNoCharacterClassSelected,
		Message: "no character class selected",
	}

	// ErrInvalidLetterCase indicates letters are enabled with an unknown case tag.
	ErrInvalidLetterCase = &ConfigurationError{
		Kind:    KindInvalidLetterCase,
		Message: "invalid letter case",
	}

	// ErrInsufficientLengthForRequiredClasses indicates the minimum length cannot hold
	// one character of every required class.
	ErrInsufficientLengthForRequiredClasses = &ConfigurationError{
		Kind:    KindInsufficientLengthForRequiredClasses,
		Message: "insufficient length for required classes",
	}

	// ErrInvalidAlphabetEntry indicates a custom alphabet entry is not a single printable ASCII character.
	ErrInvalidAlphabetEntry = &ConfigurationError{
		Kind:    KindInvalidAlphabetEntry,
		Message: "invalid alphabet entry",
	}

	// ErrInvalidCount indicates a batch was requested with fewer than one password.
	ErrInvalidCount = apperrors.Wrap(apperrors.ErrInvalidInput, "count must be at least 1")
)
