// Package validation provides custom validation rules for the application.
package validation

import (
	"encoding/base64"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/passgen/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// PrintableASCIIChar validates that a string is exactly one printable ASCII
// character (0x20 through 0x7E).
var PrintableASCIIChar = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_printable_ascii_char_type", "must be a string")
	}
	if len(s) != 1 {
		return validation.NewError(
			"validation_printable_ascii_char_length",
			"must be exactly one character",
		)
	}
	if !IsPrintableASCII(s[0]) {
		return validation.NewError(
			"validation_printable_ascii_char",
			"must be a printable ASCII character",
		)
	}
	return nil
})

// IsPrintableASCII reports whether b lies in the printable ASCII range, space included.
func IsPrintableASCII(b byte) bool {
	return b >= 0x20 && b <= 0x7e
}

// Base64 validates that a string is standard base64, the encoding of sealed passwords.
var Base64 = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_base64_type", "must be a string")
	}
	if s == "" {
		return nil
	}
	if _, err := base64.StdEncoding.DecodeString(s); err != nil {
		return validation.NewError("validation_base64", "must be valid base64-encoded data")
	}
	return nil
})
