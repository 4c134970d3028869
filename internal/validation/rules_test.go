package validation

import (
	"errors"
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/passgen/internal/errors"
)

func TestPrintableASCIIChar(t *testing.T) {
	tests := []struct {
		name      string
		value     interface{}
		shouldErr bool
		errMsg    string
	}{
		{name: "uppercase letter", value: "A"},
		{name: "digit", value: "7"},
		{name: "space", value: " "},
		{name: "tilde", value: "~"},
		{name: "empty string", value: "", shouldErr: true, errMsg: "exactly one character"},
		{name: "two characters", value: "ab", shouldErr: true, errMsg: "exactly one character"},
		{name: "multibyte rune", value: "é", shouldErr: true, errMsg: "exactly one character"},
		{name: "control character", value: "\t", shouldErr: true, errMsg: "printable ASCII"},
		{name: "delete character", value: "\x7f", shouldErr: true, errMsg: "printable ASCII"},
		{name: "not a string", value: 42, shouldErr: true, errMsg: "must be a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(tt.value, PrintableASCIIChar)
			if tt.shouldErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPrintableASCIIChar_Each(t *testing.T) {
	assert.NoError(t, validation.Validate([]string{"a", "b", "!"}, validation.Each(PrintableASCIIChar)))
	assert.NoError(t, validation.Validate([]string(nil), validation.Each(PrintableASCIIChar)))
	assert.Error(t, validation.Validate([]string{"a", "bc"}, validation.Each(PrintableASCIIChar)))
}

func TestIsPrintableASCII(t *testing.T) {
	assert.True(t, IsPrintableASCII(' '))
	assert.True(t, IsPrintableASCII('~'))
	assert.False(t, IsPrintableASCII(0x1f))
	assert.False(t, IsPrintableASCII(0x7f))
}

func TestWrapValidationError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.NoError(t, WrapValidationError(nil))
	})

	t.Run("wraps as invalid input", func(t *testing.T) {
		err := WrapValidationError(errors.New("custom_digits: (0: must be exactly one character.)."))
		assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
		assert.Contains(t, err.Error(), "custom_digits")
	})
}

func TestBase64(t *testing.T) {
	assert.NoError(t, validation.Validate("c2VhbGVk", Base64))
	assert.NoError(t, validation.Validate("", Base64))
	assert.Error(t, validation.Validate("not base64!", Base64))
	assert.Error(t, validation.Validate(42, Base64))
}
