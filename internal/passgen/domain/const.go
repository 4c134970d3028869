// Package domain defines the password generation configuration, its validation rules
// and the built-in alphabets. Validation is pure: it never consumes randomness.
package domain

import (
	"errors"
	"strings"
)

// LetterCase selects which letter alphabets take part in generation.
type LetterCase string

const (
	LetterCaseUpper LetterCase = "upper"
	LetterCaseLower LetterCase = "lower"
	LetterCaseMixed LetterCase = "mixed"
)

// Validate checks if the letter case is one of the known tags.
func (c LetterCase) Validate() error {
	switch c {
	case LetterCaseUpper, LetterCaseLower, LetterCaseMixed:
		return nil
	default:
		return errors.New("invalid letter case")
	}
}

// String returns the string representation of the letter case.
func (c LetterCase) String() string {
	return string(c)
}

// CharacterClass identifies one class a generated password can draw from.
// Upper and lower letters are separate classes.
type CharacterClass string

const (
	ClassUpper  CharacterClass = "upper"
	ClassLower  CharacterClass = "lower"
	ClassDigit  CharacterClass = "digit"
	ClassSymbol CharacterClass = "symbol"
)

// Default alphabets.
const (
	DefaultUpperAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DefaultLowerAlphabet = "abcdefghijklmnopqrstuvwxyz"
	DefaultDigitAlphabet = "0123456789"
)

// DefaultSymbolAlphabet holds every printable ASCII character that is not a
// letter or digit, space included: 33 characters in code point order.
var DefaultSymbolAlphabet = printableSymbols()

func printableSymbols() string {
	var sb strings.Builder
	for c := byte(0x20); c <= 0x7e; c++ {
		if isAlphanumeric(c) {
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

func isAlphanumeric(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}

// DefaultLength is the fixed length used by DefaultGenerationConfig.
const DefaultLength = 16

// MaxLength is the longest password a config may request, in either length mode.
const MaxLength = 4096
