package domain

import (
	validation "github.com/jellydator/validation"

	appValidation "github.com/allisson/passgen/internal/validation"
)

// GenerationConfig describes one password generation task. Exactly one length
// mode must be set: FixedLength, or both MinLength and MaxLength. Fields are
// plain read-write state; nothing is checked until Validate runs at generation
// time. A config must not be mutated while a generation using it is running.
type GenerationConfig struct {
	FixedLength *int `json:"fixed_length,omitempty"`
	MinLength   *int `json:"min_length,omitempty"`
	MaxLength   *int `json:"max_length,omitempty"`

	IncludeLetters bool       `json:"include_letters"`
	LetterCase     LetterCase `json:"letter_case"`
	IncludeDigits  bool       `json:"include_digits"`
	IncludeSymbols bool       `json:"include_symbols"`

	// RequireOneOfEach guarantees at least one character of every enabled class.
	RequireOneOfEach bool `json:"require_one_of_each"`

	// Custom alphabets replace the defaults for their class when non-empty.
	// Entries must be single printable ASCII characters; duplicates are kept
	// and weight the draw towards the duplicated character. Every supplied
	// alphabet is validated, including those of disabled classes.
	CustomUpperAlphabet []string `json:"custom_upper_alphabet,omitempty"`
	CustomLowerAlphabet []string `json:"custom_lower_alphabet,omitempty"`
	CustomDigits        []string `json:"custom_digits,omitempty"`
	CustomSymbols       []string `json:"custom_symbols,omitempty"`
}

// DefaultGenerationConfig returns a config for a 16 character password drawing
// from mixed case letters, digits and symbols with every class represented.
func DefaultGenerationConfig() *GenerationConfig {
	cfg := &GenerationConfig{
		IncludeLetters:   true,
		LetterCase:       LetterCaseMixed,
		IncludeDigits:    true,
		IncludeSymbols:   true,
		RequireOneOfEach: true,
	}
	cfg.SetFixedLength(DefaultLength)
	return cfg
}

// SetFixedLength switches the config to fixed length mode.
func (c *GenerationConfig) SetFixedLength(length int) {
	c.FixedLength = &length
	c.MinLength = nil
	c.MaxLength = nil
}

// SetLengthRange switches the config to ranged mode over [minLength, maxLength].
func (c *GenerationConfig) SetLengthRange(minLength, maxLength int) {
	c.FixedLength = nil
	c.MinLength = &minLength
	c.MaxLength = &maxLength
}

// IsRanged reports whether the config uses the min/max length mode.
func (c *GenerationConfig) IsRanged() bool {
	return c.FixedLength == nil && c.MinLength != nil && c.MaxLength != nil
}

// MinimumLength returns the shortest length the config can produce: the fixed
// length, or the range minimum. Returns 0 when no length is set.
func (c *GenerationConfig) MinimumLength() int {
	switch {
	case c.FixedLength != nil:
		return *c.FixedLength
	case c.MinLength != nil:
		return *c.MinLength
	default:
		return 0
	}
}

// RequiredClassCount returns how many characters RequireOneOfEach reserves:
// two for mixed case letters, one for single case letters, one each for digits
// and symbols.
func (c *GenerationConfig) RequiredClassCount() int {
	count := 0
	if c.IncludeLetters {
		if c.LetterCase == LetterCaseMixed {
			count += 2
		} else {
			count++
		}
	}
	if c.IncludeDigits {
		count++
	}
	if c.IncludeSymbols {
		count++
	}
	return count
}

// Validate checks that the config describes a feasible generation task. Checks
// run in a fixed order and the first failure is returned as a *ConfigurationError.
func (c *GenerationConfig) Validate() error {
	fixedSet := c.FixedLength != nil
	minSet := c.MinLength != nil
	maxSet := c.MaxLength != nil

	if minSet != maxSet {
		return newConfigurationError(
			KindAmbiguousLengthMode,
			"ambiguous length mode: min length and max length must be set together",
		)
	}
	if fixedSet && minSet {
		return newConfigurationError(
			KindAmbiguousLengthMode,
			"ambiguous length mode: fixed length and a min/max range cannot both be set",
		)
	}

	usingFixed := fixedSet && *c.FixedLength >= 1
	usingRange := minSet && maxSet && *c.MinLength >= 1 && *c.MaxLength > *c.MinLength
	if !usingFixed && !usingRange {
		return newConfigurationError(
			KindInvalidLength,
			"invalid length: need a fixed length of at least 1 or a range with min >= 1 and max > min",
		)
	}
	if (usingFixed && *c.FixedLength > MaxLength) || (usingRange && *c.MaxLength > MaxLength) {
		return newConfigurationError(
			KindInvalidLength,
			"invalid length: at most %d characters can be generated",
			MaxLength,
		)
	}

	if !c.IncludeLetters && !c.IncludeDigits && !c.IncludeSymbols {
		return newConfigurationError(
			KindNoCharacterClassSelected,
			"no character class selected: enable letters, digits or symbols",
		)
	}

	if c.IncludeLetters {
		if err := c.LetterCase.Validate(); err != nil {
			return newConfigurationError(
				KindInvalidLetterCase,
				"invalid letter case %q: must be upper, lower or mixed",
				string(c.LetterCase),
			)
		}
	}

	if c.RequireOneOfEach {
		required := c.RequiredClassCount()
		if minimum := c.MinimumLength(); minimum < required {
			return newConfigurationError(
				KindInsufficientLengthForRequiredClasses,
				"insufficient length for required classes: minimum length %d is less than %d required classes",
				minimum,
				required,
			)
		}
	}

	err := validation.ValidateStruct(c,
		validation.Field(&c.CustomUpperAlphabet, validation.Each(appValidation.PrintableASCIIChar)),
		validation.Field(&c.CustomLowerAlphabet, validation.Each(appValidation.PrintableASCIIChar)),
		validation.Field(&c.CustomDigits, validation.Each(appValidation.PrintableASCIIChar)),
		validation.Field(&c.CustomSymbols, validation.Each(appValidation.PrintableASCIIChar)),
	)
	if err != nil {
		return newConfigurationError(KindInvalidAlphabetEntry, "invalid alphabet entry: %s", err.Error())
	}

	return nil
}
