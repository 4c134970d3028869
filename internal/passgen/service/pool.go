package service

import (
	"fmt"

	passgenDomain "github.com/allisson/passgen/internal/passgen/domain"
)

// classAlphabet is the active alphabet of one enabled character class.
type classAlphabet struct {
	class passgenDomain.CharacterClass
	chars []byte
}

// characterPool is built fresh for every generation and discarded afterwards.
type characterPool struct {
	// classes lists enabled classes in upper, lower, digit, symbol order.
	classes []classAlphabet
	// combined is the concatenation of every class alphabet, duplicates kept.
	combined []byte
}

// buildPool assembles the pool for a validated config.
func buildPool(cfg *passgenDomain.GenerationConfig) characterPool {
	var pool characterPool

	add := func(class passgenDomain.CharacterClass, custom []string, fallback string) {
		chars := activeAlphabet(custom, fallback)
		pool.classes = append(pool.classes, classAlphabet{class: class, chars: chars})
		pool.combined = append(pool.combined, chars...)
	}

	if cfg.IncludeLetters {
		switch cfg.LetterCase {
		case passgenDomain.LetterCaseUpper:
			add(passgenDomain.ClassUpper, cfg.CustomUpperAlphabet, passgenDomain.DefaultUpperAlphabet)
		case passgenDomain.LetterCaseLower:
			add(passgenDomain.ClassLower, cfg.CustomLowerAlphabet, passgenDomain.DefaultLowerAlphabet)
		case passgenDomain.LetterCaseMixed:
			add(passgenDomain.ClassUpper, cfg.CustomUpperAlphabet, passgenDomain.DefaultUpperAlphabet)
			add(passgenDomain.ClassLower, cfg.CustomLowerAlphabet, passgenDomain.DefaultLowerAlphabet)
		default:
			panic(fmt.Sprintf("passgen: unknown letter case %q reached the generator", cfg.LetterCase))
		}
	}
	if cfg.IncludeDigits {
		add(passgenDomain.ClassDigit, cfg.CustomDigits, passgenDomain.DefaultDigitAlphabet)
	}
	if cfg.IncludeSymbols {
		add(passgenDomain.ClassSymbol, cfg.CustomSymbols, passgenDomain.DefaultSymbolAlphabet)
	}

	return pool
}

// activeAlphabet returns the custom alphabet when it has entries, otherwise the default.
// Entries are validated single ASCII characters.
func activeAlphabet(custom []string, fallback string) []byte {
	if len(custom) == 0 {
		return []byte(fallback)
	}
	chars := make([]byte, 0, len(custom))
	for _, entry := range custom {
		chars = append(chars, entry[0])
	}
	return chars
}
