// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"

	passgenDomain "github.com/allisson/passgen/internal/passgen/domain"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string

	// PasswordLength is the default fixed length used when no length flag is given.
	PasswordLength int
	// LetterCase is the default letter case ("upper", "lower", "mixed").
	LetterCase string
	// IncludeLetters enables the letter classes by default.
	IncludeLetters bool
	// IncludeDigits enables the digit class by default.
	IncludeDigits bool
	// IncludeSymbols enables the symbol class by default.
	IncludeSymbols bool
	// RequireOneOfEach guarantees one character per enabled class by default.
	RequireOneOfEach bool

	// HashAlgorithm is the default hashing applied to generated passwords ("none", "argon2id", "bcrypt").
	HashAlgorithm string
	// Argon2Policy selects the argon2id cost preset ("interactive", "moderate").
	Argon2Policy string
	// BcryptCost is the bcrypt work factor.
	BcryptCost int

	// KMSKeyURI is the gocloud.dev secrets URI used to seal generated passwords.
	KMSKeyURI string

	// StrengthLoosePattern overrides the pattern for the WEAK level.
	StrengthLoosePattern string
	// StrengthMediumPattern overrides the pattern for the GOOD level.
	StrengthMediumPattern string
	// StrengthTightPattern overrides the pattern for the STRONG level.
	StrengthTightPattern string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "passgen"),

		// Generation defaults
		PasswordLength:   env.GetInt("PASSGEN_LENGTH", passgenDomain.DefaultLength),
		LetterCase:       env.GetString("PASSGEN_LETTER_CASE", string(passgenDomain.LetterCaseMixed)),
		IncludeLetters:   env.GetBool("PASSGEN_INCLUDE_LETTERS", true),
		IncludeDigits:    env.GetBool("PASSGEN_INCLUDE_DIGITS", true),
		IncludeSymbols:   env.GetBool("PASSGEN_INCLUDE_SYMBOLS", true),
		RequireOneOfEach: env.GetBool("PASSGEN_REQUIRE_ONE_OF_EACH", true),

		// Hashing
		HashAlgorithm: env.GetString("PASSGEN_HASH_ALGORITHM", string(passgenDomain.HashNone)),
		Argon2Policy:  env.GetString("PASSGEN_ARGON2_POLICY", "moderate"),
		BcryptCost:    env.GetInt("PASSGEN_BCRYPT_COST", 12),

		// KMS
		KMSKeyURI: env.GetString("PASSGEN_KMS_KEY_URI", ""),

		// Strength patterns, empty means the built-in default
		StrengthLoosePattern:  env.GetString("STRENGTH_LOOSE_PATTERN", ""),
		StrengthMediumPattern: env.GetString("STRENGTH_MEDIUM_PATTERN", ""),
		StrengthTightPattern:  env.GetString("STRENGTH_TIGHT_PATTERN", ""),
	}
}

// GenerationDefaults builds the generation configuration the CLI starts from
// before applying command-line flags.
func (c *Config) GenerationDefaults() *passgenDomain.GenerationConfig {
	cfg := passgenDomain.DefaultGenerationConfig()
	cfg.SetFixedLength(c.PasswordLength)
	cfg.LetterCase = passgenDomain.LetterCase(c.LetterCase)
	cfg.IncludeLetters = c.IncludeLetters
	cfg.IncludeDigits = c.IncludeDigits
	cfg.IncludeSymbols = c.IncludeSymbols
	cfg.RequireOneOfEach = c.RequireOneOfEach
	return cfg
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
