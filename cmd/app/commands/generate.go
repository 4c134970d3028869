package commands

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	passgenDomain "github.com/allisson/passgen/internal/passgen/domain"
	passgenService "github.com/allisson/passgen/internal/passgen/service"
	passgenUseCase "github.com/allisson/passgen/internal/passgen/usecase"
	appValidation "github.com/allisson/passgen/internal/validation"
)

// GenerationFlags holds the generation flags given on the command line.
// Nil fields were not set and keep the configured default.
type GenerationFlags struct {
	Length           *int
	MinLength        *int
	MaxLength        *int
	Letters          *bool
	LetterCase       string
	Digits           *bool
	Symbols          *bool
	RequireOneOfEach *bool
	UpperAlphabet    string
	LowerAlphabet    string
	DigitAlphabet    string
	SymbolAlphabet   string
}

// ApplyGenerationFlags overlays flags on cfg. A min or max length switches cfg
// to ranged mode; combining them with --length is left for validation to reject.
func ApplyGenerationFlags(cfg *passgenDomain.GenerationConfig, flags GenerationFlags) error {
	if flags.MinLength != nil || flags.MaxLength != nil {
		cfg.FixedLength = nil
		cfg.MinLength = flags.MinLength
		cfg.MaxLength = flags.MaxLength
		if flags.Length != nil {
			cfg.FixedLength = flags.Length
		}
	} else if flags.Length != nil {
		cfg.SetFixedLength(*flags.Length)
	}

	if flags.Letters != nil {
		cfg.IncludeLetters = *flags.Letters
	}
	if flags.LetterCase != "" {
		letterCase, err := parseLetterCase(flags.LetterCase)
		if err != nil {
			return err
		}
		cfg.LetterCase = letterCase
	}
	if flags.Digits != nil {
		cfg.IncludeDigits = *flags.Digits
	}
	if flags.Symbols != nil {
		cfg.IncludeSymbols = *flags.Symbols
	}
	if flags.RequireOneOfEach != nil {
		cfg.RequireOneOfEach = *flags.RequireOneOfEach
	}

	cfg.CustomUpperAlphabet = splitAlphabet(flags.UpperAlphabet)
	cfg.CustomLowerAlphabet = splitAlphabet(flags.LowerAlphabet)
	cfg.CustomDigits = splitAlphabet(flags.DigitAlphabet)
	cfg.CustomSymbols = splitAlphabet(flags.SymbolAlphabet)

	return nil
}

// GenerateOptions holds the options of a generate run.
type GenerateOptions struct {
	Config        *passgenDomain.GenerationConfig
	Count         int
	HashAlgorithm passgenDomain.HashAlgorithm
	KMSKeyURI     string
	Format        string
}

// Validate checks the run options. The generation config itself is validated
// by the generator so its ConfigurationError reaches the caller unchanged.
func (o *GenerateOptions) Validate() error {
	if o.Config == nil {
		return appValidation.WrapValidationError(validation.NewError("validation_required", "config: cannot be blank."))
	}
	err := validation.ValidateStruct(o,
		validation.Field(&o.Count, validation.Required, validation.Min(1)),
		validation.Field(&o.HashAlgorithm, validation.Required),
		validation.Field(&o.Format, validation.Required, validation.In("text", "json")),
	)
	return appValidation.WrapValidationError(err)
}

// generateResult is one output row of the generate command.
type generateResult struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
	Strength string `json:"strength"`
	Hash     string `json:"hash,omitempty"`
	Sealed   string `json:"sealed,omitempty"`
}

// RunGenerate generates opts.Count passwords and writes them in text or JSON format.
// When hashService is non-nil each password is also hashed, and when opts.KMSKeyURI
// is set each password is sealed with the KMS keeper and base64 encoded.
//
// Text output is one line per password, with the hash and sealed value appended
// as tab separated columns when requested.
func RunGenerate(
	ctx context.Context,
	passwordUseCase passgenUseCase.PasswordUseCase,
	hashService passgenService.HashService,
	sealService passgenService.SealService,
	logger *slog.Logger,
	io IOTuple,
	opts GenerateOptions,
) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid generate options: %w", err)
	}
	if opts.HashAlgorithm != passgenDomain.HashNone && hashService == nil {
		return fmt.Errorf("hash service is required for hash algorithm %s", opts.HashAlgorithm)
	}

	batchID, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate batch id: %w", err)
	}

	logger.Info("generating passwords",
		slog.String("batch_id", batchID.String()),
		slog.Int("count", opts.Count),
		slog.Bool("ranged", opts.Config != nil && opts.Config.IsRanged()),
		slog.String("hash_algorithm", opts.HashAlgorithm.String()),
		slog.Bool("sealed", opts.KMSKeyURI != ""),
	)

	passwords, err := passwordUseCase.GenerateBatch(ctx, opts.Config, opts.Count)
	if err != nil {
		return fmt.Errorf("failed to generate passwords: %w", err)
	}

	results := make([]generateResult, 0, len(passwords))
	for _, password := range passwords {
		result := generateResult{
			Password: password.Value,
			Length:   password.Length,
			Strength: password.Strength.String(),
		}

		if opts.HashAlgorithm != passgenDomain.HashNone {
			result.Hash, err = hashService.Hash(password.Value)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
		}

		if opts.KMSKeyURI != "" {
			sealed, err := sealService.Seal(ctx, opts.KMSKeyURI, []byte(password.Value))
			if err != nil {
				return fmt.Errorf("failed to seal password: %w", err)
			}
			result.Sealed = base64.StdEncoding.EncodeToString(sealed)
		}

		results = append(results, result)
	}

	if opts.Format == "json" {
		if err := writeJSON(io.Writer, results); err != nil {
			return err
		}
	} else {
		outputGenerateText(results, io)
	}

	logger.Info("passwords generated successfully",
		slog.String("batch_id", batchID.String()),
		slog.Int("count", len(results)),
	)

	return nil
}

// outputGenerateText outputs one password per line.
func outputGenerateText(results []generateResult, io IOTuple) {
	for _, result := range results {
		columns := []string{result.Password}
		if result.Hash != "" {
			columns = append(columns, result.Hash)
		}
		if result.Sealed != "" {
			columns = append(columns, result.Sealed)
		}
		_, _ = fmt.Fprintln(io.Writer, strings.Join(columns, "\t"))
	}
}
