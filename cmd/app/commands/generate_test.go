package commands

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/passgen/internal/errors"
	passgenDomain "github.com/allisson/passgen/internal/passgen/domain"
	serviceMocks "github.com/allisson/passgen/internal/passgen/service/mocks"
	usecaseMocks "github.com/allisson/passgen/internal/passgen/usecase/mocks"
	strengthDomain "github.com/allisson/passgen/internal/strength/domain"
)

func intPtr(v int) *int {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}

func TestApplyGenerationFlags(t *testing.T) {
	t.Run("no-flags-keeps-defaults", func(t *testing.T) {
		cfg := passgenDomain.DefaultGenerationConfig()

		require.NoError(t, ApplyGenerationFlags(cfg, GenerationFlags{}))

		assert.Equal(t, passgenDomain.DefaultGenerationConfig(), cfg)
	})

	t.Run("fixed-length", func(t *testing.T) {
		cfg := passgenDomain.DefaultGenerationConfig()

		require.NoError(t, ApplyGenerationFlags(cfg, GenerationFlags{Length: intPtr(32)}))

		require.NotNil(t, cfg.FixedLength)
		assert.Equal(t, 32, *cfg.FixedLength)
		assert.False(t, cfg.IsRanged())
	})

	t.Run("range-replaces-default-fixed-length", func(t *testing.T) {
		cfg := passgenDomain.DefaultGenerationConfig()

		require.NoError(t, ApplyGenerationFlags(cfg, GenerationFlags{MinLength: intPtr(8), MaxLength: intPtr(12)}))

		assert.True(t, cfg.IsRanged())
		assert.Equal(t, 8, *cfg.MinLength)
		assert.Equal(t, 12, *cfg.MaxLength)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("length-and-range-is-ambiguous", func(t *testing.T) {
		cfg := passgenDomain.DefaultGenerationConfig()

		require.NoError(t, ApplyGenerationFlags(cfg, GenerationFlags{
			Length:    intPtr(10),
			MinLength: intPtr(8),
			MaxLength: intPtr(12),
		}))

		assert.ErrorIs(t, cfg.Validate(), passgenDomain.ErrAmbiguousLengthMode)
	})

	t.Run("min-without-max-is-ambiguous", func(t *testing.T) {
		cfg := passgenDomain.DefaultGenerationConfig()

		require.NoError(t, ApplyGenerationFlags(cfg, GenerationFlags{MinLength: intPtr(8)}))

		assert.ErrorIs(t, cfg.Validate(), passgenDomain.ErrAmbiguousLengthMode)
	})

	t.Run("classes-and-alphabets", func(t *testing.T) {
		cfg := passgenDomain.DefaultGenerationConfig()

		require.NoError(t, ApplyGenerationFlags(cfg, GenerationFlags{
			Letters:          boolPtr(true),
			LetterCase:       "lower",
			Digits:           boolPtr(true),
			Symbols:          boolPtr(false),
			RequireOneOfEach: boolPtr(false),
			LowerAlphabet:    "abc",
			DigitAlphabet:    "7",
		}))

		assert.Equal(t, passgenDomain.LetterCaseLower, cfg.LetterCase)
		assert.False(t, cfg.IncludeSymbols)
		assert.False(t, cfg.RequireOneOfEach)
		assert.Equal(t, []string{"a", "b", "c"}, cfg.CustomLowerAlphabet)
		assert.Equal(t, []string{"7"}, cfg.CustomDigits)
		assert.Nil(t, cfg.CustomUpperAlphabet)
	})

	t.Run("invalid-letter-case", func(t *testing.T) {
		err := ApplyGenerationFlags(passgenDomain.DefaultGenerationConfig(), GenerationFlags{LetterCase: "title"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid letter case")
	})

	t.Run("non-ascii-alphabet-entry-is-rejected-by-validation", func(t *testing.T) {
		cfg := passgenDomain.DefaultGenerationConfig()

		require.NoError(t, ApplyGenerationFlags(cfg, GenerationFlags{SymbolAlphabet: "!€"}))

		assert.Equal(t, []string{"!", "€"}, cfg.CustomSymbols)
		assert.ErrorIs(t, cfg.Validate(), passgenDomain.ErrInvalidAlphabetEntry)
	})
}

func TestRunGenerate(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()
	cfg := passgenDomain.DefaultGenerationConfig()
	passwords := []*passgenDomain.GeneratedPassword{
		{Value: "Ab3!ab12", Length: 8, Strength: strengthDomain.Strong},
		{Value: "Xy9?xy98", Length: 8, Strength: strengthDomain.Strong},
	}

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := &usecaseMocks.MockPasswordUseCase{}
		mockUseCase.On("GenerateBatch", ctx, cfg, 2).Return(passwords, nil).Once()

		var out bytes.Buffer
		err := RunGenerate(ctx, mockUseCase, nil, nil, logger, IOTuple{Writer: &out}, GenerateOptions{
			Config:        cfg,
			Count:         2,
			HashAlgorithm: passgenDomain.HashNone,
			Format:        "text",
		})

		require.NoError(t, err)
		assert.Equal(t, "Ab3!ab12\nXy9?xy98\n", out.String())
		mockUseCase.AssertExpectations(t)
	})

	t.Run("json-output-with-hash-and-seal", func(t *testing.T) {
		mockUseCase := &usecaseMocks.MockPasswordUseCase{}
		mockHash := &serviceMocks.MockHashService{}
		mockSeal := &serviceMocks.MockSealService{}
		keyURI := "base64key://smGbjm71Nxd1Ig5FS0wj9SlbzAIrnolCz9bQQ6uAhl4="

		mockUseCase.On("GenerateBatch", ctx, cfg, 1).Return(passwords[:1], nil).Once()
		mockHash.On("Hash", "Ab3!ab12").Return("$2a$04$hash", nil).Once()
		mockSeal.On("Seal", ctx, keyURI, []byte("Ab3!ab12")).Return([]byte("sealed"), nil).Once()

		var out bytes.Buffer
		err := RunGenerate(ctx, mockUseCase, mockHash, mockSeal, logger, IOTuple{Writer: &out}, GenerateOptions{
			Config:        cfg,
			Count:         1,
			HashAlgorithm: passgenDomain.HashBcrypt,
			KMSKeyURI:     keyURI,
			Format:        "json",
		})
		require.NoError(t, err)

		var results []map[string]interface{}
		require.NoError(t, json.Unmarshal(out.Bytes(), &results))
		require.Len(t, results, 1)
		assert.Equal(t, "Ab3!ab12", results[0]["password"])
		assert.Equal(t, float64(8), results[0]["length"])
		assert.Equal(t, "STRONG", results[0]["strength"])
		assert.Equal(t, "$2a$04$hash", results[0]["hash"])
		assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("sealed")), results[0]["sealed"])
		mockHash.AssertExpectations(t)
		mockSeal.AssertExpectations(t)
	})

	t.Run("text-output-with-hash-columns", func(t *testing.T) {
		mockUseCase := &usecaseMocks.MockPasswordUseCase{}
		mockHash := &serviceMocks.MockHashService{}

		mockUseCase.On("GenerateBatch", ctx, cfg, 1).Return(passwords[:1], nil).Once()
		mockHash.On("Hash", "Ab3!ab12").Return("$argon2id$hash", nil).Once()

		var out bytes.Buffer
		err := RunGenerate(ctx, mockUseCase, mockHash, nil, logger, IOTuple{Writer: &out}, GenerateOptions{
			Config:        cfg,
			Count:         1,
			HashAlgorithm: passgenDomain.HashArgon2id,
			Format:        "text",
		})

		require.NoError(t, err)
		assert.Equal(t, "Ab3!ab12\t$argon2id$hash\n", out.String())
	})

	t.Run("log-never-contains-password", func(t *testing.T) {
		mockUseCase := &usecaseMocks.MockPasswordUseCase{}
		mockUseCase.On("GenerateBatch", ctx, cfg, 2).Return(passwords, nil).Once()

		var logs bytes.Buffer
		jsonLogger := slog.New(slog.NewJSONHandler(&logs, nil))

		err := RunGenerate(ctx, mockUseCase, nil, nil, jsonLogger, IOTuple{Writer: &bytes.Buffer{}}, GenerateOptions{
			Config:        cfg,
			Count:         2,
			HashAlgorithm: passgenDomain.HashNone,
			Format:        "text",
		})

		require.NoError(t, err)
		assert.Contains(t, logs.String(), `"batch_id"`)
		assert.NotContains(t, logs.String(), "Ab3!ab12")
		assert.Equal(t, 2, strings.Count(logs.String(), "\n"))
	})

	t.Run("invalid-options", func(t *testing.T) {
		tests := []struct {
			name  string
			opts  GenerateOptions
			field string
		}{
			{
				name:  "format",
				opts:  GenerateOptions{Config: cfg, Count: 1, HashAlgorithm: passgenDomain.HashNone, Format: "yaml"},
				field: "Format",
			},
			{
				name:  "count",
				opts:  GenerateOptions{Config: cfg, Count: 0, HashAlgorithm: passgenDomain.HashNone, Format: "text"},
				field: "Count",
			},
			{
				name:  "hash-algorithm",
				opts:  GenerateOptions{Config: cfg, Count: 1, HashAlgorithm: "md5", Format: "text"},
				field: "HashAlgorithm",
			},
			{
				name:  "config",
				opts:  GenerateOptions{Count: 1, HashAlgorithm: passgenDomain.HashNone, Format: "text"},
				field: "config",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				mockUseCase := &usecaseMocks.MockPasswordUseCase{}

				err := RunGenerate(ctx, mockUseCase, nil, nil, logger, IOTuple{Writer: &bytes.Buffer{}}, tt.opts)

				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
				assert.Contains(t, err.Error(), tt.field)
				mockUseCase.AssertNotCalled(t, "GenerateBatch", mock.Anything, mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("missing-hash-service", func(t *testing.T) {
		err := RunGenerate(ctx, &usecaseMocks.MockPasswordUseCase{}, nil, nil, logger, IOTuple{Writer: &bytes.Buffer{}},
			GenerateOptions{Config: cfg, Count: 1, HashAlgorithm: passgenDomain.HashBcrypt, Format: "text"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "hash service is required")
	})

	t.Run("use-case-error", func(t *testing.T) {
		mockUseCase := &usecaseMocks.MockPasswordUseCase{}
		mockUseCase.On("GenerateBatch", ctx, cfg, 1).Return(nil, passgenDomain.ErrNoCharacterClassSelected).Once()

		var out bytes.Buffer
		err := RunGenerate(ctx, mockUseCase, nil, nil, logger, IOTuple{Writer: &out}, GenerateOptions{
			Config:        cfg,
			Count:         1,
			HashAlgorithm: passgenDomain.HashNone,
			Format:        "text",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, passgenDomain.ErrNoCharacterClassSelected)
		assert.Empty(t, out.String())
	})

	t.Run("seal-error", func(t *testing.T) {
		mockUseCase := &usecaseMocks.MockPasswordUseCase{}
		mockSeal := &serviceMocks.MockSealService{}
		mockUseCase.On("GenerateBatch", ctx, cfg, 1).Return(passwords[:1], nil).Once()
		mockSeal.On("Seal", ctx, "gcpkms://bad", []byte("Ab3!ab12")).Return(nil, errors.New("permission denied")).Once()

		var out bytes.Buffer
		err := RunGenerate(ctx, mockUseCase, nil, mockSeal, logger, IOTuple{Writer: &out}, GenerateOptions{
			Config:        cfg,
			Count:         1,
			HashAlgorithm: passgenDomain.HashNone,
			KMSKeyURI:     "gcpkms://bad",
			Format:        "text",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to seal password")
		assert.Empty(t, out.String())
	})
}
