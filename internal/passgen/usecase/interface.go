// Package usecase orchestrates password generation and strength classification.
package usecase

import (
	"context"

	passgenDomain "github.com/allisson/passgen/internal/passgen/domain"
	strengthDomain "github.com/allisson/passgen/internal/strength/domain"
)

// PasswordUseCase defines the operations exposed to the CLI.
type PasswordUseCase interface {
	// Generate produces one password for cfg and classifies its strength.
	Generate(ctx context.Context, cfg *passgenDomain.GenerationConfig) (*passgenDomain.GeneratedPassword, error)

	// GenerateBatch produces count passwords sequentially and stops at the first failure.
	GenerateBatch(
		ctx context.Context,
		cfg *passgenDomain.GenerationConfig,
		count int,
	) ([]*passgenDomain.GeneratedPassword, error)

	// Classify returns the strength level of password under the configured policy.
	Classify(ctx context.Context, password string) (strengthDomain.Level, error)
}
