package usecase

import (
	"context"

	apperrors "github.com/allisson/passgen/internal/errors"
	passgenDomain "github.com/allisson/passgen/internal/passgen/domain"
	passgenService "github.com/allisson/passgen/internal/passgen/service"
	strengthDomain "github.com/allisson/passgen/internal/strength/domain"
	strengthService "github.com/allisson/passgen/internal/strength/service"
)

// passwordUseCase implements PasswordUseCase.
type passwordUseCase struct {
	generator passgenService.Generator
	checker   strengthService.Checker
	policy    *strengthDomain.Policy
}

// NewPasswordUseCase creates a PasswordUseCase. A nil policy selects the default strength policy.
func NewPasswordUseCase(
	generator passgenService.Generator,
	checker strengthService.Checker,
	policy *strengthDomain.Policy,
) PasswordUseCase {
	if policy == nil {
		policy = strengthDomain.DefaultPolicy()
	}
	return &passwordUseCase{
		generator: generator,
		checker:   checker,
		policy:    policy,
	}
}

// Generate produces one password and attaches its strength level.
func (p *passwordUseCase) Generate(
	ctx context.Context,
	cfg *passgenDomain.GenerationConfig,
) (*passgenDomain.GeneratedPassword, error) {
	if cfg == nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "generation config is required")
	}

	value, err := p.generator.Generate(cfg)
	if err != nil {
		return nil, err
	}

	level, err := p.Classify(ctx, value)
	if err != nil {
		return nil, err
	}

	return &passgenDomain.GeneratedPassword{
		Value:    value,
		Length:   len(value),
		Strength: level,
	}, nil
}

// GenerateBatch produces count passwords one after another.
func (p *passwordUseCase) GenerateBatch(
	ctx context.Context,
	cfg *passgenDomain.GenerationConfig,
	count int,
) ([]*passgenDomain.GeneratedPassword, error) {
	if count < 1 {
		return nil, passgenDomain.ErrInvalidCount
	}

	passwords := make([]*passgenDomain.GeneratedPassword, 0, count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		password, err := p.Generate(ctx, cfg)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, password)
	}
	return passwords, nil
}

// Classify delegates to the strength checker with the configured policy.
func (p *passwordUseCase) Classify(ctx context.Context, password string) (strengthDomain.Level, error) {
	return p.checker.Check(password, p.policy)
}
