package usecase

import (
	"context"
	"time"

	"github.com/allisson/passgen/internal/metrics"
	passgenDomain "github.com/allisson/passgen/internal/passgen/domain"
	strengthDomain "github.com/allisson/passgen/internal/strength/domain"
)

// passwordUseCaseWithMetrics decorates PasswordUseCase with metrics instrumentation.
type passwordUseCaseWithMetrics struct {
	next    PasswordUseCase
	metrics metrics.BusinessMetrics
}

// NewPasswordUseCaseWithMetrics wraps a PasswordUseCase with metrics recording.
func NewPasswordUseCaseWithMetrics(useCase PasswordUseCase, m metrics.BusinessMetrics) PasswordUseCase {
	return &passwordUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Generate records metrics for single password generation.
func (p *passwordUseCaseWithMetrics) Generate(
	ctx context.Context,
	cfg *passgenDomain.GenerationConfig,
) (*passgenDomain.GeneratedPassword, error) {
	start := time.Now()
	password, err := p.next.Generate(ctx, cfg)
	p.record(ctx, "password_generate", start, err)
	if err == nil {
		p.metrics.RecordStrength(ctx, "passgen", password.Strength.String())
	}
	return password, err
}

// GenerateBatch records metrics for batch generation.
func (p *passwordUseCaseWithMetrics) GenerateBatch(
	ctx context.Context,
	cfg *passgenDomain.GenerationConfig,
	count int,
) ([]*passgenDomain.GeneratedPassword, error) {
	start := time.Now()
	passwords, err := p.next.GenerateBatch(ctx, cfg, count)
	p.record(ctx, "password_generate_batch", start, err)
	for _, password := range passwords {
		p.metrics.RecordStrength(ctx, "passgen", password.Strength.String())
	}
	return passwords, err
}

// Classify records metrics for strength classification.
func (p *passwordUseCaseWithMetrics) Classify(ctx context.Context, password string) (strengthDomain.Level, error) {
	start := time.Now()
	level, err := p.next.Classify(ctx, password)
	p.record(ctx, "password_classify", start, err)
	return level, err
}

func (p *passwordUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "passgen", operation, status)
	p.metrics.RecordDuration(ctx, "passgen", operation, time.Since(start), status)
}
