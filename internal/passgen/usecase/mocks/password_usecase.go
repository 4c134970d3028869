// Package mocks provides mock implementations of the passgen use cases for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	passgenDomain "github.com/allisson/passgen/internal/passgen/domain"
	strengthDomain "github.com/allisson/passgen/internal/strength/domain"
)

// MockPasswordUseCase is a mock implementation of PasswordUseCase for testing.
type MockPasswordUseCase struct {
	mock.Mock
}

// Generate mocks the Generate method of PasswordUseCase.
func (m *MockPasswordUseCase) Generate(
	ctx context.Context,
	cfg *passgenDomain.GenerationConfig,
) (*passgenDomain.GeneratedPassword, error) {
	args := m.Called(ctx, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*passgenDomain.GeneratedPassword), args.Error(1)
}

// GenerateBatch mocks the GenerateBatch method of PasswordUseCase.
func (m *MockPasswordUseCase) GenerateBatch(
	ctx context.Context,
	cfg *passgenDomain.GenerationConfig,
	count int,
) ([]*passgenDomain.GeneratedPassword, error) {
	args := m.Called(ctx, cfg, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*passgenDomain.GeneratedPassword), args.Error(1)
}

// Classify mocks the Classify method of PasswordUseCase.
func (m *MockPasswordUseCase) Classify(ctx context.Context, password string) (strengthDomain.Level, error) {
	args := m.Called(ctx, password)
	return args.Get(0).(strengthDomain.Level), args.Error(1)
}
