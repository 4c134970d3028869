// Package mocks provides mock implementations of the passgen services for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	passgenDomain "github.com/allisson/passgen/internal/passgen/domain"
)

// MockGenerator is a mock implementation of service.Generator.
type MockGenerator struct {
	mock.Mock
}

// Generate mocks the Generate method of Generator.
func (m *MockGenerator) Generate(cfg *passgenDomain.GenerationConfig) (string, error) {
	args := m.Called(cfg)
	return args.String(0), args.Error(1)
}

// MockHashService is a mock implementation of service.HashService.
type MockHashService struct {
	mock.Mock
}

// Hash mocks the Hash method of HashService.
func (m *MockHashService) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

// Verify mocks the Verify method of HashService.
func (m *MockHashService) Verify(password, encodedHash string) bool {
	args := m.Called(password, encodedHash)
	return args.Bool(0)
}

// MockSealService is a mock implementation of service.SealService.
type MockSealService struct {
	mock.Mock
}

// Seal mocks the Seal method of SealService.
func (m *MockSealService) Seal(ctx context.Context, keyURI string, plaintext []byte) ([]byte, error) {
	args := m.Called(ctx, keyURI, plaintext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Open mocks the Open method of SealService.
func (m *MockSealService) Open(ctx context.Context, keyURI string, ciphertext []byte) ([]byte, error) {
	args := m.Called(ctx, keyURI, ciphertext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
