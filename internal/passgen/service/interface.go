// Package service implements the password generator engine and the helpers that
// post-process its output (hashing for storage, sealing for hand-off).
package service

import (
	"context"

	passgenDomain "github.com/allisson/passgen/internal/passgen/domain"
)

// Generator produces random passwords from a GenerationConfig.
type Generator interface {
	// Generate validates cfg and returns one password satisfying it. Configuration
	// failures are returned as *domain.ConfigurationError before any randomness is used.
	Generate(cfg *passgenDomain.GenerationConfig) (string, error)
}

// HashService hashes generated passwords for storage.
type HashService interface {
	// Hash returns an encoded hash of password.
	Hash(password string) (string, error)

	// Verify reports whether password matches the encoded hash.
	Verify(password, encodedHash string) bool
}

// SealService encrypts generated passwords with a KMS keeper for hand-off.
type SealService interface {
	// Seal encrypts plaintext with the keeper at keyURI.
	Seal(ctx context.Context, keyURI string, plaintext []byte) ([]byte, error)

	// Open decrypts ciphertext produced by Seal with the same keyURI.
	Open(ctx context.Context, keyURI string, ciphertext []byte) ([]byte, error)
}

// randomSource yields uniformly distributed integers in [0, n).
type randomSource interface {
	Intn(n int) (int, error)
}
