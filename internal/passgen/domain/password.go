package domain

import (
	apperrors "github.com/allisson/passgen/internal/errors"
	strengthDomain "github.com/allisson/passgen/internal/strength/domain"
)

// GeneratedPassword is one generation result together with its strength classification.
type GeneratedPassword struct {
	Value    string               `json:"password"`
	Length   int                  `json:"length"`
	Strength strengthDomain.Level `json:"strength"`
}

// HashAlgorithm selects how a generated password is hashed for storage.
type HashAlgorithm string

const (
	HashNone     HashAlgorithm = "none"
	HashArgon2id HashAlgorithm = "argon2id"
	HashBcrypt   HashAlgorithm = "bcrypt"
)

// ErrInvalidHashAlgorithm indicates an unknown hash algorithm or hash parameter.
var ErrInvalidHashAlgorithm = apperrors.Wrap(apperrors.ErrInvalidInput, "invalid hash algorithm")

// Validate checks if the hash algorithm is valid.
func (h HashAlgorithm) Validate() error {
	switch h {
	case HashNone, HashArgon2id, HashBcrypt:
		return nil
	default:
		return ErrInvalidHashAlgorithm
	}
}

// String returns the string representation of the hash algorithm.
func (h HashAlgorithm) String() string {
	return string(h)
}
