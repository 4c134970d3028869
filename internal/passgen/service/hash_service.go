package service

import (
	"github.com/allisson/go-pwdhash"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/allisson/passgen/internal/errors"
	passgenDomain "github.com/allisson/passgen/internal/passgen/domain"
)

// argon2idHashService implements HashService using Argon2id via go-pwdhash.
type argon2idHashService struct {
	hasher *pwdhash.PasswordHasher
}

// NewArgon2idHashService creates an Argon2id HashService. policy is "interactive"
// or "moderate".
func NewArgon2idHashService(policy string) (HashService, error) {
	var (
		hasher *pwdhash.PasswordHasher
		err    error
	)
	switch policy {
	case "interactive":
		hasher, err = pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	case "moderate":
		hasher, err = pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyModerate))
	default:
		return nil, apperrors.Wrapf(
			passgenDomain.ErrInvalidHashAlgorithm,
			"unknown argon2id policy %q (valid options: interactive, moderate)",
			policy,
		)
	}
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create argon2id hasher")
	}
	return &argon2idHashService{hasher: hasher}, nil
}

func (s *argon2idHashService) Hash(password string) (string, error) {
	hashed, err := s.hasher.Hash([]byte(password))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hashed, nil
}

func (s *argon2idHashService) Verify(password, encodedHash string) bool {
	ok, err := s.hasher.Verify([]byte(password), encodedHash)
	if err != nil {
		return false
	}
	return ok
}

// bcryptHashService implements HashService using bcrypt.
type bcryptHashService struct {
	cost int
}

// NewBcryptHashService creates a bcrypt HashService with the given cost.
func NewBcryptHashService(cost int) (HashService, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, apperrors.Wrapf(
			passgenDomain.ErrInvalidHashAlgorithm,
			"bcrypt cost %d out of range [%d, %d]",
			cost,
			bcrypt.MinCost,
			bcrypt.MaxCost,
		)
	}
	return &bcryptHashService{cost: cost}, nil
}

// Hash fails for passwords longer than 72 bytes, the bcrypt input limit.
func (s *bcryptHashService) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return string(hashed), nil
}

func (s *bcryptHashService) Verify(password, encodedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)) == nil
}

// NewHashService creates the HashService for algorithm. HashNone has no service
// and is rejected.
func NewHashService(algorithm passgenDomain.HashAlgorithm, argon2Policy string, bcryptCost int) (HashService, error) {
	switch algorithm {
	case passgenDomain.HashArgon2id:
		return NewArgon2idHashService(argon2Policy)
	case passgenDomain.HashBcrypt:
		return NewBcryptHashService(bcryptCost)
	default:
		return nil, apperrors.Wrapf(
			passgenDomain.ErrInvalidHashAlgorithm,
			"no hash service for %q",
			string(algorithm),
		)
	}
}
