package service

import (
	"context"
	"fmt"

	"gocloud.dev/secrets"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"

	apperrors "github.com/allisson/passgen/internal/errors"
)

// ErrEmptyKeyURI indicates sealing was requested without a keeper URI.
var ErrEmptyKeyURI = apperrors.Wrap(apperrors.ErrInvalidInput, "kms key uri is required")

// sealService implements SealService using gocloud.dev/secrets keepers.
// Supports gcpkms://, awskms://, azurekeyvault://, hashivault:// and base64key://.
type sealService struct{}

// NewSealService creates a new SealService instance.
func NewSealService() SealService {
	return &sealService{}
}

func (s *sealService) Seal(ctx context.Context, keyURI string, plaintext []byte) ([]byte, error) {
	var ciphertext []byte
	err := s.withKeeper(ctx, keyURI, func(keeper *secrets.Keeper) error {
		var err error
		ciphertext, err = keeper.Encrypt(ctx, plaintext)
		if err != nil {
			return fmt.Errorf("failed to seal password: %w", err)
		}
		return nil
	})
	return ciphertext, err
}

func (s *sealService) Open(ctx context.Context, keyURI string, ciphertext []byte) ([]byte, error) {
	var plaintext []byte
	err := s.withKeeper(ctx, keyURI, func(keeper *secrets.Keeper) error {
		var err error
		plaintext, err = keeper.Decrypt(ctx, ciphertext)
		if err != nil {
			return fmt.Errorf("failed to open sealed password: %w", err)
		}
		return nil
	})
	return plaintext, err
}

// withKeeper opens the keeper for keyURI, runs fn and closes the keeper.
func (s *sealService) withKeeper(ctx context.Context, keyURI string, fn func(*secrets.Keeper) error) (err error) {
	if keyURI == "" {
		return ErrEmptyKeyURI
	}

	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close KMS keeper: %w", closeErr)
		}
	}()

	return fn(keeper)
}
