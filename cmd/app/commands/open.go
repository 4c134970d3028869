package commands

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	validation "github.com/jellydator/validation"

	passgenService "github.com/allisson/passgen/internal/passgen/service"
	appValidation "github.com/allisson/passgen/internal/validation"
)

// RunOpen decrypts a sealed password printed by generate --kms-key-uri and writes
// the plaintext. The base64 sealed value is read from io.Reader when empty.
func RunOpen(
	ctx context.Context,
	sealService passgenService.SealService,
	logger *slog.Logger,
	io IOTuple,
	keyURI string,
	sealed string,
) error {
	sealed, err := readValue(io, sealed, "sealed password")
	if err != nil {
		return err
	}
	if err := validation.Validate(sealed, validation.Required, appValidation.Base64); err != nil {
		return fmt.Errorf("invalid sealed password: %w", appValidation.WrapValidationError(err))
	}

	ciphertext, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return fmt.Errorf("failed to decode sealed password: %w", err)
	}

	plaintext, err := sealService.Open(ctx, keyURI, ciphertext)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(io.Writer, string(plaintext))

	logger.Info("sealed password opened", slog.Int("length", len(plaintext)))
	return nil
}
