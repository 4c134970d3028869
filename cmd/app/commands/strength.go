package commands

import (
	"context"
	"fmt"
	"log/slog"

	passgenUseCase "github.com/allisson/passgen/internal/passgen/usecase"
	strengthDomain "github.com/allisson/passgen/internal/strength/domain"
)

// RunStrength classifies a password and prints its strength level. When password
// is empty the first line of io.Reader is used, so secrets can be piped in instead
// of appearing in the process list. A non-empty minLevel ("WEAK", "GOOD",
// "STRONG") fails the command after printing when the password ranks lower.
func RunStrength(
	ctx context.Context,
	passwordUseCase passgenUseCase.PasswordUseCase,
	logger *slog.Logger,
	io IOTuple,
	password string,
	minLevel string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	password, err := readValue(io, password, "password")
	if err != nil {
		return err
	}

	var minimum strengthDomain.Level
	if minLevel != "" {
		minimum, err = strengthDomain.ParseLevel(minLevel)
		if err != nil {
			return fmt.Errorf("invalid min level: %w", err)
		}
	}

	level, err := passwordUseCase.Classify(ctx, password)
	if err != nil {
		return fmt.Errorf("failed to classify password: %w", err)
	}

	if format == "json" {
		result := map[string]interface{}{
			"strength": level.String(),
			"length":   len(password),
		}
		if err := writeJSON(io.Writer, result); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintln(io.Writer, level.String())
	}

	logger.Info("password classified",
		slog.String("strength", level.String()),
		slog.Int("length", len(password)),
	)

	if minLevel != "" && level < minimum {
		return fmt.Errorf("password strength %s is below required %s", level, minimum)
	}

	return nil
}
