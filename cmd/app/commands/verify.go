package commands

import (
	"errors"
	"fmt"
	"log/slog"

	passgenService "github.com/allisson/passgen/internal/passgen/service"
)

// ErrHashMismatch is returned by RunVerify when the password does not match the hash.
var ErrHashMismatch = errors.New("password does not match hash")

// RunVerify checks a password against an encoded hash produced by generate --hash.
// The password is read from io.Reader when empty. A mismatch prints its result
// and then returns ErrHashMismatch so the process exits non-zero.
func RunVerify(
	hashService passgenService.HashService,
	logger *slog.Logger,
	io IOTuple,
	password string,
	encodedHash string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if encodedHash == "" {
		return fmt.Errorf("encoded hash is required")
	}

	password, err := readValue(io, password, "password")
	if err != nil {
		return err
	}

	match := hashService.Verify(password, encodedHash)
	if format == "json" {
		if err := writeJSON(io.Writer, map[string]bool{"match": match}); err != nil {
			return err
		}
	} else if match {
		_, _ = fmt.Fprintln(io.Writer, "MATCH")
	} else {
		_, _ = fmt.Fprintln(io.Writer, "MISMATCH")
	}

	logger.Info("password verified", slog.Bool("match", match))

	if !match {
		return ErrHashMismatch
	}
	return nil
}
