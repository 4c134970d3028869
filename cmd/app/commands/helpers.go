// Package commands contains CLI command implementations for the application.
package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/allisson/passgen/internal/app"
	"github.com/allisson/passgen/internal/metrics"
	passgenDomain "github.com/allisson/passgen/internal/passgen/domain"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// CloseContainer closes all resources in the container and logs any errors.
func CloseContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// WriteMetrics writes the collected metrics in Prometheus text format.
// A nil provider means metrics are disabled and nothing is written.
func WriteMetrics(provider *metrics.Provider, writer io.Writer) error {
	if provider == nil {
		return nil
	}
	if err := provider.WriteText(writer); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}

// parseLetterCase converts a letter case string to passgenDomain.LetterCase.
func parseLetterCase(letterCase string) (passgenDomain.LetterCase, error) {
	switch letterCase {
	case "upper":
		return passgenDomain.LetterCaseUpper, nil
	case "lower":
		return passgenDomain.LetterCaseLower, nil
	case "mixed":
		return passgenDomain.LetterCaseMixed, nil
	default:
		return "", fmt.Errorf("invalid letter case: %s (valid options: upper, lower, mixed)", letterCase)
	}
}

// ParseHashAlgorithm converts a hash algorithm string to passgenDomain.HashAlgorithm.
func ParseHashAlgorithm(algorithm string) (passgenDomain.HashAlgorithm, error) {
	switch algorithm {
	case "none", "":
		return passgenDomain.HashNone, nil
	case "argon2id":
		return passgenDomain.HashArgon2id, nil
	case "bcrypt":
		return passgenDomain.HashBcrypt, nil
	default:
		return "", fmt.Errorf("invalid hash algorithm: %s (valid options: none, argon2id, bcrypt)", algorithm)
	}
}

// readValue returns value, or the first line of io.Reader when value is empty.
// A missing or blank value is an error naming the input.
func readValue(io IOTuple, value, name string) (string, error) {
	if value == "" && io.Reader != nil {
		line, err := bufio.NewReader(io.Reader).ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("failed to read %s from input: %w", name, err)
		}
		value = strings.TrimRight(line, "\r\n")
	}
	if value == "" {
		return "", fmt.Errorf("%s is required", name)
	}
	return value, nil
}

// validateFormat rejects output formats other than text and json.
func validateFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}
}

// splitAlphabet turns a flag value into one entry per character. Multi-byte
// characters are kept whole so validation can reject them.
func splitAlphabet(alphabet string) []string {
	if alphabet == "" {
		return nil
	}
	entries := make([]string, 0, len(alphabet))
	for _, r := range alphabet {
		entries = append(entries, string(r))
	}
	return entries
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(writer io.Writer, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, _ = fmt.Fprintln(writer, string(jsonBytes))
	return nil
}
