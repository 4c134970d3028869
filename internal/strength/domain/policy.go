package domain

import (
	"github.com/dlclark/regexp2"

	apperrors "github.com/allisson/passgen/internal/errors"
)

// Default classification patterns. They rely on lookahead, which RE2 does not
// support, so they are compiled with regexp2.
const (
	// DefaultLoosePattern: mixed case letters, length >= 6.
	DefaultLoosePattern = `^(?=.*[a-z])(?=.*[A-Z]).{6,}$`

	// DefaultMediumPattern: mixed case and a digit with length >= 6, or mixed
	// case and a symbol with length >= 8.
	DefaultMediumPattern = `^(?:(?=.*[a-z])(?=.*[A-Z])(?=.*[0-9]).{6,}|(?=.*[a-z])(?=.*[A-Z])(?=.*[^a-zA-Z0-9]).{8,})$`

	// DefaultTightPattern: mixed case, a digit and a symbol, length >= 8.
	DefaultTightPattern = `^(?=.*[a-z])(?=.*[A-Z])(?=.*[0-9])(?=.*[^a-zA-Z0-9]).{8,}$`
)

// ErrInvalidPattern indicates a policy pattern failed to compile.
var ErrInvalidPattern = apperrors.Wrap(apperrors.ErrInvalidInput, "invalid strength pattern")

// Policy is the loose/medium/tight pattern triple a password is classified against.
type Policy struct {
	Loose  *regexp2.Regexp
	Medium *regexp2.Regexp
	Tight  *regexp2.Regexp
}

var defaultPolicy = &Policy{
	Loose:  regexp2.MustCompile(DefaultLoosePattern, regexp2.None),
	Medium: regexp2.MustCompile(DefaultMediumPattern, regexp2.None),
	Tight:  regexp2.MustCompile(DefaultTightPattern, regexp2.None),
}

// DefaultPolicy returns the built-in policy. The returned value is shared and must not be modified.
func DefaultPolicy() *Policy {
	return defaultPolicy
}

// NewPolicy compiles a policy from three patterns. An empty pattern falls back
// to the matching default.
func NewPolicy(loose, medium, tight string) (*Policy, error) {
	compile := func(name, pattern, fallback string) (*regexp2.Regexp, error) {
		if pattern == "" {
			pattern = fallback
		}
		re, err := regexp2.Compile(pattern, regexp2.None)
		if err != nil {
			return nil, apperrors.Wrapf(ErrInvalidPattern, "%s pattern %q: %v", name, pattern, err)
		}
		return re, nil
	}

	looseRe, err := compile("loose", loose, DefaultLoosePattern)
	if err != nil {
		return nil, err
	}
	mediumRe, err := compile("medium", medium, DefaultMediumPattern)
	if err != nil {
		return nil, err
	}
	tightRe, err := compile("tight", tight, DefaultTightPattern)
	if err != nil {
		return nil, err
	}

	return &Policy{Loose: looseRe, Medium: mediumRe, Tight: tightRe}, nil
}
