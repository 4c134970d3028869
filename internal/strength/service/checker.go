// Package service classifies password strength against a pattern policy.
package service

import (
	"github.com/dlclark/regexp2"

	apperrors "github.com/allisson/passgen/internal/errors"
	strengthDomain "github.com/allisson/passgen/internal/strength/domain"
)

// Checker classifies a password into a strength level.
type Checker interface {
	// Check classifies password against policy, or the default policy when
	// policy is nil. Patterns are tried from tight to loose and the first
	// match decides the level.
	Check(password string, policy *strengthDomain.Policy) (strengthDomain.Level, error)
}

type checker struct{}

// NewChecker creates a stateless strength checker.
func NewChecker() Checker {
	return &checker{}
}

func (c *checker) Check(password string, policy *strengthDomain.Policy) (strengthDomain.Level, error) {
	if policy == nil {
		policy = strengthDomain.DefaultPolicy()
	}

	steps := []struct {
		name    string
		pattern *regexp2.Regexp
		level   strengthDomain.Level
	}{
		{name: "tight", pattern: policy.Tight, level: strengthDomain.Strong},
		{name: "medium", pattern: policy.Medium, level: strengthDomain.Good},
		{name: "loose", pattern: policy.Loose, level: strengthDomain.Weak},
	}

	for _, step := range steps {
		if step.pattern == nil {
			return strengthDomain.VeryWeak, apperrors.Wrapf(
				strengthDomain.ErrInvalidPattern,
				"%s pattern is not set",
				step.name,
			)
		}
		matched, err := step.pattern.MatchString(password)
		if err != nil {
			return strengthDomain.VeryWeak, apperrors.Wrapf(apperrors.ErrInternal, "failed to match %s pattern: %v", step.name, err)
		}
		if matched {
			return step.level, nil
		}
	}

	return strengthDomain.VeryWeak, nil
}
