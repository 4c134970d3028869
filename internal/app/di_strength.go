package app

import (
	"fmt"

	strengthDomain "github.com/allisson/passgen/internal/strength/domain"
	strengthService "github.com/allisson/passgen/internal/strength/service"
)

// StrengthChecker returns the strength checker.
func (c *Container) StrengthChecker() strengthService.Checker {
	c.strengthCheckerInit.Do(func() {
		c.strengthChecker = strengthService.NewChecker()
	})
	return c.strengthChecker
}

// StrengthPolicy returns the strength policy compiled from the configured patterns.
// Empty patterns fall back to the built-in defaults.
func (c *Container) StrengthPolicy() (*strengthDomain.Policy, error) {
	var err error
	c.strengthPolicyInit.Do(func() {
		c.strengthPolicy, err = c.initStrengthPolicy()
		if err != nil {
			c.initErrors["strengthPolicy"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["strengthPolicy"]; exists {
		return nil, storedErr
	}
	return c.strengthPolicy, nil
}

func (c *Container) initStrengthPolicy() (*strengthDomain.Policy, error) {
	policy, err := strengthDomain.NewPolicy(
		c.config.StrengthLoosePattern,
		c.config.StrengthMediumPattern,
		c.config.StrengthTightPattern,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create strength policy: %w", err)
	}
	return policy, nil
}
