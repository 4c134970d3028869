package app

import (
	"fmt"

	passgenDomain "github.com/allisson/passgen/internal/passgen/domain"
	passgenService "github.com/allisson/passgen/internal/passgen/service"
	passgenUseCase "github.com/allisson/passgen/internal/passgen/usecase"
)

// Generator returns the password generation engine.
func (c *Container) Generator() passgenService.Generator {
	c.generatorInit.Do(func() {
		c.generator = passgenService.NewGenerator()
	})
	return c.generator
}

// SealService returns the KMS-backed sealing service.
func (c *Container) SealService() passgenService.SealService {
	c.sealServiceInit.Do(func() {
		c.sealService = passgenService.NewSealService()
	})
	return c.sealService
}

// HashService returns the hash service for the configured hash algorithm.
// The algorithm must not be "none".
func (c *Container) HashService() (passgenService.HashService, error) {
	var err error
	c.hashServiceInit.Do(func() {
		c.hashService, err = c.initHashService()
		if err != nil {
			c.initErrors["hashService"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["hashService"]; exists {
		return nil, storedErr
	}
	return c.hashService, nil
}

// PasswordUseCase returns the password use case, wrapped with metrics when enabled.
func (c *Container) PasswordUseCase() (passgenUseCase.PasswordUseCase, error) {
	var err error
	c.passwordUseCaseInit.Do(func() {
		c.passwordUseCase, err = c.initPasswordUseCase()
		if err != nil {
			c.initErrors["passwordUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["passwordUseCase"]; exists {
		return nil, storedErr
	}
	return c.passwordUseCase, nil
}

func (c *Container) initHashService() (passgenService.HashService, error) {
	hashService, err := passgenService.NewHashService(
		passgenDomain.HashAlgorithm(c.config.HashAlgorithm),
		c.config.Argon2Policy,
		c.config.BcryptCost,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create hash service: %w", err)
	}
	return hashService, nil
}

func (c *Container) initPasswordUseCase() (passgenUseCase.PasswordUseCase, error) {
	policy, err := c.StrengthPolicy()
	if err != nil {
		return nil, fmt.Errorf("failed to get strength policy for password use case: %w", err)
	}

	baseUseCase := passgenUseCase.NewPasswordUseCase(c.Generator(), c.StrengthChecker(), policy)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for password use case: %w", err)
		}
		return passgenUseCase.NewPasswordUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
