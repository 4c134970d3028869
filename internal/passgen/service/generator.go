package service

import (
	apperrors "github.com/allisson/passgen/internal/errors"
	passgenDomain "github.com/allisson/passgen/internal/passgen/domain"
)

type generator struct {
	random randomSource
}

// NewGenerator creates a password generator backed by crypto/rand.
func NewGenerator() Generator {
	return &generator{random: secureSource}
}

// Generate validates cfg, then draws one character per required class, fills
// the remaining length from the combined pool and shuffles the result.
func (g *generator) Generate(cfg *passgenDomain.GenerationConfig) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	length, err := g.targetLength(cfg)
	if err != nil {
		return "", err
	}

	pool := buildPool(cfg)
	password := make([]byte, 0, length)

	if cfg.RequireOneOfEach {
		for _, alphabet := range pool.classes {
			c, err := g.pick(alphabet.chars)
			if err != nil {
				return "", err
			}
			password = append(password, c)
		}
	}

	for len(password) < length {
		c, err := g.pick(pool.combined)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	if err := g.shuffle(password); err != nil {
		return "", err
	}

	return string(password), nil
}

// targetLength resolves the fixed length, or a uniform draw over [min, max].
func (g *generator) targetLength(cfg *passgenDomain.GenerationConfig) (int, error) {
	if !cfg.IsRanged() {
		return *cfg.FixedLength, nil
	}
	offset, err := g.intn(*cfg.MaxLength - *cfg.MinLength + 1)
	if err != nil {
		return 0, err
	}
	return *cfg.MinLength + offset, nil
}

func (g *generator) pick(chars []byte) (byte, error) {
	i, err := g.intn(len(chars))
	if err != nil {
		return 0, err
	}
	return chars[i], nil
}

// shuffle applies a Fisher-Yates permutation in place.
func (g *generator) shuffle(chars []byte) error {
	for i := len(chars) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return err
		}
		chars[i], chars[j] = chars[j], chars[i]
	}
	return nil
}

func (g *generator) intn(n int) (int, error) {
	v, err := g.random.Intn(n)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternal, err.Error())
	}
	return v, nil
}
