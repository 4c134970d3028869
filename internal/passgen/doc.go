/*
Package passgen provides random password generation with strength classification.

# Architecture

The module follows the same layering as the rest of the application:
  - domain: GenerationConfig, its validation rules and the ConfigurationError kinds
  - service: the generation engine, hashing (argon2id, bcrypt) and KMS sealing
  - usecase: generation and classification orchestration plus the metrics decorator

Strength classification lives in the sibling strength module.

# Generation

A GenerationConfig selects either a fixed length or an inclusive [min, max] range,
the character classes to draw from and optional custom alphabets. Generation:
  - validates the config and fails before consuming any randomness
  - picks the target length uniformly from the range
  - draws one character from every enabled class when RequireOneOfEach is set
  - fills the rest from the combined pool of enabled classes
  - shuffles the result with Fisher-Yates so required characters are not pinned

All randomness comes from crypto/rand.

# Basic Usage

	cfg := domain.DefaultGenerationConfig()
	cfg.SetLengthRange(12, 20)

	password, err := passwordUseCase.Generate(ctx, cfg)
	if err != nil {
	    return err
	}
	fmt.Println(password.Value, password.Strength)

# Hashing and Sealing

Generated passwords can be hashed for storage with HashService, or sealed for
hand-off with SealService using any gocloud.dev/secrets keeper URI:

	ciphertext, err := sealService.Seal(ctx, "base64key://...", []byte(password.Value))

Nothing is persisted; sealing and hashing only shape the command output.
*/
package passgen
