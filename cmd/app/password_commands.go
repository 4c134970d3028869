package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/passgen/cmd/app/commands"
	"github.com/allisson/passgen/internal/app"
	"github.com/allisson/passgen/internal/config"
	passgenDomain "github.com/allisson/passgen/internal/passgen/domain"
	passgenService "github.com/allisson/passgen/internal/passgen/service"
)

func getPasswordCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate",
			Usage: "Generate one or more random passwords",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "length",
					Aliases: []string{"l"},
					Usage:   "Fixed password length (default from PASSGEN_LENGTH)",
				},
				&cli.IntFlag{
					Name:  "min-length",
					Usage: "Minimum length of a ranged password (requires --max-length)",
				},
				&cli.IntFlag{
					Name:  "max-length",
					Usage: "Maximum length of a ranged password (requires --min-length)",
				},
				&cli.BoolFlag{
					Name:  "letters",
					Usage: "Include letters",
				},
				&cli.StringFlag{
					Name:  "letter-case",
					Usage: "Letter case: 'upper', 'lower' or 'mixed'",
				},
				&cli.BoolFlag{
					Name:  "digits",
					Usage: "Include digits",
				},
				&cli.BoolFlag{
					Name:  "symbols",
					Usage: "Include symbols",
				},
				&cli.BoolFlag{
					Name:  "require-one-of-each",
					Usage: "Guarantee at least one character from every enabled class",
				},
				&cli.StringFlag{
					Name:  "upper-alphabet",
					Usage: "Custom uppercase alphabet, one character per entry",
				},
				&cli.StringFlag{
					Name:  "lower-alphabet",
					Usage: "Custom lowercase alphabet, one character per entry",
				},
				&cli.StringFlag{
					Name:  "digit-alphabet",
					Usage: "Custom digit alphabet, one character per entry",
				},
				&cli.StringFlag{
					Name:  "symbol-alphabet",
					Usage: "Custom symbol alphabet, one character per entry",
				},
				&cli.IntFlag{
					Name:    "count",
					Aliases: []string{"n"},
					Value:   1,
					Usage:   "Number of passwords to generate",
				},
				&cli.StringFlag{
					Name:  "hash",
					Usage: "Also output a hash: 'none', 'argon2id' or 'bcrypt' (default from PASSGEN_HASH_ALGORITHM)",
				},
				&cli.StringFlag{
					Name:  "kms-key-uri",
					Usage: "Seal each password with this KMS key (e.g., base64key://, gcpkms://projects/.../cryptoKeys/...)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
				&cli.BoolFlag{
					Name:  "print-metrics",
					Value: false,
					Usage: "Write collected metrics to stderr in Prometheus text format",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				if cmd.IsSet("hash") {
					cfg.HashAlgorithm = cmd.String("hash")
				}
				if cmd.IsSet("kms-key-uri") {
					cfg.KMSKeyURI = cmd.String("kms-key-uri")
				}
				if cmd.Bool("print-metrics") {
					cfg.MetricsEnabled = true
				}

				container := app.NewContainer(cfg)
				logger := container.Logger()
				defer commands.CloseContainer(container, logger)

				genCfg := cfg.GenerationDefaults()
				if err := commands.ApplyGenerationFlags(genCfg, generationFlags(cmd)); err != nil {
					return err
				}

				hashAlgorithm, err := commands.ParseHashAlgorithm(cfg.HashAlgorithm)
				if err != nil {
					return err
				}

				var hashService passgenService.HashService
				if hashAlgorithm != passgenDomain.HashNone {
					hashService, err = container.HashService()
					if err != nil {
						return fmt.Errorf("failed to initialize hash service: %w", err)
					}
				}

				passwordUseCase, err := container.PasswordUseCase()
				if err != nil {
					return fmt.Errorf("failed to initialize password use case: %w", err)
				}

				err = commands.RunGenerate(
					ctx,
					passwordUseCase,
					hashService,
					container.SealService(),
					logger,
					commands.DefaultIO(),
					commands.GenerateOptions{
						Config:        genCfg,
						Count:         int(cmd.Int("count")),
						HashAlgorithm: hashAlgorithm,
						KMSKeyURI:     cfg.KMSKeyURI,
						Format:        cmd.String("format"),
					},
				)
				if err != nil {
					return err
				}

				if cmd.Bool("print-metrics") {
					provider, err := container.MetricsProvider()
					if err != nil {
						return fmt.Errorf("failed to initialize metrics provider: %w", err)
					}
					return commands.WriteMetrics(provider, os.Stderr)
				}
				return nil
			},
		},
		{
			Name:  "verify",
			Usage: "Check a password against a hash printed by generate --hash",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "hash",
					Required: true,
					Usage:    "Hash algorithm of the encoded hash: 'argon2id' or 'bcrypt'",
				},
				&cli.StringFlag{
					Name:     "encoded-hash",
					Required: true,
					Usage:    "Encoded hash to check against",
				},
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "Password to check (omit to read one line from stdin)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				cfg.HashAlgorithm = cmd.String("hash")

				container := app.NewContainer(cfg)
				logger := container.Logger()
				defer commands.CloseContainer(container, logger)

				hashService, err := container.HashService()
				if err != nil {
					return fmt.Errorf("failed to initialize hash service: %w", err)
				}

				return commands.RunVerify(
					hashService,
					logger,
					commands.DefaultIO(),
					cmd.String("password"),
					cmd.String("encoded-hash"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "open",
			Usage: "Decrypt a sealed password printed by generate --kms-key-uri",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "kms-key-uri",
					Usage: "KMS key the password was sealed with (default from PASSGEN_KMS_KEY_URI)",
				},
				&cli.StringFlag{
					Name:  "sealed",
					Usage: "Base64 sealed password (omit to read one line from stdin)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				if cmd.IsSet("kms-key-uri") {
					cfg.KMSKeyURI = cmd.String("kms-key-uri")
				}

				container := app.NewContainer(cfg)
				logger := container.Logger()
				defer commands.CloseContainer(container, logger)

				return commands.RunOpen(
					ctx,
					container.SealService(),
					logger,
					commands.DefaultIO(),
					cfg.KMSKeyURI,
					cmd.String("sealed"),
				)
			},
		},
	}
}

// generationFlags collects the generation flags the user actually set.
func generationFlags(cmd *cli.Command) commands.GenerationFlags {
	flags := commands.GenerationFlags{
		LetterCase:     cmd.String("letter-case"),
		UpperAlphabet:  cmd.String("upper-alphabet"),
		LowerAlphabet:  cmd.String("lower-alphabet"),
		DigitAlphabet:  cmd.String("digit-alphabet"),
		SymbolAlphabet: cmd.String("symbol-alphabet"),
	}
	flags.Length = intFlag(cmd, "length")
	flags.MinLength = intFlag(cmd, "min-length")
	flags.MaxLength = intFlag(cmd, "max-length")
	flags.Letters = boolFlag(cmd, "letters")
	flags.Digits = boolFlag(cmd, "digits")
	flags.Symbols = boolFlag(cmd, "symbols")
	flags.RequireOneOfEach = boolFlag(cmd, "require-one-of-each")
	return flags
}

func intFlag(cmd *cli.Command, name string) *int {
	if !cmd.IsSet(name) {
		return nil
	}
	v := int(cmd.Int(name))
	return &v
}

func boolFlag(cmd *cli.Command, name string) *bool {
	if !cmd.IsSet(name) {
		return nil
	}
	v := cmd.Bool(name)
	return &v
}
