package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/allisson/passgen/cmd/app/commands"
	"github.com/allisson/passgen/internal/app"
	"github.com/allisson/passgen/internal/config"
)

func getStrengthCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "strength",
			Usage: "Classify the strength of a password",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "Password to classify (omit to read one line from stdin)",
				},
				&cli.StringFlag{
					Name:  "min-level",
					Usage: "Fail unless the password is at least this strong: 'VERY_WEAK', 'WEAK', 'GOOD' or 'STRONG'",
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
				container := app.NewContainer(cfg)
				logger := container.Logger()
				defer commands.CloseContainer(container, logger)

				passwordUseCase, err := container.PasswordUseCase()
				if err != nil {
					return fmt.Errorf("failed to initialize password use case: %w", err)
				}

				return commands.RunStrength(
					ctx,
					passwordUseCase,
					logger,
					commands.DefaultIO(),
					cmd.String("password"),
					cmd.String("min-level"),
					cmd.String("format"),
				)
			},
		},
	}
}
