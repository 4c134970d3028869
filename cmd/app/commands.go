package main

import (
	"github.com/urfave/cli/v3"
)

func getCommands(version string) []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getPasswordCommands()...)
	cmds = append(cmds, getStrengthCommands()...)
	return cmds
}
