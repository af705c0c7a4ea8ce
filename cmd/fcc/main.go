package main

import (
	"context"
	"log"
	"os"

	"github.com/rustcourse/fcc/internal/cli"
	commands "github.com/urfave/cli/v3"
)

func main() {
	cmd := &commands.Command{
		Name:      "fcc",
		Usage:     "Run, reset, solve and test course lessons",
		ArgsUsage: "<n> | reset <n> | solution <n> | test <n> | switch <project> | locale <locale> | welcome | help",
		// Every token, including -h and --help, goes to the resolver.
		SkipFlagParsing: true,
		HideHelp:        true,
		HideVersion:     true,
		Action:          cli.Action,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
