package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print version information",
		Action: func(c *cli.Context) error {
			_, err := fmt.Fprintf(c.App.Writer, "gazealign version %s (commit: %s)\n", BuildTag, BuildCommit)
			return err
		},
	}
}
