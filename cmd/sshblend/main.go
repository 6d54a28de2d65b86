// Package main provides the entry point for sshblend.
//
// sshblend assembles an SSH client configuration from fragment files,
// picking each fragment's local or remote section based on the
// currently visible network.
package main

import (
	"os"

	"github.com/sshblend/sshblend/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		command.PrintError("%v", err)
		os.Exit(1)
	}
}
