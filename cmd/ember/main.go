// Package main provides the ember CLI tool.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

var version = "dev"

func main() {
	app := &cli.Command{
		Name:    "ember",
		Version: version,
		Usage:   "Cursor-context classifier for editor tooling",
		Commands: []*cli.Command{
			classifyCommand(),
			lspCommand(),
			docsCommand(),
			watchCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
