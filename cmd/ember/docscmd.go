package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/frerich/elixir/docs"
)

var errUnknownKind = errors.New("unknown context kind")

func docsCommand() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Render the hover documentation for a context kind",
		ArgsUsage: "<context-kind>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "html", Usage: "render to HTML instead of raw Markdown"},
			&cli.BoolFlag{Name: "man", Usage: "render to a roff man page instead of raw Markdown"},
			&cli.BoolFlag{Name: "list", Usage: "list every documented context kind and exit"},
		},
		Action: runDocs,
	}
}

func runDocs(_ context.Context, cmd *cli.Command) error {
	if cmd.Bool("list") {
		for _, kind := range docs.Kinds() {
			fmt.Println(kind)
		}

		return nil
	}

	if cmd.Args().Len() == 0 {
		return fmt.Errorf("%w: usage: ember docs <context-kind> (try --list)", errUnknownKind)
	}

	kind := cmd.Args().First()

	md, ok := docs.Markdown(kind)
	if !ok {
		return fmt.Errorf("%w: %q (known: %s)", errUnknownKind, kind, strings.Join(docs.Kinds(), ", "))
	}

	switch {
	case cmd.Bool("man"):
		_, err := os.Stdout.Write(docs.RenderMan(fmt.Sprintf("ember-docs-%s", kind), md))
		return err
	case cmd.Bool("html"):
		html, err := docs.RenderHTML(md)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(os.Stdout, html)

		return err
	default:
		_, err := fmt.Fprintln(os.Stdout, md)
		return err
	}
}
