package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/frerich/elixir"
)

func classifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "classify",
		Usage:     "Classify the syntactic construct a cursor sits inside",
		ArgsUsage: "[fragment]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print the result as JSON instead of a human table",
			},
		},
		Action: runClassify,
	}
}

func runClassify(_ context.Context, cmd *cli.Command) error {
	fragment, err := readFragment(cmd)
	if err != nil {
		return err
	}

	ctx := elixir.Classify(fragment, elixir.Options{})

	if cmd.Bool("json") {
		return printJSON(os.Stdout, ctx)
	}

	return printTable(os.Stdout, fragment, ctx)
}

func readFragment(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() > 0 {
		return cmd.Args().First(), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}

	return string(data), nil
}

func printTable(out io.Writer, fragment string, ctx elixir.Context) error {
	chars, hasChars := elixir.Chars(ctx)

	_, err := fmt.Fprintf(out, "fragment  %q\n", fragment)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "kind      %s\n", elixir.Kind(ctx))
	if err != nil {
		return err
	}

	if hasChars {
		_, err = fmt.Fprintf(out, "chars     %q\n", chars)
		if err != nil {
			return err
		}
	}

	if inside, ok := elixir.InsideDotOf(ctx); ok {
		_, err = fmt.Fprintf(out, "inside    %s\n", elixir.String(insideAsContext(inside)))
		if err != nil {
			return err
		}
	}

	return nil
}

func printJSON(out io.Writer, ctx elixir.Context) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	return enc.Encode(contextJSON(ctx))
}

// contextNode is the JSON shape of a Context/InsideDot for CLI output.
type contextNode struct {
	Kind   string       `json:"kind"`
	Chars  *string      `json:"chars,omitempty"`
	Inside *contextNode `json:"inside,omitempty"`
}

func contextJSON(ctx elixir.Context) contextNode {
	node := contextNode{Kind: elixir.Kind(ctx)}

	if chars, ok := elixir.Chars(ctx); ok {
		node.Chars = &chars
	}

	if inside, ok := elixir.InsideDotOf(ctx); ok {
		n := insideJSON(inside)
		node.Inside = &n
	}

	return node
}

func insideJSON(inside elixir.InsideDot) contextNode {
	return contextJSON(insideAsContext(inside))
}

// insideAsContext re-tags an InsideDot node as the equivalent top-level
// Context variant purely so the CLI can reuse elixir.Kind/Chars/String for
// rendering; it carries no semantic meaning beyond that.
func insideAsContext(inside elixir.InsideDot) elixir.Context {
	switch v := inside.(type) {
	case elixir.VarInside:
		return elixir.LocalOrVar{Chars: v.Chars}
	case elixir.AliasInside:
		return elixir.Alias{Chars: v.Chars}
	case elixir.ModuleAttributeInside:
		return elixir.ModuleAttribute{Chars: v.Chars}
	case elixir.UnquotedAtomInside:
		return elixir.UnquotedAtom{Chars: v.Chars}
	case elixir.DotInside:
		return elixir.Dot{Inside: v.Inside, Chars: v.Chars}
	default:
		return elixir.None{}
	}
}
