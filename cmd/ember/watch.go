package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"

	"github.com/frerich/elixir"
)

func watchCommand() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Classify a line of input live, keystroke by keystroke",
		Action: func(_ context.Context, _ *cli.Command) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) {
				return runWatchPlain(os.Stdin, os.Stdout)
			}

			return runWatchTUI()
		},
	}
}

// runWatchPlain is the non-interactive fallback used when stdout isn't a
// terminal (piped output, CI): it classifies each line of stdin in turn.
func runWatchPlain(in *os.File, out *os.File) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		ctx := elixir.Classify(line, elixir.Options{})

		if _, err := fmt.Fprintf(out, "%s\t%s\n", elixir.Kind(ctx), line); err != nil {
			return err
		}
	}

	return scanner.Err()
}

func runWatchTUI() error {
	p := tea.NewProgram(newWatchModel())
	_, err := p.Run()

	return err
}

type watchModel struct {
	input  textinput.Model
	styles watchStyles
	ctx    elixir.Context
}

func newWatchModel() watchModel {
	ti := textinput.New()
	ti.Placeholder = "type code to the left of the cursor..."
	ti.Focus()

	return watchModel{
		input:  ti,
		styles: newWatchStyles(),
		ctx:    elixir.Classify("", elixir.Options{}),
	}
}

func (m watchModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type { //nolint:exhaustive // only these keys end the program
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	m.ctx = elixir.Classify(m.input.Value(), elixir.Options{})

	return m, cmd
}

func (m watchModel) View() string {
	chars, hasChars := elixir.Chars(m.ctx)

	body := m.input.View() + "\n\n" + m.styles.Kind.Render(elixir.Kind(m.ctx))
	if hasChars {
		body += "  " + m.styles.Chars.Render(fmt.Sprintf("%q", chars))
	}

	body += "\n" + m.styles.Dim.Render("ctrl+c or esc to quit")

	return m.styles.Border.Render(body) + "\n"
}
