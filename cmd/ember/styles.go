package main

import "github.com/charmbracelet/lipgloss"

var (
	colorKind   = lipgloss.Color("#3b82f6") // blue-500
	colorChars  = lipgloss.Color("#10b981") // green-500
	colorDim    = lipgloss.Color("#6b7280") // gray-500
	colorBorder = lipgloss.Color("#374151") // gray-700
)

type watchStyles struct {
	Kind   lipgloss.Style
	Chars  lipgloss.Style
	Dim    lipgloss.Style
	Border lipgloss.Style
}

func newWatchStyles() watchStyles {
	return watchStyles{
		Kind:   lipgloss.NewStyle().Foreground(colorKind).Bold(true),
		Chars:  lipgloss.NewStyle().Foreground(colorChars),
		Dim:    lipgloss.NewStyle().Foreground(colorDim),
		Border: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1),
	}
}
