// Package ui provides the console styling for groupctl output.
package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors
var (
	Success = lipgloss.Color("#8BC34A") // Lime Green
	Failure = lipgloss.Color("#e53935") // Red
	Warning = lipgloss.Color("#FFC107") // Yellow
	Accent  = lipgloss.Color("#2196F3") // Blue
	Grey    = lipgloss.Color("#808080")
)

// Styles holds the lipgloss styles used by the summary renderer.
type Styles struct {
	Title   lipgloss.Style
	Bold    lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
}

// DefaultStyles returns the standard groupctl style set.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(Accent).MarginTop(1),
		Bold:    lipgloss.NewStyle().Bold(true),
		Body:    lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle().Foreground(Grey),
		Success: lipgloss.NewStyle().Foreground(Success),
		Failure: lipgloss.NewStyle().Foreground(Failure),
	}
}
