// Package styles provides reusable lipgloss-based CLI output components.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme holds lipgloss colors and styles for CLI output.
type Theme struct {
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Accent  lipgloss.Color
	Border  lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style
}

// NewTheme creates the default dark theme.
func NewTheme() *Theme {
	t := &Theme{
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#909090"),
		Accent:  lipgloss.Color("#4ade80"),
		Border:  lipgloss.Color("#333333"),
		Error:   lipgloss.Color("#ef4444"),
		Warning: lipgloss.Color("#f59e0b"),
		Success: lipgloss.Color("#4ade80"),
	}

	t.Title = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.Normal = lipgloss.NewStyle().Foreground(t.Text)
	t.Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	t.Highlight = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	t.ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	t.WarningStyle = lipgloss.NewStyle().Foreground(t.Warning)
	t.SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)

	t.ListItem = lipgloss.NewStyle().PaddingLeft(2)
	t.ListItemSelected = lipgloss.NewStyle().PaddingLeft(0).Foreground(t.Accent).Bold(true)

	return t
}
