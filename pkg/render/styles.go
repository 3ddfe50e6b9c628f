// Package render turns view state into styled terminal text.
package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette.
//
//nolint:gochecknoglobals // shared styles
var (
	primary = lipgloss.Color("#06D4F9")
	muted   = lipgloss.Color("#64748B")
	success = lipgloss.Color("#22C55E")
	danger  = lipgloss.Color("#EF4444")
	warning = lipgloss.Color("#F59E0B")
)

// Styles groups the lipgloss styles used across screens.
type Styles struct {
	Title    lipgloss.Style
	Badge    lipgloss.Style
	Muted    lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Card     lipgloss.Style
	Success  lipgloss.Style
	Failed   lipgloss.Style
	Blocked  lipgloss.Style
	Selected lipgloss.Style
}

// DefaultStyles returns the dashboard look.
func DefaultStyles() (styles Styles) {
	styles = Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true),

		Badge: lipgloss.NewStyle().
			Foreground(primary).
			Border(lipgloss.NormalBorder(), false, true).
			BorderForeground(primary).
			Padding(0, 1).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(muted),

		Label: lipgloss.NewStyle().
			Foreground(muted).
			Bold(true),

		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E2E8F0")),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 2).
			Width(18),

		Success: lipgloss.NewStyle().
			Foreground(success).
			Bold(true),

		Failed: lipgloss.NewStyle().
			Foreground(warning).
			Bold(true),

		Blocked: lipgloss.NewStyle().
			Foreground(danger).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Foreground(primary).
			Underline(true),
	}
	return styles
}
