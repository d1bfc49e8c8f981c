package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ponderhq/ponder/internal/theme"
)

// Styles is the lipgloss palette for one resolved variant.
type Styles struct {
	TopBar    lipgloss.Style
	StatusBar lipgloss.Style
	Title     lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Hint      lipgloss.Style
	Border    lipgloss.Style
	Countdown lipgloss.Style
	Tag       lipgloss.Style
	TagActive lipgloss.Style
	Row       lipgloss.Style
	RowActive lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
}

func DarkStyles() Styles {
	return Styles{
		TopBar:    lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true).Padding(0, 1),
		StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")).Background(lipgloss.Color("#313244")).Padding(0, 1),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
		Label:     lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#89B4FA")),
		Value:     lipgloss.NewStyle().Foreground(lipgloss.Color("#F2CDCD")),
		Hint:      lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#CBA6F7")),
		Border:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#89B4FA")).Padding(1, 2),
		Countdown: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9E2AF")),
		Tag:       lipgloss.NewStyle().Foreground(lipgloss.Color("#CBA6F7")),
		TagActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1e1e2e")).Background(lipgloss.Color("#CBA6F7")).Padding(0, 1),
		Row:       lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")),
		RowActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1e1e2e")).Background(lipgloss.Color("#89B4FA")),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
		Success:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	}
}

func LightStyles() Styles {
	return Styles{
		TopBar:    lipgloss.NewStyle().Foreground(lipgloss.Color("#4c4f69")).Bold(true).Padding(0, 1),
		StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("#5c5f77")).Background(lipgloss.Color("#ccd0da")).Padding(0, 1),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#40A02B")),
		Label:     lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#1E66F5")),
		Value:     lipgloss.NewStyle().Foreground(lipgloss.Color("#4c4f69")),
		Hint:      lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#8839EF")),
		Border:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#1E66F5")).Padding(1, 2),
		Countdown: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#DF8E1D")),
		Tag:       lipgloss.NewStyle().Foreground(lipgloss.Color("#8839EF")),
		TagActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#eff1f5")).Background(lipgloss.Color("#8839EF")).Padding(0, 1),
		Row:       lipgloss.NewStyle().Foreground(lipgloss.Color("#4c4f69")),
		RowActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#eff1f5")).Background(lipgloss.Color("#1E66F5")),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D20F39")),
		Success:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#40A02B")),
	}
}

// StylesFor resolves the preference against the terminal background.
// system re-resolves on every call; light/dark ignore the terminal.
func StylesFor(p theme.Preference) Styles {
	if p.Dark(lipgloss.HasDarkBackground()) {
		return DarkStyles()
	}
	return LightStyles()
}
