package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the lipgloss styles used around the board: the prompt, the
// status line and the menus.
type Theme struct {
	Prompt     lipgloss.Style
	StatusInfo lipgloss.Style
	StatusErr  lipgloss.Style
	Help       lipgloss.Style

	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Prompt:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		StatusInfo: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		StatusErr:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// MonochromeTheme returns a theme without colors, for terminals that
// render them poorly.
func MonochromeTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Prompt:          plain.Bold(true),
		StatusInfo:      plain,
		StatusErr:       plain.Underline(true),
		Help:            plain.Faint(true),
		MenuTitle:       plain.Bold(true),
		MenuItemNormal:  plain,
		MenuItemActive:  plain.Reverse(true),
		MenuDescription: plain.Faint(true),
	}
}

// Global theme variable (can be changed at runtime)
var theme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	theme = t
}
