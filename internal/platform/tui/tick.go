// Package tui provides the Bubble Tea integration for the solitaire platform.
// It handles the terminal UI loop, command entry, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clockInterval is how often the board is redrawn to advance the timer.
const clockInterval = time.Second

// TickMsg is sent to refresh the elapsed-time display.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after clockInterval.
func tickCmd() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
