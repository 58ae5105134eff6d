// Package tui runs a game inside a Bubble Tea program: it owns the tick
// source, maps keys to actions and turns screen buffers into styled text.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after interval.
// The model re-arms it after every tick while the game runs.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
