package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey('w'), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"j", runeKey('j'), core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"screenshot", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keys.Action(tt.msg))
		})
	}
}

func TestNewKeyMapFromConfig(t *testing.T) {
	cfg := config.Default().Keys
	cfg.Up = []string{"i"}
	cfg.Quit = []string{"x"}
	keys := NewKeyMap(cfg)

	assert.Equal(t, core.ActionUp, keys.Action(runeKey('i')))
	assert.Equal(t, core.ActionNone, keys.Action(runeKey('w')))
	assert.Equal(t, core.ActionQuit, keys.Action(runeKey('x')))
	assert.Equal(t, core.ActionNone, keys.Action(runeKey('q')))
}

func TestHelpKeys(t *testing.T) {
	assert.Equal(t, "up/w", helpKeys([]string{"up", "w", "k"}))
	assert.Equal(t, "r", helpKeys([]string{"r"}))
	assert.Len(t, DefaultKeyMap().ShortHelp(), 7)
	assert.Len(t, DefaultKeyMap().FullHelp(), 2)
}
