package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap holds the key bindings of a game session.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// NewKeyMap builds bindings from configured key names.
func NewKeyMap(cfg config.KeyConfig) KeyMap {
	bind := func(keys []string, desc string) key.Binding {
		return key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(helpKeys(keys), desc),
		)
	}

	return KeyMap{
		Up:         bind(cfg.Up, "up"),
		Down:       bind(cfg.Down, "down"),
		Left:       bind(cfg.Left, "left"),
		Right:      bind(cfg.Right, "right"),
		Pause:      bind(cfg.Pause, "pause"),
		Restart:    bind(cfg.Restart, "restart"),
		Quit:       bind(cfg.Quit, "quit"),
		Screenshot: bind(cfg.Screenshot, "screenshot"),
	}
}

// DefaultKeyMap returns the bindings of the default config.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.Default().Keys)
}

// helpKeys shows at most the first two key names, e.g. "up/w".
func helpKeys(keys []string) string {
	if len(keys) > 2 {
		keys = keys[:2]
	}
	return strings.Join(keys, "/")
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pause, k.Restart, k.Screenshot, k.Quit},
	}
}

// Action translates a key message to a game action.
// Screenshot is not a game action and maps to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}
