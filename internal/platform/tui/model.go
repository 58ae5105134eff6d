package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// helpHeight is the number of rows reserved below the game screen.
const helpHeight = 1

// Options are the optional collaborators of a Model.
type Options struct {
	Keys          KeyMap
	Logger        *log.Logger // nil discards logs
	ScreenshotDir string      // empty means ~/.snake/screenshots
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	shotDir    string
	inputFrame core.InputFrame
	gameState  core.GameState
	ticking    bool // Whether a TickMsg is in flight
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultTickInterval
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpHeight),
		config:     cfg,
		keys:       opts.Keys,
		help:       h,
		logger:     logger,
		shotDir:    opts.ScreenshotDir,
		inputFrame: core.NewInputFrame(),
		ticking:    true,
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "tick", m.config.TickInterval)
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	case core.ActionRestart:
		if m.gameState.GameOver && !m.ticking {
			return m.restart()
		}
		return m, nil
	case core.ActionPause:
		m.logger.Debug("pause toggled", "paused", !m.gameState.Paused)
	}

	m.inputFrame.Set(action)
	return m, nil
}

// restart starts a new game and re-arms the tick source.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.inputFrame.Clear()
	m.inputFrame.Set(core.ActionRestart)
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	m.gameState = result.State
	m.ticking = true
	m.logger.Info("game restarted", "game", m.game.ID())
	return m, tickCmd(m.config.TickInterval)
}

// handleResize processes window resize events. The board is fixed, so
// the game keeps running; only the buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpHeight)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game once. When the game ends no new tick is
// scheduled until a restart.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.ticking {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Ended {
		m.ticking = false
		m.logger.Info("game over", "game", m.game.ID(), "score", result.State.Score)
		if d, ok := m.game.(interface{ DebugState() string }); ok {
			m.logger.Debug("final state\n" + d.DebugState())
		}
		return m, nil
	}

	return m, tickCmd(m.config.TickInterval)
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	path, err := m.writeScreenshot()
	if err != nil {
		m.logger.Error("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func (m *Model) writeScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot locate home directory: %w", err)
		}
		dir = filepath.Join(home, ".snake", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		m.help.View(m.keys),
	)
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
