package snake

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Variant IDs registered with the platform.
const (
	IDClassic = "snake"
	IDStrict  = "snake_strict"
)

// Package-level render settings, applied to games created afterwards.
var renderOptions = DefaultRenderOptions()

// SetRenderOptions sets the theme and grid flag used by new games.
func SetRenderOptions(opts RenderOptions) {
	renderOptions = opts
}

// Game adapts Engine to the registry.Game contract: it turns input frames
// into direction requests, owns pause and restart, and renders snapshots.
type Game struct {
	boundary Boundary
	engine   *Engine
	seeds    *rand.Rand // Seeds for restarted games
	paused   bool
	opts     RenderOptions
}

// New creates a game with the classic boundary timing.
func New() *Game {
	return &Game{boundary: BoundaryLegacy, opts: renderOptions}
}

// NewStrict creates a game that ends as soon as the head leaves the grid.
func NewStrict() *Game {
	return &Game{boundary: BoundaryStrict, opts: renderOptions}
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDStrict, func() registry.Game {
		return NewStrict()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.boundary == BoundaryStrict {
		return IDStrict
	}
	return IDClassic
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.boundary == BoundaryStrict {
		return "Snake (strict walls)"
	}
	return "Snake"
}

// Reset starts a fresh game seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seeds = rand.New(rand.NewSource(cfg.Seed))
	g.engine = NewEngine(NewBoard(g.boundary), cfg.Seed)
	g.paused = false
}

// Step applies the input collected since the last tick and advances the
// engine once.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.engine == nil {
		g.Reset(core.DefaultConfig())
	}

	if !g.engine.Running() {
		if input.Has(core.ActionRestart) {
			g.engine = NewEngine(NewBoard(g.boundary), g.seeds.Int63())
			g.paused = false
		}
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, a := range input.Order {
		if d, ok := directionFor(a); ok {
			g.engine.SetDirection(d)
		}
	}

	running := g.engine.Tick()
	return core.StepResult{State: g.State(), Ended: !running}
}

// directionFor maps movement actions to directions.
func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return DirRight, false
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.engine == nil {
		dst.Clear()
		return
	}
	Draw(dst, g.Snapshot(), g.opts)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: !g.engine.Running(),
		Paused:   g.paused,
	}
}

// Snapshot returns the engine snapshot with the pause flag applied.
func (g *Game) Snapshot() Snapshot {
	snap := g.engine.Snapshot()
	snap.Paused = g.paused
	if g.paused && snap.Running {
		snap.State = StatePaused
	}
	return snap
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	snap := g.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Variant: %s\n", snap.Tick, snap.Score, g.ID())
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s\n", snap.Len(), snap.Direction)
	fmt.Fprintf(&b, "Head: (%d, %d), Apple: (%d, %d)\n", snap.Head().X, snap.Head().Y, snap.Apple.X, snap.Apple.Y)
	fmt.Fprintf(&b, "State: %s\n", snap.State)
	return b.String()
}
