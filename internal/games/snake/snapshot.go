package snake

import "slices"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot is an immutable view of the game for rendering, determinism
// testing and the sim command.
type Snapshot struct {
	Tick      uint64        `yaml:"tick"`
	Board     Board         `yaml:"board"`
	Segments  []Point       `yaml:"segments,flow"` // Head first
	Apple     Point         `yaml:"apple,flow"`
	Score     int           `yaml:"score"`
	Direction Direction     `yaml:"direction"`
	Running   bool          `yaml:"running"`
	Paused    bool          `yaml:"paused"`
	State     GameStateType `yaml:"state"`
}

// Snapshot returns a copy of the current state. Later ticks do not
// affect the returned value.
func (e *Engine) Snapshot() Snapshot {
	state := StatePlaying
	if !e.running {
		state = StateGameOver
	}
	return Snapshot{
		Tick:      e.ticks,
		Board:     e.board,
		Segments:  slices.Clone(e.snake),
		Apple:     e.apple,
		Score:     e.score,
		Direction: e.steer.current(),
		Running:   e.running,
		State:     state,
	}
}

// Head returns the head cell.
func (s Snapshot) Head() Point {
	if len(s.Segments) == 0 {
		return Point{}
	}
	return s.Segments[0]
}

// Len returns the number of segments.
func (s Snapshot) Len() int {
	return len(s.Segments)
}
