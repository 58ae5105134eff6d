// Package snake implements the Snake game: a pure state engine advanced one
// cell per tick, a renderer that draws its snapshots into a core.Screen, and
// the registry.Game adapter used by the terminal platform.
package snake

import (
	"math/rand"
	"slices"
)

// InitialLength is the number of segments a new snake starts with.
const InitialLength = 5

// startColumn is where the head of a new snake is placed.
const startColumn = InitialLength - 1

// Engine owns the state of one game. It is advanced by Tick and read through
// Snapshot. SetDirection may be called from another goroutine than Tick.
type Engine struct {
	board   Board
	rng     *rand.Rand
	snake   []Point // Head at index 0
	steer   steering
	apple   Point
	score   int
	running bool
	ticks   uint64
}

// NewEngine starts a new game on board with a seeded RNG.
// An invalid board falls back to the standard geometry.
func NewEngine(board Board, seed int64) *Engine {
	if board.Validate() != nil {
		board = NewBoard(board.Boundary)
	}

	e := &Engine{
		board:   board,
		rng:     rand.New(rand.NewSource(seed)),
		running: true,
	}

	row := board.Rows() / 2
	head := min(startColumn, board.Cols()-1)
	e.snake = make([]Point, 0, InitialLength)
	for i := range InitialLength {
		e.snake = append(e.snake, Point{X: head - i, Y: row})
	}
	e.steer.reset(DirRight)
	e.placeApple()

	return e
}

// SetDirection requests a turn for the next tick. A request that reverses
// the current direction is ignored and false is returned.
func (e *Engine) SetDirection(d Direction) bool {
	if !d.Valid() {
		return false
	}
	return e.steer.request(d)
}

// Tick advances the game by one cell. It is a no-op once the game has
// stopped. Returns whether the game is still running.
func (e *Engine) Tick() bool {
	if !e.running {
		return false
	}
	e.ticks++

	dir := e.steer.advance()

	prev := slices.Clone(e.snake)
	vacated := prev[len(prev)-1]

	e.snake[0] = prev[0].Step(dir)
	for i := 1; i < len(e.snake); i++ {
		e.snake[i] = prev[i-1]
	}

	if e.snake[0] == e.apple {
		e.score++
		// The new segment takes the cell the tail just left.
		e.snake = append(e.snake, vacated)
		e.placeApple()
	}

	if e.collided() {
		e.running = false
	}

	return e.running
}

// collided checks the head against the board edge and the rest of the body.
func (e *Engine) collided() bool {
	head := e.snake[0]
	if !e.board.InBounds(head) {
		return true
	}
	for i := 1; i < len(e.snake); i++ {
		if e.snake[i] == head {
			return true
		}
	}
	return false
}

// placeApple moves the apple to a random cell not covered by the snake.
// When the snake fills the grid the apple is parked off the board.
func (e *Engine) placeApple() {
	occupied := make(map[Point]bool, len(e.snake))
	for _, seg := range e.snake {
		occupied[seg] = true
	}

	var free []Point
	for y := 0; y < e.board.Rows(); y++ {
		for x := 0; x < e.board.Cols(); x++ {
			p := Point{X: x, Y: y}
			if !occupied[p] {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		e.apple = Point{X: -1, Y: -1}
		return
	}
	e.apple = free[e.rng.Intn(len(free))]
}

// Running reports whether the game is still in progress.
func (e *Engine) Running() bool { return e.running }

// Score returns the number of apples eaten.
func (e *Engine) Score() int { return e.score }

// Len returns the number of segments.
func (e *Engine) Len() int { return len(e.snake) }

// Head returns the head cell.
func (e *Engine) Head() Point { return e.snake[0] }

// Apple returns the apple cell.
func (e *Engine) Apple() Point { return e.apple }

// Ticks returns how many ticks have advanced the game.
func (e *Engine) Ticks() uint64 { return e.ticks }

// Direction returns the direction applied on the last tick.
func (e *Engine) Direction() Direction { return e.steer.current() }

// Board returns the geometry the engine runs on.
func (e *Engine) Board() Board { return e.board }
