package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Board dimensions in game units. The board is not configurable.
const (
	BoardWidth  = 600
	BoardHeight = 600
	CellSize    = 25
)

// Boundary selects when the head counts as having left the board.
type Boundary int

const (
	// BoundaryLegacy ends the game only once the head is past the far edge,
	// so the head may spend one tick on column Cols or row Rows.
	BoundaryLegacy Boundary = iota
	// BoundaryStrict ends the game as soon as the head leaves the grid.
	BoundaryStrict
)

func (b Boundary) String() string {
	switch b {
	case BoundaryLegacy:
		return "legacy"
	case BoundaryStrict:
		return "strict"
	default:
		return "unknown"
	}
}

// MarshalYAML encodes the boundary by name.
func (b Boundary) MarshalYAML() (any, error) {
	return b.String(), nil
}

// Board is the immutable play field geometry.
type Board struct {
	Width    int      `yaml:"width"`
	Height   int      `yaml:"height"`
	CellSize int      `yaml:"cell_size"`
	Boundary Boundary `yaml:"boundary"`
}

// NewBoard returns the standard 600x600 board with 25-unit cells.
func NewBoard(boundary Boundary) Board {
	return Board{
		Width:    BoardWidth,
		Height:   BoardHeight,
		CellSize: CellSize,
		Boundary: boundary,
	}
}

// Validate checks that width and height are positive multiples of the cell size.
func (b Board) Validate() error {
	if b.CellSize <= 0 {
		return fmt.Errorf("snake: cell size must be positive, got %d", b.CellSize)
	}
	if b.Width <= 0 || b.Width%b.CellSize != 0 {
		return fmt.Errorf("snake: width %d is not a positive multiple of %d", b.Width, b.CellSize)
	}
	if b.Height <= 0 || b.Height%b.CellSize != 0 {
		return fmt.Errorf("snake: height %d is not a positive multiple of %d", b.Height, b.CellSize)
	}
	return nil
}

// Cols returns the number of grid columns.
func (b Board) Cols() int {
	return b.Width / b.CellSize
}

// Rows returns the number of grid rows.
func (b Board) Rows() int {
	return b.Height / b.CellSize
}

// Grid returns the playable cells as a rectangle in grid coordinates.
func (b Board) Grid() core.Rect {
	return core.NewRect(0, 0, b.Cols(), b.Rows())
}

// InBounds reports whether the head may occupy p without ending the game.
func (b Board) InBounds(p Point) bool {
	if b.Boundary == BoundaryStrict {
		return b.Grid().Contains(p.X, p.Y)
	}
	// Pixel check x > width on the cell origin, i.e. column > Cols.
	return p.X >= 0 && p.X <= b.Cols() && p.Y >= 0 && p.Y <= b.Rows()
}
