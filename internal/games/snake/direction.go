package snake

import (
	"fmt"
	"strings"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Point is a grid cell: column X, row Y.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Step returns the neighbouring cell in direction d.
func (p Point) Step(d Direction) Point {
	switch d {
	case DirUp:
		return Point{X: p.X, Y: p.Y - 1}
	case DirDown:
		return Point{X: p.X, Y: p.Y + 1}
	case DirLeft:
		return Point{X: p.X - 1, Y: p.Y}
	case DirRight:
		return Point{X: p.X + 1, Y: p.Y}
	}
	return p
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirRight && d <= DirUp
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// MarshalYAML encodes the direction by name.
func (d Direction) MarshalYAML() (any, error) {
	return d.String(), nil
}

// ParseDirection accepts full names and the u/d/l/r shorthands.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	}
	return DirRight, fmt.Errorf("snake: unknown direction %q", s)
}
