package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Layout constants for terminal rendering.
const (
	cellWidth = 2 // Terminal columns per grid cell, keeps cells roughly square
	hudHeight = 2 // Status line plus separator
)

// Theme assigns colors to the drawn elements.
type Theme struct {
	Head   core.Color
	Body   core.Color
	Apple  core.Color
	Grid   core.Color
	Border core.Color
	Text   core.Color
}

// RenderOptions controls how snapshots are drawn.
type RenderOptions struct {
	Theme    Theme
	ShowGrid bool
}

// DefaultRenderOptions mirrors the classic look: green snake, red apple.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Theme: Theme{
			Head:   core.ColorBrightGreen,
			Body:   core.ColorGreen,
			Apple:  core.ColorRed,
			Grid:   core.ColorGray,
			Border: core.ColorWhite,
			Text:   core.ColorBrightRed,
		},
		ShowGrid: true,
	}
}

// RequiredSize returns the smallest screen that fits the board, its frame
// and the HUD.
func RequiredSize(b Board) (w, h int) {
	return b.Cols()*cellWidth + 2, b.Rows() + 2 + hudHeight
}

// Draw renders a snapshot into dst. It only reads the snapshot.
func Draw(dst *core.Screen, snap Snapshot, opts RenderOptions) {
	dst.Clear()
	theme := opts.Theme

	drawHUD(dst, snap, theme)

	w, h := RequiredSize(snap.Board)
	if dst.Width() < w || dst.Height() < h {
		drawOverlay(dst, theme.Text,
			"Window too small",
			fmt.Sprintf("Need %dx%d, have %dx%d", w, h, dst.Width(), dst.Height()))
		return
	}

	frame := core.NewRect((dst.Width()-w)/2, hudHeight, w, snap.Board.Rows()+2)
	dst.DrawBox(frame, theme.Border)

	// cellAt maps a grid cell to the left terminal column of its glyph.
	cellAt := func(p Point) (int, int) {
		return frame.X + 1 + p.X*cellWidth, frame.Y + 1 + p.Y
	}

	if opts.ShowGrid {
		for y := 0; y < snap.Board.Rows(); y++ {
			for x := 0; x < snap.Board.Cols(); x++ {
				sx, sy := cellAt(Point{X: x, Y: y})
				dst.SetColored(sx, sy, '·', theme.Grid)
			}
		}
	}

	if snap.Apple.X >= 0 && snap.Apple.Y >= 0 {
		sx, sy := cellAt(snap.Apple)
		dst.DrawText(sx, sy, "()", theme.Apple)
	}

	// Tail first so the head wins when segments overlap.
	for i := len(snap.Segments) - 1; i >= 0; i-- {
		sx, sy := cellAt(snap.Segments[i])
		if i == 0 {
			dst.DrawText(sx, sy, "██", theme.Head)
		} else {
			dst.DrawText(sx, sy, "▓▓", theme.Body)
		}
	}

	switch {
	case !snap.Running:
		drawOverlay(dst, theme.Text,
			"Game Over!",
			fmt.Sprintf("Score: %d", snap.Score),
			"Press R to restart")
	case snap.Paused:
		drawOverlay(dst, theme.Text, "Paused", "Press P to continue")
	}
}

// drawHUD draws the status line and separator.
func drawHUD(dst *core.Screen, snap Snapshot, theme Theme) {
	dst.DrawText(1, 0, fmt.Sprintf("Snake — Score: %d", snap.Score), theme.Text)

	right := fmt.Sprintf("Length: %d  Tick: %d ", snap.Len(), snap.Tick)
	dst.DrawText(dst.Width()-len(right), 0, right, core.ColorDefault)

	dst.DrawHLine(0, 1, dst.Width(), '─', theme.Border)
}

// drawOverlay draws a framed box with centered lines in the middle of dst.
func drawOverlay(dst *core.Screen, c core.Color, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}

	box := dst.Bounds().Centered(maxLen+4, len(lines)*2+1)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)

	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i*2, l, c)
	}
}
