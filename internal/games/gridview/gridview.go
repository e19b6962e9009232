// Package gridview draws grid-based games into a core.Screen: a HUD line,
// a framed board with two-column cells, and centered overlay boxes.
package gridview

import (
	"fmt"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// CellWidth is the number of screen columns used per grid cell, which keeps
// cells roughly square in a terminal.
const CellWidth = 2

// HUDHeight is the number of rows reserved above the board.
const HUDHeight = 2

// Board maps grid cells to screen positions.
type Board struct {
	X, Y int // Screen position of cell (0, 0)
	W, H int // Grid size in cells
}

// RequiredSize returns the screen size needed to show a w×h grid with frame and HUD.
func RequiredSize(w, h int) (int, int) {
	return w*CellWidth + 2, h + 2 + HUDHeight + 1
}

// Fit centers a w×h grid on the screen below the HUD.
// It returns false if the screen is too small.
func Fit(dst *core.Screen, w, h int) (Board, bool) {
	needW, needH := RequiredSize(w, h)
	if dst.Width() < needW || dst.Height() < needH {
		return Board{}, false
	}
	return Board{
		X: (dst.Width()-needW)/2 + 1,
		Y: HUDHeight + 1,
		W: w,
		H: h,
	}, true
}

// Frame draws the box around the board.
func (b Board) Frame(dst *core.Screen) {
	dst.DrawBox(core.NewRect(b.X-1, b.Y-1, b.W*CellWidth+2, b.H+2))
}

// Cell draws a glyph (up to CellWidth runes) into grid cell p.
func (b Board) Cell(dst *core.Screen, p core.Point, glyph string, c core.Color) {
	if p.X < 0 || p.X >= b.W || p.Y < 0 || p.Y >= b.H {
		return
	}
	x := b.X + p.X*CellWidth
	i := 0
	for _, r := range glyph {
		if i >= CellWidth {
			break
		}
		dst.SetColored(x+i, b.Y+p.Y, r, c)
		i++
	}
}

// Below returns the first screen row under the board frame.
func (b Board) Below() int {
	return b.Y + b.H + 1
}

// HUD draws a status line and separator at the top of the screen.
func HUD(dst *core.Screen, text string) {
	dst.DrawText(0, 0, text)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// Overlay draws a centered box with two lines of text.
func Overlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawBox(box)
	centered(dst, line1, box.Y+1)
	centered(dst, line2, box.Y+3)
}

// TooSmall replaces the screen contents with a resize hint.
func TooSmall(dst *core.Screen, w, h int) {
	needW, needH := RequiredSize(w, h)
	dst.Clear()
	centered(dst, "Window too small", dst.Height()/2-1)
	centered(dst, fmt.Sprintf("Need %dx%d", needW, needH), dst.Height()/2+1)
}

func centered(dst *core.Screen, text string, y int) {
	if y < 0 || y >= dst.Height() {
		return
	}
	dst.DrawTextCentered(y, text)
}
