package pacman

import "github.com/vovakirdan/grid-arcade/internal/core"

// WallMap is a static obstacle layout.
type WallMap interface {
	IsWall(p core.Point) bool
}

// ClassicMaze is the built-in open maze: a solid border plus a few interior
// segments laid out for a 15×15 grid.
type ClassicMaze struct {
	Width, Height int
}

// IsWall implements WallMap.
func (m ClassicMaze) IsWall(p core.Point) bool {
	x, y := p.X, p.Y
	if x == 0 || y == 0 || x == m.Width-1 || y == m.Height-1 {
		return true
	}
	switch {
	case (x == 3 || x == 11) && y >= 3 && y <= 5:
		return true
	case (x == 3 || x == 11) && y >= 9 && y <= 11:
		return true
	case (y == 3 || y == 11) && x >= 5 && x <= 9:
		return true
	case x == 7 && (y == 6 || y == 8):
		return true
	}
	return false
}

// LayoutMaze reads walls from text rows where '#' marks a wall.
// Cells past the end of a short row are walls.
type LayoutMaze struct {
	rows [][]rune
}

// NewLayoutMaze parses layout rows.
func NewLayoutMaze(rows []string) LayoutMaze {
	m := LayoutMaze{rows: make([][]rune, len(rows))}
	for i, r := range rows {
		m.rows[i] = []rune(r)
	}
	return m
}

// Size returns the bounding width and height of the layout.
func (m LayoutMaze) Size() (int, int) {
	w := 0
	for _, r := range m.rows {
		w = max(w, len(r))
	}
	return w, len(m.rows)
}

// IsWall implements WallMap.
func (m LayoutMaze) IsWall(p core.Point) bool {
	if p.Y < 0 || p.Y >= len(m.rows) {
		return true
	}
	row := m.rows[p.Y]
	if p.X < 0 || p.X >= len(row) {
		return true
	}
	return row[p.X] == '#'
}
