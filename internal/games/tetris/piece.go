package tetris

import "github.com/vovakirdan/grid-arcade/internal/core"

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
	kindCount
)

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "?"
	}
	return string("IOTSZJL"[k])
}

// Shape is a piece matrix; true marks a filled cell. Rows are top to bottom.
type Shape [][]bool

type tetromino struct {
	rows  []string
	color core.Color
}

var tetrominoes = [kindCount]tetromino{
	KindI: {[]string{"####"}, core.ColorCyan},
	KindO: {[]string{"##", "##"}, core.ColorYellow},
	KindT: {[]string{".#.", "###"}, core.ColorMagenta},
	KindS: {[]string{".##", "##."}, core.ColorGreen},
	KindZ: {[]string{"##.", ".##"}, core.ColorRed},
	KindJ: {[]string{"#..", "###"}, core.ColorBlue},
	KindL: {[]string{"..#", "###"}, core.ColorOrange},
}

// ShapeOf returns a fresh copy of the spawn shape of k.
func ShapeOf(k Kind) Shape {
	rows := tetrominoes[k].rows
	s := make(Shape, len(rows))
	for y, row := range rows {
		s[y] = make([]bool, len(row))
		for x, c := range row {
			s[y][x] = c == '#'
		}
	}
	return s
}

// ColorOf returns the display color of k.
func ColorOf(k Kind) core.Color {
	return tetrominoes[k].color
}

// Clone returns a deep copy of s.
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	for y := range s {
		c[y] = append([]bool(nil), s[y]...)
	}
	return c
}

// Rotate returns s turned clockwise: transpose, then reverse each row.
func (s Shape) Rotate() Shape {
	if len(s) == 0 {
		return Shape{}
	}
	rows, cols := len(s), len(s[0])
	r := make(Shape, cols)
	for i := 0; i < cols; i++ {
		r[i] = make([]bool, rows)
		for j := 0; j < rows; j++ {
			r[i][j] = s[rows-1-j][i]
		}
	}
	return r
}

// Cells returns the filled cells of s placed at origin.
func (s Shape) Cells(origin core.Point) []core.Point {
	var cells []core.Point
	for y, row := range s {
		for x, filled := range row {
			if filled {
				cells = append(cells, origin.Add(core.Pt(x, y)))
			}
		}
	}
	return cells
}

// Piece is the falling tetromino.
type Piece struct {
	Kind  Kind
	Shape Shape
	Pos   core.Point // top-left of the shape matrix
	Color core.Color
}

// Clone returns a deep copy of p.
func (p *Piece) Clone() *Piece {
	if p == nil {
		return nil
	}
	c := *p
	c.Shape = p.Shape.Clone()
	return &c
}

// Cells returns the board cells covered by p.
func (p *Piece) Cells() []core.Point {
	return p.Shape.Cells(p.Pos)
}
