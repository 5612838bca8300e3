package heightmap

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/gridlab/geom"
)

// Grid is an immutable rectangular elevation map.
type Grid struct {
	Width, Height int
	cells         [][]Cell
	offsets       []geom.Point
}

// Parse builds a Grid from rows of elevation codes. Surrounding whitespace
// is trimmed and trailing blank lines are ignored.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrParse for bad input.
func Parse(lines []string) (*Grid, error) {
	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, strings.TrimSpace(line))
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([][]Cell, h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, y, len(row), w)
		}
		cells[y] = make([]Cell, w)
		for x := 0; x < w; x++ {
			code := row[x]
			if !validCode(code) {
				return nil, fmt.Errorf("%w: %q at row %d column %d", ErrParse, code, y, x)
			}
			cells[y][x] = Cell{Pos: geom.Point{X: x, Y: y}, Code: code}
		}
	}

	return &Grid{
		Width:  w,
		Height: h,
		cells:  cells,
		// down, up, right, left
		offsets: []geom.Point{{X: 0, Y: 1}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: -1, Y: 0}},
	}, nil
}

func validCode(c byte) bool {
	return (c >= 'a' && c <= 'z') || c == StartCode || c == TargetCode
}

// InBounds reports whether p lies within the grid.
func (g *Grid) InBounds(p geom.Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the cell at p; false if p is outside the grid.
func (g *Grid) At(p geom.Point) (Cell, bool) {
	if !g.InBounds(p) {
		return Cell{}, false
	}
	return g.cells[p.Y][p.X], true
}

// Cells yields every cell in row-major order.
func (g *Grid) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, row := range g.cells {
			for _, c := range row {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// Find returns the first cell (row-major) carrying code.
func (g *Grid) Find(code byte) (Cell, error) {
	for c := range g.Cells() {
		if c.Code == code {
			return c, nil
		}
	}
	return Cell{}, fmt.Errorf("%w: %q", ErrNoCell, code)
}

// Start returns the 'S' cell.
func (g *Grid) Start() (Cell, error) { return g.Find(StartCode) }

// Target returns the 'E' cell.
func (g *Grid) Target() (Cell, error) { return g.Find(TargetCode) }

// neighbors yields the in-bounds orthogonal neighbors of p.
func (g *Grid) neighbors(p geom.Point) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, d := range g.offsets {
			if c, ok := g.At(p.Add(d)); ok {
				if !yield(c) {
					return
				}
			}
		}
	}
}
