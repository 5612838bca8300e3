package canvas

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridlab/geom"
)

// Blank is the symbol of an empty position.
const Blank = '.'

// Drawable is anything that can render itself onto a Canvas.
type Drawable interface {
	Render(c *Canvas)
}

// Canvas is a character grid addressed by world coordinates.
type Canvas struct {
	extent geom.Extent
	cells  [][]rune
}

// New returns a blank canvas covering e.
func New(e geom.Extent) *Canvas {
	cells := make([][]rune, e.Height())
	for y := range cells {
		row := make([]rune, e.Width())
		for x := range row {
			row[x] = Blank
		}
		cells[y] = row
	}
	return &Canvas{extent: e, cells: cells}
}

// Extent returns the area the canvas covers.
func (c *Canvas) Extent() geom.Extent { return c.extent }

// Draw puts symbol at p. Points outside the canvas are ignored and
// reported with false.
func (c *Canvas) Draw(symbol rune, p geom.Point) bool {
	if !c.extent.Contains(p) {
		return false
	}
	c.cells[p.Y-c.extent.Min.Y][p.X-c.extent.Min.X] = symbol
	return true
}

// At returns the symbol at p.
func (c *Canvas) At(p geom.Point) (rune, bool) {
	if !c.extent.Contains(p) {
		return 0, false
	}
	return c.cells[p.Y-c.extent.Min.Y][p.X-c.extent.Min.X], true
}

// Lines prints the whole canvas, top row first.
func (c *Canvas) Lines() []string {
	return c.Frame(c.extent)
}

// Frame prints the part of the canvas inside f. Parts of f outside the
// canvas are clipped.
func (c *Canvas) Frame(f geom.Extent) []string {
	minX, minY := max(f.Min.X, c.extent.Min.X), max(f.Min.Y, c.extent.Min.Y)
	maxX, maxY := min(f.Max.X, c.extent.Max.X), min(f.Max.Y, c.extent.Max.Y)
	if minX > maxX || minY > maxY {
		return nil
	}
	out := make([]string, 0, maxY-minY+1)
	for y := minY; y <= maxY; y++ {
		row := c.cells[y-c.extent.Min.Y]
		out = append(out, string(row[minX-c.extent.Min.X:maxX-c.extent.Min.X+1]))
	}
	return out
}

// Screen is the drawing surface Paint writes to; tcell.Screen satisfies it.
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Palette maps symbols to terminal styles. Unlisted symbols use Default.
type Palette struct {
	Default tcell.Style
	Styles  map[rune]tcell.Style
}

// DefaultPalette colors rock, sand, source and path symbols.
func DefaultPalette() Palette {
	return Palette{
		Default: tcell.StyleDefault.Foreground(tcell.ColorGray),
		Styles: map[rune]tcell.Style{
			'#': tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
			'o': tcell.StyleDefault.Foreground(tcell.ColorYellow),
			'+': tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
			'*': tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
		},
	}
}

// Style returns the style for symbol.
func (p Palette) Style(symbol rune) tcell.Style {
	if s, ok := p.Styles[symbol]; ok {
		return s
	}
	return p.Default
}

// Paint copies the canvas onto s with its top-left corner at (left, top).
func (c *Canvas) Paint(s Screen, left, top int, pal Palette) {
	for y, row := range c.cells {
		for x, r := range row {
			s.SetContent(left+x, top+y, r, nil, pal.Style(r))
		}
	}
}
