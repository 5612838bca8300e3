package canvas_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridlab/canvas"
	"github.com/katalvlaran/gridlab/geom"
)

func pt(x, y int) geom.Point { return geom.Point{X: x, Y: y} }

// TestDrawAndLines draws a few symbols and prints them back.
func TestDrawAndLines(t *testing.T) {
	c := canvas.New(geom.Extent{Min: pt(10, 5), Max: pt(13, 7)})
	require.True(t, c.Draw('#', pt(10, 5)))
	require.True(t, c.Draw('o', pt(13, 7)))
	assert.False(t, c.Draw('x', pt(14, 7)), "outside draws are ignored")

	want := []string{
		"#...",
		"....",
		"...o",
	}
	if diff := cmp.Diff(want, c.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}

	r, ok := c.At(pt(13, 7))
	require.True(t, ok)
	assert.Equal(t, 'o', r)
	_, ok = c.At(pt(0, 0))
	assert.False(t, ok)
}

// TestFrame clips the frame to the canvas.
func TestFrame(t *testing.T) {
	c := canvas.New(geom.Extent{Min: pt(0, 0), Max: pt(4, 4)})
	c.Draw('#', pt(2, 2))

	assert.Equal(t, []string{".#", ".."}, c.Frame(geom.Extent{Min: pt(1, 2), Max: pt(2, 3)}))
	assert.Equal(t, []string{"...", "#.."}, c.Frame(geom.Extent{Min: pt(2, 1), Max: pt(9, 2)}))
	assert.Nil(t, c.Frame(geom.Extent{Min: pt(7, 7), Max: pt(9, 9)}))
}

type cell struct {
	r     rune
	style tcell.Style
}

// recorder is a Screen that remembers what was painted.
type recorder map[geom.Point]cell

func (rec recorder) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	rec[pt(x, y)] = cell{r: primary, style: style}
}

// TestPaint offsets the canvas and applies the palette.
func TestPaint(t *testing.T) {
	c := canvas.New(geom.Extent{Min: pt(100, 0), Max: pt(101, 0)})
	c.Draw('#', pt(100, 0))

	pal := canvas.DefaultPalette()
	rec := recorder{}
	c.Paint(rec, 3, 1, pal)

	require.Len(t, rec, 2)
	assert.Equal(t, cell{r: '#', style: pal.Style('#')}, rec[pt(3, 1)])
	assert.Equal(t, cell{r: '.', style: pal.Default}, rec[pt(4, 1)])
}
