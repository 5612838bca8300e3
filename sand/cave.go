package sand

import (
	"iter"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridlab/canvas"
	"github.com/katalvlaran/gridlab/geom"
)

// Cave is the world a simulation mutates: fixed rock plus every grain that
// has settled so far. Settled grains are never removed.
type Cave struct {
	source  geom.Point
	extent  geom.Extent
	rock    mapset.Set[geom.Point]
	sand    mapset.Set[geom.Point]
	settled []geom.Point
}

// NewCave builds a cave from rock structures with grains entering at source.
// The extent covers every structure and the source.
func NewCave(source geom.Point, structures []Structure) *Cave {
	c := &Cave{
		source: source,
		extent: geom.Extent{Min: source, Max: source},
		rock:   mapset.New[geom.Point](),
		sand:   mapset.New[geom.Point](),
	}
	if e, ok := totalExtent(structures); ok {
		c.extent = c.extent.Union(e)
	}
	for _, s := range structures {
		for p := range s.Cells() {
			c.rock.Put(p)
		}
	}
	return c
}

// Source returns where grains enter.
func (c *Cave) Source() geom.Point { return c.source }

// Extent returns the bounding box of the rock and the source.
func (c *Cave) Extent() geom.Extent { return c.extent }

// Bounds returns Extent grown to include every settled grain.
func (c *Cave) Bounds() geom.Extent {
	e := c.extent
	for _, p := range c.settled {
		e = e.Include(p)
	}
	return e
}

// Rock reports whether p is rock.
func (c *Cave) Rock(p geom.Point) bool { return c.rock.Has(p) }

// Sand reports whether a grain has settled at p.
func (c *Cave) Sand(p geom.Point) bool { return c.sand.Has(p) }

// Occupied reports whether p is rock or settled sand.
func (c *Cave) Occupied(p geom.Point) bool { return c.rock.Has(p) || c.sand.Has(p) }

// Count returns the number of settled grains.
func (c *Cave) Count() int { return len(c.settled) }

// Last returns the most recently settled grain.
func (c *Cave) Last() (geom.Point, bool) {
	if len(c.settled) == 0 {
		return geom.Point{}, false
	}
	return c.settled[len(c.settled)-1], true
}

// Settled yields grains in the order they came to rest.
func (c *Cave) Settled() iter.Seq[geom.Point] {
	return slices.Values(c.settled)
}

func (c *Cave) settle(p geom.Point) {
	c.sand.Put(p)
	c.settled = append(c.settled, p)
}

// Render draws the source, then rock, then sand onto cv.
func (c *Cave) Render(cv *canvas.Canvas) {
	cv.Draw(SourceSymbol, c.source)
	c.rock.Each(func(p geom.Point) {
		cv.Draw(RockSymbol, p)
	})
	for _, p := range c.settled {
		cv.Draw(SandSymbol, p)
	}
}

// Canvas returns a canvas covering Bounds with the cave rendered on it.
func (c *Cave) Canvas() *canvas.Canvas {
	cv := canvas.New(c.Bounds())
	c.Render(cv)
	return cv
}
