package geom

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Vec is a 2D point or offset with signed integer components.
type Vec[T constraints.Signed] struct {
	X, Y T
}

// Point is the int-based Vec used across gridlab.
type Point = Vec[int]

// Abs returns |v|.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Add returns a+b.
func (a Vec[T]) Add(b Vec[T]) Vec[T] {
	return Vec[T]{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns a-b.
func (a Vec[T]) Sub(b Vec[T]) Vec[T] {
	return Vec[T]{X: a.X - b.X, Y: a.Y - b.Y}
}

// Manhattan returns |Δx| + |Δy| between a and b.
func (a Vec[T]) Manhattan(b Vec[T]) T {
	return Abs(a.X-b.X) + Abs(a.Y-b.Y)
}

// Chebyshev returns max(|Δx|, |Δy|) between a and b.
func (a Vec[T]) Chebyshev(b Vec[T]) T {
	return max(Abs(a.X-b.X), Abs(a.Y-b.Y))
}

// String formats the point as "x,y", the notation used by puzzle inputs.
func (a Vec[T]) String() string {
	return fmt.Sprintf("%d,%d", a.X, a.Y)
}

// Extent is an inclusive axis-aligned bounding box.
type Extent struct {
	Min, Max Point
}

// Bounds returns the smallest Extent containing every point.
// The second result is false when points is empty.
func Bounds(points ...Point) (Extent, bool) {
	if len(points) == 0 {
		return Extent{}, false
	}
	e := Extent{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		e = e.Include(p)
	}
	return e, true
}

// Include grows e just enough to contain p.
func (e Extent) Include(p Point) Extent {
	e.Min.X, e.Min.Y = min(e.Min.X, p.X), min(e.Min.Y, p.Y)
	e.Max.X, e.Max.Y = max(e.Max.X, p.X), max(e.Max.Y, p.Y)
	return e
}

// Union returns the smallest Extent containing both e and o.
func (e Extent) Union(o Extent) Extent {
	return e.Include(o.Min).Include(o.Max)
}

// Contains reports whether p lies inside e, borders included.
func (e Extent) Contains(p Point) bool {
	return p.X >= e.Min.X && p.X <= e.Max.X && p.Y >= e.Min.Y && p.Y <= e.Max.Y
}

// Width is the number of columns covered by e.
func (e Extent) Width() int { return e.Max.X - e.Min.X + 1 }

// Height is the number of rows covered by e.
func (e Extent) Height() int { return e.Max.Y - e.Min.Y + 1 }
