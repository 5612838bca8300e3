package rope

import (
	"fmt"

	"github.com/katalvlaran/gridlab/geom"
)

// Rope is a chain of knots; knots[0] is the head, knots[len-1] the tail.
// Knot i follows knot i-1.
type Rope struct {
	knots []geom.Point
}

// New returns a rope of n knots, all at the origin.
func New(n int) (*Rope, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrKnots, n)
	}
	return &Rope{knots: make([]geom.Point, n)}, nil
}

// Len returns the number of knots.
func (r *Rope) Len() int { return len(r.knots) }

// Head returns the head position.
func (r *Rope) Head() geom.Point { return r.knots[0] }

// Tail returns the last knot's position.
func (r *Rope) Tail() geom.Point { return r.knots[len(r.knots)-1] }

// Knots returns a copy of all positions, head first.
func (r *Rope) Knots() []geom.Point {
	out := make([]geom.Point, len(r.knots))
	copy(out, r.knots)
	return out
}

// Step moves the head one unit towards d and lets the chain settle.
func (r *Rope) Step(d Direction) {
	r.knots[0] = r.knots[0].Add(d.Delta())
	for i := 1; i < len(r.knots); i++ {
		next, moved := follow(r.knots[i-1], r.knots[i])
		if !moved {
			return
		}
		r.knots[i] = next
	}
}

// follow returns where follower ends up after its leader moved.
func follow(leader, follower geom.Point) (geom.Point, bool) {
	dx := geom.Abs(leader.X - follower.X)
	dy := geom.Abs(leader.Y - follower.Y)
	switch {
	case dx == 2 && dy == 2:
		return geom.Point{X: (leader.X + follower.X) / 2, Y: (leader.Y + follower.Y) / 2}, true
	case dx == 2:
		return geom.Point{X: (leader.X + follower.X) / 2, Y: leader.Y}, true
	case dy == 2:
		return geom.Point{X: leader.X, Y: (leader.Y + follower.Y) / 2}, true
	default:
		return follower, false
	}
}
