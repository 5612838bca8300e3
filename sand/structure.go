package sand

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridlab/geom"
)

// Structure is a rock path: consecutive vertices joined by horizontal or
// vertical segments. A single vertex is a single rock.
type Structure struct {
	Vertices []geom.Point
}

// ParseStructure reads "x1,y1 -> x2,y2 -> ...".
func ParseStructure(line string) (Structure, error) {
	parts := strings.Split(strings.TrimSpace(line), " -> ")
	s := Structure{Vertices: make([]geom.Point, 0, len(parts))}
	for _, part := range parts {
		xs, ys, ok := strings.Cut(part, ",")
		if !ok {
			return Structure{}, fmt.Errorf("%w: vertex %q", ErrParse, part)
		}
		x, errX := strconv.Atoi(strings.TrimSpace(xs))
		y, errY := strconv.Atoi(strings.TrimSpace(ys))
		if errX != nil || errY != nil {
			return Structure{}, fmt.Errorf("%w: vertex %q", ErrParse, part)
		}
		s.Vertices = append(s.Vertices, geom.Point{X: x, Y: y})
	}
	for i := 1; i < len(s.Vertices); i++ {
		a, b := s.Vertices[i-1], s.Vertices[i]
		if a.X != b.X && a.Y != b.Y {
			return Structure{}, fmt.Errorf("%w: diagonal segment %v -> %v", ErrParse, a, b)
		}
	}
	return s, nil
}

// ParseStructures reads one structure per non-blank line.
func ParseStructures(lines []string) ([]Structure, error) {
	out := make([]Structure, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		s, err := ParseStructure(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// Cells yields every rock position of s. Shared corners are yielded once.
func (s Structure) Cells() iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		if len(s.Vertices) == 0 {
			return
		}
		if !yield(s.Vertices[0]) {
			return
		}
		for i := 1; i < len(s.Vertices); i++ {
			cur, end := s.Vertices[i-1], s.Vertices[i]
			step := geom.Point{X: sign(end.X - cur.X), Y: sign(end.Y - cur.Y)}
			for cur != end {
				cur = cur.Add(step)
				if !yield(cur) {
					return
				}
			}
		}
	}
}

// Extent returns the bounding box of s; false for an empty structure.
func (s Structure) Extent() (geom.Extent, bool) {
	return geom.Bounds(s.Vertices...)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// totalExtent is the bounding box of all structures.
func totalExtent(structures []Structure) (geom.Extent, bool) {
	var (
		total geom.Extent
		found bool
	)
	for _, s := range structures {
		e, ok := s.Extent()
		if !ok {
			continue
		}
		if !found {
			total, found = e, true
			continue
		}
		total = total.Union(e)
	}
	return total, found
}

// WithFloor returns structures plus a horizontal floor two rows below the
// lowest rock (or below source when there is no rock). The floor reaches far
// enough left and right of source that no grain can fall past its ends.
func WithFloor(structures []Structure, source geom.Point) []Structure {
	lowest := source.Y
	if e, ok := totalExtent(structures); ok {
		lowest = max(lowest, e.Max.Y)
	}
	y := lowest + 2
	reach := y - source.Y + 1
	floor := Structure{Vertices: []geom.Point{{X: source.X - reach, Y: y}, {X: source.X + reach, Y: y}}}

	out := make([]Structure, len(structures), len(structures)+1)
	copy(out, structures)
	return append(out, floor)
}
