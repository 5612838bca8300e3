package rope

import (
	"fmt"
	"iter"
	"regexp"
	"strconv"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridlab/geom"
)

var moveRx = regexp.MustCompile(`^([UDLR]) (\d+)$`)

// ParseMoves reads one Move per non-blank line.
func ParseMoves(lines []string) ([]Move, error) {
	moves := make([]Move, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := moveRx.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrParse, i+1, line)
		}
		dir, err := ParseDirection(m[1])
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(m[2])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: line %d: bad count %q", ErrParse, i+1, m[2])
		}
		moves = append(moves, Move{Dir: dir, Count: n})
	}
	return moves, nil
}

// Steps expands moves into unit steps.
func Steps(moves []Move) iter.Seq[Direction] {
	return func(yield func(Direction) bool) {
		for _, m := range moves {
			for range m.Count {
				if !yield(m.Dir) {
					return
				}
			}
		}
	}
}

// RecordTail replays steps on r and returns every position the tail
// occupied after a step.
func RecordTail(r *Rope, steps iter.Seq[Direction]) mapset.Set[geom.Point] {
	visited := mapset.New[geom.Point]()
	for d := range steps {
		r.Step(d)
		visited.Put(r.Tail())
	}
	return visited
}

// CountTailPositions builds a fresh rope of n knots, replays moves and
// returns the number of distinct tail positions.
func CountTailPositions(n int, moves []Move) (int, error) {
	r, err := New(n)
	if err != nil {
		return 0, err
	}
	return RecordTail(r, Steps(moves)).Size(), nil
}
