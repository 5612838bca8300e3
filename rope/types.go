package rope

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridlab/geom"
)

var (
	// ErrParse indicates a move line that does not read "<U|D|L|R> <count>".
	ErrParse = errors.New("rope: malformed move")
	// ErrKnots indicates a rope with fewer than one knot.
	ErrKnots = errors.New("rope: a rope needs at least one knot")
)

// Direction is one of the four unit moves.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var deltas = [...]geom.Point{
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

// Delta returns the unit offset of d.
func (d Direction) Delta() geom.Point { return deltas[d] }

// String returns the input letter of d.
func (d Direction) String() string {
	switch d {
	case Up:
		return "U"
	case Down:
		return "D"
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection maps an input letter to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "U":
		return Up, nil
	case "D":
		return Down, nil
	case "L":
		return Left, nil
	case "R":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: unknown direction %q", ErrParse, s)
}

// Move is one input instruction: Count unit steps towards Dir.
type Move struct {
	Dir   Direction
	Count int
}
