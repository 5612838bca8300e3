package rope_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridlab/geom"
	"github.com/katalvlaran/gridlab/rope"
)

const example = `R 4
U 4
L 3
D 1
R 4
D 1
L 5
R 2`

const longerExample = `R 5
U 8
L 8
D 3
R 17
D 10
L 25
U 20`

func parse(t *testing.T, s string) []rope.Move {
	t.Helper()
	moves, err := rope.ParseMoves(strings.Split(s, "\n"))
	require.NoError(t, err)
	return moves
}

// TestParseMoves expands the sample into 24 unit steps.
func TestParseMoves(t *testing.T) {
	moves := parse(t, example)
	require.Len(t, moves, 8)
	assert.Equal(t, rope.Move{Dir: rope.Right, Count: 4}, moves[0])
	assert.Equal(t, rope.Move{Dir: rope.Down, Count: 1}, moves[3])

	steps := slices.Collect(rope.Steps(moves))
	assert.Len(t, steps, 24)
	assert.Equal(t, []rope.Direction{rope.Right, rope.Right, rope.Right, rope.Right, rope.Up}, steps[:5])
	assert.Equal(t, []rope.Direction{rope.Right, rope.Right}, steps[22:])
}

// TestParseMoves_Errors rejects unknown letters and bad counts.
func TestParseMoves_Errors(t *testing.T) {
	for _, line := range []string{"X 3", "R", "R -1", "R 0", "R3", "up 2"} {
		_, err := rope.ParseMoves([]string{line})
		assert.ErrorIs(t, err, rope.ErrParse, "line %q", line)
	}
	_, err := rope.ParseDirection("Q")
	assert.ErrorIs(t, err, rope.ErrParse)
}

// TestNew checks construction and the knot-count guard.
func TestNew(t *testing.T) {
	_, err := rope.New(0)
	assert.ErrorIs(t, err, rope.ErrKnots)

	r, err := rope.New(4)
	require.NoError(t, err)
	assert.Equal(t, 4, r.Len())
	assert.Equal(t, make([]geom.Point, 4), r.Knots())

	single, err := rope.New(1)
	require.NoError(t, err)
	single.Step(rope.Left)
	assert.Equal(t, geom.Point{X: -1}, single.Head())
	assert.Equal(t, single.Head(), single.Tail())
}

// TestStep_Example follows the first few sample steps knot by knot.
func TestStep_Example(t *testing.T) {
	r, err := rope.New(2)
	require.NoError(t, err)
	next, stop := iterPull(rope.Steps(parse(t, example)))
	defer stop()

	r.Step(next())
	assert.Equal(t, []geom.Point{{X: 1, Y: 0}, {X: 0, Y: 0}}, r.Knots())
	r.Step(next())
	assert.Equal(t, []geom.Point{{X: 2, Y: 0}, {X: 1, Y: 0}}, r.Knots())
	r.Step(next())
	r.Step(next())
	r.Step(next())
	assert.Equal(t, []geom.Point{{X: 4, Y: -1}, {X: 3, Y: 0}}, r.Knots())
	r.Step(next())
	assert.Equal(t, []geom.Point{{X: 4, Y: -2}, {X: 4, Y: -1}}, r.Knots())
}

// TestTailPositions checks the sample counts for short and long ropes.
func TestTailPositions(t *testing.T) {
	cases := []struct {
		name  string
		input string
		knots int
		want  int
	}{
		{"example/2", example, 2, 13},
		{"example/10", example, 10, 1},
		{"longer/10", longerExample, 10, 36},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := rope.CountTailPositions(c.knots, parse(t, c.input))
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

// TestLongerRopeVisitsLess compares tail coverage of 2 and 10 knots.
func TestLongerRopeVisitsLess(t *testing.T) {
	for _, input := range []string{example, longerExample} {
		moves := parse(t, input)
		short, err := rope.CountTailPositions(2, moves)
		require.NoError(t, err)
		long, err := rope.CountTailPositions(10, moves)
		require.NoError(t, err)
		assert.LessOrEqual(t, long, short)
	}
}

// TestStep_DistanceBound asserts that every linked pair is adjacent after
// each step.
func TestStep_DistanceBound(t *testing.T) {
	r, err := rope.New(10)
	require.NoError(t, err)
	for d := range rope.Steps(parse(t, longerExample)) {
		r.Step(d)
		knots := r.Knots()
		for i := 1; i < len(knots); i++ {
			require.LessOrEqual(t, knots[i-1].Chebyshev(knots[i]), 1, "knots %d,%d after %v", i-1, i, d)
		}
	}
}
