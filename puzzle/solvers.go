package puzzle

import (
	"context"
	"strconv"

	"github.com/katalvlaran/gridlab/beacon"
	"github.com/katalvlaran/gridlab/config"
	"github.com/katalvlaran/gridlab/heightmap"
	"github.com/katalvlaran/gridlab/rope"
	"github.com/katalvlaran/gridlab/sand"
)

func init() {
	Register(config.KindHeightmap, solveHeightmap)
	Register(config.KindRope, solveRope)
	Register(config.KindSand, solveSand)
	Register(config.KindBeacon, solveBeacon)
}

// solveHeightmap: fewest steps from S to E, then fewest steps from any
// lowest cell to E (searched backwards from E).
func solveHeightmap(ctx context.Context, _ config.Puzzle, lines []string) (Answer, error) {
	g, err := heightmap.Parse(lines)
	if err != nil {
		return Answer{}, err
	}
	start, err := g.Start()
	if err != nil {
		return Answer{}, err
	}
	target, err := g.Target()
	if err != nil {
		return Answer{}, err
	}

	up, err := heightmap.Search(g, start.Pos,
		heightmap.WithContext(ctx),
		heightmap.WithStop(func(c heightmap.Cell) bool { return c.Pos == target.Pos }),
	)
	if err != nil {
		return Answer{}, err
	}
	climb, err := up.Steps(target.Pos)
	if err != nil {
		return Answer{}, err
	}

	down, err := heightmap.Search(g, target.Pos,
		heightmap.WithContext(ctx),
		heightmap.WithMode(heightmap.Reverse),
		heightmap.WithStop(func(c heightmap.Cell) bool { return c.Elevation() == 0 }),
	)
	if err != nil {
		return Answer{}, err
	}
	low, ok := down.Halted()
	if !ok {
		return Answer{}, heightmap.ErrNoCell
	}
	hike, err := down.Steps(low.Pos)
	if err != nil {
		return Answer{}, err
	}
	return Answer{Parts: []string{strconv.Itoa(climb), strconv.Itoa(hike)}}, nil
}

// solveRope: distinct tail positions, one part per configured rope length.
func solveRope(_ context.Context, p config.Puzzle, lines []string) (Answer, error) {
	moves, err := rope.ParseMoves(lines)
	if err != nil {
		return Answer{}, err
	}
	knots := p.Knots
	if len(knots) == 0 {
		knots = config.DefaultKnots()
	}
	ans := Answer{Parts: make([]string, 0, len(knots))}
	for _, n := range knots {
		count, err := rope.CountTailPositions(n, moves)
		if err != nil {
			return Answer{}, err
		}
		ans.Parts = append(ans.Parts, strconv.Itoa(count))
	}
	return ans, nil
}

// solveSand: grains settled before one escapes, then grains settled with a
// floor until the source is blocked.
func solveSand(ctx context.Context, p config.Puzzle, lines []string) (Answer, error) {
	structures, err := sand.ParseStructures(lines)
	if err != nil {
		return Answer{}, err
	}
	source := sand.DefaultSource()
	if p.Source != nil {
		source = p.Source.Point()
	}

	open, err := sand.NewSimulation(sand.NewCave(source, structures),
		sand.WithContext(ctx), sand.WithStop(sand.Escaped))
	if err != nil {
		return Answer{}, err
	}
	escaped := open.Run()
	if err := open.Err(); err != nil {
		return Answer{}, err
	}

	floored, err := sand.NewSimulation(sand.NewCave(source, sand.WithFloor(structures, source)),
		sand.WithContext(ctx))
	if err != nil {
		return Answer{}, err
	}
	filled := floored.Run()
	if err := floored.Err(); err != nil {
		return Answer{}, err
	}
	return Answer{Parts: []string{strconv.Itoa(escaped), strconv.Itoa(filled)}}, nil
}

// solveBeacon: excluded positions on the configured row, then the tuning
// frequency of the single uncovered position in the search square.
func solveBeacon(ctx context.Context, p config.Puzzle, lines []string) (Answer, error) {
	sensors, err := beacon.Parse(lines)
	if err != nil {
		return Answer{}, err
	}
	row := config.DefaultRow
	if p.Row != nil {
		row = *p.Row
	}
	search := config.DefaultSearch()
	if p.Search != nil {
		search = *p.Search
	}

	excluded := beacon.ExcludedOnRow(sensors, row)
	pos, err := beacon.LocateContext(ctx, sensors, search.Extent())
	if err != nil {
		return Answer{}, err
	}
	return Answer{Parts: []string{strconv.Itoa(excluded), strconv.Itoa(beacon.TuningFrequency(pos))}}, nil
}
