package beacon

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"regexp"
	"strconv"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridlab/geom"
	"github.com/katalvlaran/gridlab/interval"
)

var (
	// ErrParse indicates a sensor line in an unexpected format.
	ErrParse = errors.New("beacon: malformed sensor report")
	// ErrNotFound indicates the search area has no uncovered position.
	ErrNotFound = errors.New("beacon: no uncovered position in area")
	// ErrAmbiguous indicates the search area has more than one uncovered position.
	ErrAmbiguous = errors.New("beacon: more than one uncovered position in area")
)

// TuningMultiplier scales X in TuningFrequency.
const TuningMultiplier = 4000000

var sensorRx = regexp.MustCompile(`^Sensor at x=(-?\d+), y=(-?\d+): closest beacon is at x=(-?\d+), y=(-?\d+)$`)

// Sensor is a sensor position, its closest beacon and its coverage radius.
type Sensor struct {
	Pos    geom.Point
	Beacon geom.Point
	Radius int
}

// NewSensor builds a Sensor whose radius reaches exactly to beacon.
func NewSensor(pos, beacon geom.Point) Sensor {
	return Sensor{Pos: pos, Beacon: beacon, Radius: pos.Manhattan(beacon)}
}

// Parse reads one sensor report per non-blank line.
func Parse(lines []string) ([]Sensor, error) {
	sensors := make([]Sensor, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := sensorRx.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrParse, i+1, line)
		}
		var v [4]int
		for j := range v {
			n, err := strconv.Atoi(m[j+1])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrParse, i+1, err)
			}
			v[j] = n
		}
		sensors = append(sensors, NewSensor(geom.Point{X: v[0], Y: v[1]}, geom.Point{X: v[2], Y: v[3]}))
	}
	return sensors, nil
}

// Covers reports whether p lies within the sensor's range.
func (s Sensor) Covers(p geom.Point) bool {
	return s.Pos.Manhattan(p) <= s.Radius
}

// Scan intersects the sensor's range with row y.
func (s Sensor) Scan(y int) (interval.Interval, bool) {
	reach := s.Radius - geom.Abs(s.Pos.Y-y)
	if reach < 0 {
		return interval.Interval{}, false
	}
	return interval.Interval{Start: s.Pos.X - reach, End: s.Pos.X + reach}, true
}

// Row yields the merged ranges of row y covered by any sensor.
func Row(sensors []Sensor, y int) iter.Seq[interval.Interval] {
	return interval.Merge(rowScans(sensors, y))
}

// ExcludedOnRow counts positions on row y where no beacon can be: covered
// positions minus the known sensors and beacons sitting on that row.
func ExcludedOnRow(sensors []Sensor, y int) int {
	covered := interval.MergeAll(rowScans(sensors, y))
	occupied := mapset.New[geom.Point]()
	for _, s := range sensors {
		for _, p := range []geom.Point{s.Pos, s.Beacon} {
			if p.Y == y && inAny(covered, p.X) {
				occupied.Put(p)
			}
		}
	}
	total := 0
	for _, i := range covered {
		total += i.Len()
	}
	return total - occupied.Size()
}

func rowScans(sensors []Sensor, y int) []interval.Interval {
	scans := make([]interval.Interval, 0, len(sensors))
	for _, s := range sensors {
		if i, ok := s.Scan(y); ok {
			scans = append(scans, i)
		}
	}
	return scans
}

func inAny(intervals []interval.Interval, x int) bool {
	for _, i := range intervals {
		if i.Contains(x) {
			return true
		}
	}
	return false
}

// Gap is an uncovered run of positions on row Y.
type Gap struct {
	Y    int
	Span interval.Interval
}

// FindGaps yields, row by row, every run of positions inside area that no
// sensor covers.
func FindGaps(sensors []Sensor, area geom.Extent) iter.Seq[Gap] {
	return func(yield func(Gap) bool) {
		for y := area.Min.Y; y <= area.Max.Y; y++ {
			if !rowGaps(sensors, y, area, yield) {
				return
			}
		}
	}
}

// rowGaps yields the uncovered runs of row y clipped to area. It returns
// false if yield asked to stop.
func rowGaps(sensors []Sensor, y int, area geom.Extent, yield func(Gap) bool) bool {
	cursor := area.Min.X
	for i := range Row(sensors, y) {
		if i.End < cursor {
			continue
		}
		if i.Start > area.Max.X {
			break
		}
		if i.Start > cursor {
			if !yield(Gap{Y: y, Span: interval.Interval{Start: cursor, End: i.Start - 1}}) {
				return false
			}
		}
		cursor = i.End + 1
	}
	if cursor <= area.Max.X {
		return yield(Gap{Y: y, Span: interval.Interval{Start: cursor, End: area.Max.X}})
	}
	return true
}

// Locate returns the only uncovered position inside area.
func Locate(sensors []Sensor, area geom.Extent) (geom.Point, error) {
	return LocateContext(context.Background(), sensors, area)
}

// LocateContext is Locate with cancellation, checked once per row.
func LocateContext(ctx context.Context, sensors []Sensor, area geom.Extent) (geom.Point, error) {
	var (
		found []geom.Point
		err   error
	)
	collect := func(g Gap) bool {
		if g.Span.Len() > 1 || len(found) > 0 {
			err = fmt.Errorf("%w: row %d span %v", ErrAmbiguous, g.Y, g.Span)
			return false
		}
		found = append(found, geom.Point{X: g.Span.Start, Y: g.Y})
		return true
	}
	for y := area.Min.Y; y <= area.Max.Y; y++ {
		select {
		case <-ctx.Done():
			return geom.Point{}, ctx.Err()
		default:
		}
		if !rowGaps(sensors, y, area, collect) {
			return geom.Point{}, err
		}
	}
	if len(found) == 0 {
		return geom.Point{}, ErrNotFound
	}
	return found[0], nil
}

// TuningFrequency encodes a beacon position as x*4000000 + y.
func TuningFrequency(p geom.Point) int {
	return p.X*TuningMultiplier + p.Y
}
