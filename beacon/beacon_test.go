package beacon_test

import (
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridlab/beacon"
	"github.com/katalvlaran/gridlab/geom"
	"github.com/katalvlaran/gridlab/interval"
)

const example = `Sensor at x=2, y=18: closest beacon is at x=-2, y=15
Sensor at x=9, y=16: closest beacon is at x=10, y=16
Sensor at x=13, y=2: closest beacon is at x=15, y=3
Sensor at x=12, y=14: closest beacon is at x=10, y=16
Sensor at x=10, y=20: closest beacon is at x=10, y=16
Sensor at x=14, y=17: closest beacon is at x=10, y=16
Sensor at x=8, y=7: closest beacon is at x=2, y=10
Sensor at x=2, y=0: closest beacon is at x=2, y=10
Sensor at x=0, y=11: closest beacon is at x=2, y=10
Sensor at x=20, y=14: closest beacon is at x=25, y=17
Sensor at x=17, y=20: closest beacon is at x=21, y=22
Sensor at x=16, y=7: closest beacon is at x=15, y=3
Sensor at x=14, y=3: closest beacon is at x=15, y=3
Sensor at x=20, y=1: closest beacon is at x=15, y=3`

func exampleSensors(t *testing.T) []beacon.Sensor {
	t.Helper()
	sensors, err := beacon.Parse(strings.Split(example, "\n"))
	require.NoError(t, err)
	return sensors
}

// TestParse_Example reads all fourteen sensors.
func TestParse_Example(t *testing.T) {
	sensors := exampleSensors(t)
	require.Len(t, sensors, 14)
	assert.Contains(t, sensors, beacon.Sensor{Pos: geom.Point{X: 2, Y: 18}, Beacon: geom.Point{X: -2, Y: 15}, Radius: 7})
	assert.Contains(t, sensors, beacon.Sensor{Pos: geom.Point{X: 20, Y: 1}, Beacon: geom.Point{X: 15, Y: 3}, Radius: 7})
}

// TestParse_Errors rejects lines that are not sensor reports.
func TestParse_Errors(t *testing.T) {
	for _, line := range []string{
		"Sensor at x=2 y=18: closest beacon is at x=-2, y=15",
		"Sensor at x=a, y=1: closest beacon is at x=0, y=0",
		"hello",
	} {
		_, err := beacon.Parse([]string{line})
		assert.ErrorIs(t, err, beacon.ErrParse, "line %q", line)
	}
}

// TestSensor_Covers checks the diamond-shaped range.
func TestSensor_Covers(t *testing.T) {
	s := beacon.Sensor{Radius: 10}
	assert.True(t, s.Covers(geom.Point{}))
	assert.False(t, s.Covers(geom.Point{X: 4, Y: 7}))
	assert.True(t, s.Covers(geom.Point{X: -2, Y: -8}))
}

// TestSensor_Scan intersects the range with single rows.
func TestSensor_Scan(t *testing.T) {
	s := beacon.Sensor{Radius: 10}
	i, ok := s.Scan(5)
	require.True(t, ok)
	assert.Equal(t, interval.Interval{Start: -5, End: 5}, i)

	i, ok = s.Scan(-9)
	require.True(t, ok)
	assert.Equal(t, interval.Interval{Start: -1, End: 1}, i)

	_, ok = s.Scan(11)
	assert.False(t, ok)
}

// TestRow_Example merges the row-10 scans into a single range.
func TestRow_Example(t *testing.T) {
	sensors := exampleSensors(t)
	assert.Equal(t, []interval.Interval{{Start: -2, End: 24}}, slices.Collect(beacon.Row(sensors, 10)))
	assert.Equal(t, 26, beacon.ExcludedOnRow(sensors, 10))
}

// TestLocate_Example finds the distress beacon in the 0..20 square.
func TestLocate_Example(t *testing.T) {
	sensors := exampleSensors(t)
	area := geom.Extent{Max: geom.Point{X: 20, Y: 20}}

	gaps := slices.Collect(beacon.FindGaps(sensors, area))
	require.Len(t, gaps, 1)
	assert.Equal(t, beacon.Gap{Y: 11, Span: interval.Interval{Start: 14, End: 14}}, gaps[0])

	p, err := beacon.Locate(sensors, area)
	require.NoError(t, err)
	assert.Equal(t, geom.Point{X: 14, Y: 11}, p)
	assert.Equal(t, 56000011, beacon.TuningFrequency(p))
}

// TestLocate_Errors covers fully covered and under-covered areas.
func TestLocate_Errors(t *testing.T) {
	sensors := []beacon.Sensor{beacon.NewSensor(geom.Point{}, geom.Point{X: 5})}

	_, err := beacon.Locate(sensors, geom.Extent{Min: geom.Point{X: -1, Y: -1}, Max: geom.Point{X: 1, Y: 1}})
	assert.ErrorIs(t, err, beacon.ErrNotFound)

	_, err = beacon.Locate(sensors, geom.Extent{Max: geom.Point{X: 10, Y: 0}})
	assert.ErrorIs(t, err, beacon.ErrAmbiguous)

	gaps := slices.Collect(beacon.FindGaps(nil, geom.Extent{Max: geom.Point{X: 3, Y: 1}}))
	assert.Equal(t, []beacon.Gap{
		{Y: 0, Span: interval.Interval{Start: 0, End: 3}},
		{Y: 1, Span: interval.Interval{Start: 0, End: 3}},
	}, gaps)
}

// TestLocateContext_Cancelled stops before scanning any row.
func TestLocateContext_Cancelled(t *testing.T) {
	sensors := exampleSensors(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := beacon.LocateContext(ctx, sensors, geom.Extent{Max: geom.Point{X: 4000000, Y: 4000000}})
	assert.ErrorIs(t, err, context.Canceled)

	p, err := beacon.LocateContext(context.Background(), sensors, geom.Extent{Max: geom.Point{X: 20, Y: 20}})
	require.NoError(t, err)
	assert.Equal(t, geom.Point{X: 14, Y: 11}, p)
}
