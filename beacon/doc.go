// Package beacon reasons about sensors that each report their closest
// beacon on a 2D grid.
//
// A sensor at S whose closest beacon is at B covers the diamond of points
// within Manhattan distance |S-B| of S. No other beacon can lie inside it.
// Intersecting each diamond with a horizontal row gives one interval per
// sensor; interval.Merge turns those into the row's covered ranges.
//
// Input lines read:
//
//	Sensor at x=<int>, y=<int>: closest beacon is at x=<int>, y=<int>
//
// Queries:
//
//   - ExcludedOnRow: how many positions on a row cannot hold a beacon.
//   - FindGaps: uncovered runs inside a bounded search area.
//   - Locate: the single uncovered position of an area, and its
//     TuningFrequency. LocateContext checks the context once per row.
package beacon
