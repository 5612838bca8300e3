package interval

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrEmpty is returned when at least one interval was required.
var ErrEmpty = errors.New("interval: empty interval set")

// Interval is the closed range [Start, End].
type Interval struct {
	Start, End int
}

// Len returns the number of integer points in i.
func (i Interval) Len() int { return i.End - i.Start + 1 }

// Contains reports whether x lies in i.
func (i Interval) Contains(x int) bool { return x >= i.Start && x <= i.End }

// String formats i as "[start,end]".
func (i Interval) String() string { return fmt.Sprintf("[%d,%d]", i.Start, i.End) }

// Union returns the enclosing interval of i and o when they overlap or are
// adjacent; false otherwise.
func (i Interval) Union(o Interval) (Interval, bool) {
	if min(i.End, o.End)+1 < max(i.Start, o.Start) {
		return Interval{}, false
	}
	return Interval{Start: min(i.Start, o.Start), End: max(i.End, o.End)}, true
}

func compare(a, b Interval) int {
	if c := cmp.Compare(a.Start, b.Start); c != 0 {
		return c
	}
	return cmp.Compare(a.End, b.End)
}

// Merge yields the disjoint union of intervals in ascending start order.
// An empty input yields nothing.
func Merge(intervals []Interval) iter.Seq[Interval] {
	return func(yield func(Interval) bool) {
		if len(intervals) == 0 {
			return
		}
		sorted := slices.Clone(intervals)
		slices.SortFunc(sorted, compare)

		current := sorted[0]
		for _, next := range sorted[1:] {
			if merged, ok := current.Union(next); ok {
				current = merged
				continue
			}
			if !yield(current) {
				return
			}
			current = next
		}
		yield(current)
	}
}

// MergeAll collects Merge into a slice.
func MergeAll(intervals []Interval) []Interval {
	return slices.Collect(Merge(intervals))
}

// Span returns the single interval enclosing all of intervals.
func Span(intervals []Interval) (Interval, error) {
	if len(intervals) == 0 {
		return Interval{}, ErrEmpty
	}
	s := intervals[0]
	for _, i := range intervals[1:] {
		s.Start, s.End = min(s.Start, i.Start), max(s.End, i.End)
	}
	return s, nil
}

// Coverage returns the total number of points in a disjoint sequence.
func Coverage(seq iter.Seq[Interval]) int {
	total := 0
	for i := range seq {
		total += i.Len()
	}
	return total
}
