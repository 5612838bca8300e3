// Package interval merges closed integer intervals with a sweep line.
//
// Two intervals merge when they overlap or touch (the gap between them is at
// most one, so [1,3] and [4,6] merge into [1,6]). Merge sorts its input by
// start and folds left to right, emitting disjoint, non-adjacent intervals in
// ascending order.
//
// Merge returns an iter.Seq that sorts a private copy each time it is ranged
// over, so the sequence is restartable and leaves the input untouched.
//
// Complexity: O(n log n) time, O(n) memory.
package interval
