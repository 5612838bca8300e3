// Package heightmap finds fewest-step routes over an elevation grid.
//
// What
//
//   - Parse reads rows of elevation codes: 'a'..'z' (ranks 0..25), 'S' (the
//     start, lowest rank) and 'E' (the best-signal target, highest rank).
//   - Search runs a breadth-first traversal from any cell, honoring a
//     climbability rule selected by Mode:
//   - Forward: a step is allowed if the next cell is at most one rank higher.
//   - Reverse: a step is allowed if the current cell is at most one rank
//     higher than the next (walking the Forward rule backwards).
//   - The Result holds the predecessor record (a trace.Record), visit order
//     and depth of every reached cell, and can rebuild the path from any
//     reached cell back to the start.
//
// Stop predicate
//
//	WithStop registers a predicate evaluated on every dequeued cell before its
//	neighbors are expanded. When it returns true the search halts at once and
//	Result.Halted reports that cell. Without a predicate the whole reachable
//	component is explored.
//
// Determinism
//
//	Neighbors are expanded in a fixed order (down, up, right, left), so visit
//	order is reproducible. Any FIFO order yields the same hop counts.
//
// Complexity (W×H cells)
//
//   - Time:   O(W·H)  (each cell is enqueued at most once, four neighbors each)
//   - Memory: O(W·H)  (queue, visited set, predecessor map)
//
// Errors
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrParse from Parse.
//   - ErrNoCell when the grid has no 'S' / 'E'.
//   - ErrGridNil, ErrStartNotFound, ErrOptionViolation from Search.
//   - trace.ErrNotFound from Result.Path for cells never reached.
//   - ctx.Err() if the search context is cancelled.
package heightmap
