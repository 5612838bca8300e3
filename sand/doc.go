// Package sand simulates grains falling one at a time from a source into a
// cave of rock structures until they come to rest.
//
// What
//
//   - ParseStructures reads rock paths "x1,y1 -> x2,y2 -> ..." made of
//     horizontal and vertical segments.
//   - WithFloor adds an infinite-looking floor two rows below the lowest
//     rock, wide enough to catch every grain the source can produce.
//   - A Simulation advances grain by grain: each grain tries straight down,
//     then down-left, then down-right, and settles when all three are taken.
//     Next returns one settle Event per call; Events wraps it as an iterator.
//
// Stop predicate
//
//	WithStop registers a predicate evaluated against the falling grain before
//	every step. Escaped is the usual choice for floorless caves: without a
//	floor a grain that drops below all rock falls forever. With a floor the
//	simulation ends by itself once the source position is filled.
//
// Trajectories
//
//	Every free cell a grain tries is linked to the cell it was reached from
//	in a trace.Record. The record is cumulative across grains and never
//	pruned, so Path can rebuild the fall of any grain back to the source.
//
// Resuming
//
//	Free cells found along the way are kept on a stack. A new grain follows
//	the same route as the previous one until the point where that one
//	settled, so the next grain resumes from the top of the stack instead of
//	falling again from the source. Cells filled since they were pushed are
//	discarded first.
//
// Errors
//
//   - ErrParse from ParseStructures.
//   - ErrCaveNil, ErrSourceBlocked, ErrOptionViolation from NewSimulation.
//   - ctx.Err() via Simulation.Err if the context is cancelled.
package sand
