// Package trace records how positions were reached during a search or a
// simulation, as a predecessor ("came from") map anchored at a start
// position, and rebuilds the path from any reached position back to that
// start.
//
// A Record is built incrementally by its owner (Link) and is meant to be
// read-only once the traversal that fills it has finished.
//
// Errors:
//
//   - ErrNotFound: the queried position was never reached.
//   - ErrBroken: the predecessor chain does not lead back to the start.
package trace
