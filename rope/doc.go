// Package rope simulates a chain of knots dragged around a 2D grid by its
// head.
//
// The chain is stored as a slice of positions, head first. Moving the head
// one unit makes each follower react to its leader, in order:
//
//   - both |Δx| and |Δy| equal 2: step diagonally to the midpoint;
//   - only |Δx| equals 2: take the midpoint column and the leader's row;
//   - only |Δy| equals 2: take the leader's column and the midpoint row;
//   - otherwise stay put (and so does everything behind).
//
// After every head move each linked pair is at Chebyshev distance ≤ 1.
//
// Input lines read "<U|D|L|R> <count>" and expand into count unit steps.
package rope
