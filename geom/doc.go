// Package geom holds the small integer geometry shared by the gridlab
// simulators: 2D points, Manhattan and Chebyshev distances, and
// axis-aligned extents.
//
// Coordinates follow screen convention: X grows to the right and Y grows
// downward, so "falling" means increasing Y and row r of a grid is Y == r.
//
// Points are generic over signed integers (Vec[T]), with Point as the
// int-based alias every other package uses.
package geom
