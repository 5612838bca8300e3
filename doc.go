// Package gridlab is a small workbench of discrete 2D search and simulation
// puzzles: a parse, compute, answer pipeline per puzzle kind.
//
// What is in it?
//
//	geom/      - generic points, Manhattan and Chebyshev distance, extents
//	trace/     - predecessor records with path reconstruction
//	heightmap/ - breadth-first search over an elevation grid (forward/reverse)
//	rope/      - chained knots following a moving head
//	sand/      - grains falling into a cave until they settle
//	interval/  - merging 1D intervals in a single sorted sweep
//	beacon/    - sensor diamonds projected onto rows, coverage and gaps
//	canvas/    - character canvases for printing and terminal painting
//	config/    - YAML and HCL run files
//	puzzle/    - solver registry and runner
//	cmd/gridlab - the command line front end
//
// The algorithm packages are pure: no logging, no global state, explicit
// options passed per call. Lazy results are exposed as iter.Seq so callers
// can pull one element at a time or drain everything.
//
// Quick start:
//
//	g, _ := heightmap.Parse(lines)
//	start, _ := g.Start()
//	target, _ := g.Target()
//	res, _ := heightmap.Search(g, start.Pos)
//	steps, _ := res.Steps(target.Pos)
package gridlab
