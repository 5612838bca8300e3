// Package puzzle connects run files to the solvers.
//
// Each puzzle kind registers a Solver. A Runner reads the input named by a
// config.Puzzle, looks up the solver for its kind and logs the answers with
// logrus. Solvers are plain functions over the input lines; they never log.
package puzzle
