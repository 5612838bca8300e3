package heightmap

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridlab/geom"
	"github.com/katalvlaran/gridlab/trace"
)

// Sentinel errors for parsing and searching.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("heightmap: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("heightmap: all rows must have the same length")
	// ErrParse indicates an unknown elevation code.
	ErrParse = errors.New("heightmap: invalid elevation code")
	// ErrNoCell indicates no cell carries the requested code.
	ErrNoCell = errors.New("heightmap: no cell with requested code")
	// ErrGridNil is returned when Search receives a nil grid.
	ErrGridNil = errors.New("heightmap: grid is nil")
	// ErrStartNotFound is returned when the start position lies outside the grid.
	ErrStartNotFound = errors.New("heightmap: start position outside grid")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("heightmap: invalid option supplied")
)

// Elevation codes with special meaning.
const (
	StartCode  byte = 'S'
	TargetCode byte = 'E'
)

// MaxElevation is the rank of 'z' and of the target.
const MaxElevation = 25

// Cell is one grid square: its position (X = column, Y = row) and its code.
type Cell struct {
	Pos  geom.Point
	Code byte
}

// Elevation returns the rank of c on the 0..25 scale.
func (c Cell) Elevation() int {
	switch c.Code {
	case StartCode:
		return 0
	case TargetCode:
		return MaxElevation
	default:
		return int(c.Code - 'a')
	}
}

// Mode selects the climbability rule.
type Mode int

const (
	// Forward allows stepping up at most one rank (and down any amount).
	Forward Mode = iota
	// Reverse allows stepping down at most one rank (and up any amount).
	Reverse
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Climbable reports whether a step from → to is allowed under m.
func (m Mode) Climbable(from, to Cell) bool {
	if m == Reverse {
		return from.Elevation() <= to.Elevation()+1
	}
	return to.Elevation() <= from.Elevation()+1
}

// Option configures Search via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by Search.
type Option func(*Options)

// Options holds parameters and callbacks for Search.
type Options struct {
	// Ctx allows cancellation; it is checked once per dequeued cell.
	Ctx context.Context

	// Mode selects the climbability rule.
	Mode Mode

	// Stop is evaluated on every dequeued cell before expansion.
	// Returning true halts the search.
	Stop func(c Cell) bool

	// OnVisit is called for every dequeued cell with its depth.
	OnVisit func(c Cell, depth int)

	err error
}

// DefaultOptions returns background context, Forward mode, no stop
// predicate and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Mode:    Forward,
		Stop:    func(Cell) bool { return false },
		OnVisit: func(Cell, int) {},
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMode selects Forward or Reverse climbing.
func WithMode(m Mode) Option {
	return func(o *Options) {
		switch m {
		case Forward, Reverse:
			o.Mode = m
		default:
			o.err = fmt.Errorf("%w: unknown mode %v", ErrOptionViolation, m)
		}
	}
}

// WithStop registers the halting predicate.
func WithStop(fn func(c Cell) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Stop = fn
		}
	}
}

// WithOnVisit registers a callback run for every dequeued cell.
func WithOnVisit(fn func(c Cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result is the outcome of a Search.
//   - Order: positions in dequeue order.
//   - Depth: hop count from the start for every reached position.
type Result struct {
	Order []geom.Point
	Depth map[geom.Point]int

	record *trace.Record[geom.Point]
	halted Cell
	halt   bool
}

// Start returns the position the search began at.
func (r *Result) Start() geom.Point { return r.record.Start() }

// Reached reports whether p was discovered.
func (r *Result) Reached(p geom.Point) bool { return r.record.Reached(p) }

// Path returns the positions from p back to the start, both inclusive.
// Unreached positions yield trace.ErrNotFound.
func (r *Result) Path(p geom.Point) ([]geom.Point, error) { return r.record.Path(p) }

// Steps returns the fewest number of moves from the start to p.
func (r *Result) Steps(p geom.Point) (int, error) { return r.record.Steps(p) }

// Halted returns the cell on which the stop predicate fired, if it did.
func (r *Result) Halted() (Cell, bool) { return r.halted, r.halt }

// Record exposes the underlying predecessor record.
func (r *Result) Record() *trace.Record[geom.Point] { return r.record }
