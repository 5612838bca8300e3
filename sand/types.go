package sand

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridlab/geom"
)

// Sentinel errors.
var (
	// ErrParse indicates a malformed rock path.
	ErrParse = errors.New("sand: malformed rock path")
	// ErrCaveNil is returned when NewSimulation receives a nil cave.
	ErrCaveNil = errors.New("sand: cave is nil")
	// ErrSourceBlocked is returned when the source position is already occupied.
	ErrSourceBlocked = errors.New("sand: source position is occupied")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sand: invalid option supplied")
)

// DefaultSource returns where grains enter the cave unless told otherwise.
func DefaultSource() geom.Point { return geom.Point{X: 500, Y: 0} }

// Cell symbols used by Render.
const (
	RockSymbol   = '#'
	SandSymbol   = 'o'
	SourceSymbol = '+'
)

// StopFunc decides, before each step, whether the simulation should end.
type StopFunc func(c *Cave, grain geom.Point) bool

// Never is a StopFunc that never stops.
func Never(*Cave, geom.Point) bool { return false }

// Escaped stops once the grain has dropped below every structure.
func Escaped(c *Cave, grain geom.Point) bool {
	return grain.Y > c.Extent().Max.Y
}

// Event reports a grain that just settled.
type Event struct {
	// Grain is where the grain came to rest.
	Grain geom.Point
	// Count is the number of grains settled so far, this one included.
	Count int
}

// Option configures a Simulation.
type Option func(*Options)

// Options holds Simulation parameters.
type Options struct {
	// Ctx allows cancellation; it is checked before every step.
	Ctx context.Context
	// Stop ends the simulation when it returns true.
	Stop StopFunc

	err error
}

// DefaultOptions returns background context and Never.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Stop: Never}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStop registers the stop predicate. A nil predicate is an
// ErrOptionViolation.
func WithStop(fn StopFunc) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = errors.Join(ErrOptionViolation, errors.New("nil stop predicate"))
			return
		}
		o.Stop = fn
	}
}
