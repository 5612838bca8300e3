package sand

import (
	"fmt"
	"iter"

	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/gridlab/geom"
	"github.com/katalvlaran/gridlab/trace"
)

// fall lists the moves a grain tries, in priority order.
var fall = [...]geom.Point{
	{X: 0, Y: 1},  // down
	{X: -1, Y: 1}, // down-left
	{X: 1, Y: 1},  // down-right
}

// Simulation drops grains into a Cave one at a time.
type Simulation struct {
	cave    *Cave
	opts    Options
	pending *stack.Stack[geom.Point]
	record  *trace.Record[geom.Point]
	grain   geom.Point
	done    bool
	err     error
}

// NewSimulation prepares a simulation over c. The first grain appears at
// the cave source, which must be free.
func NewSimulation(c *Cave, opts ...Option) (*Simulation, error) {
	if c == nil {
		return nil, ErrCaveNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if c.Occupied(c.source) {
		return nil, fmt.Errorf("%w: %v", ErrSourceBlocked, c.source)
	}

	s := &Simulation{
		cave:    c,
		opts:    o,
		pending: stack.New[geom.Point](),
		record:  trace.New(c.source),
		grain:   c.source,
	}
	s.pending.Push(c.source)
	return s, nil
}

// Cave returns the world being mutated.
func (s *Simulation) Cave() *Cave { return s.cave }

// Grain returns the position of the grain currently falling.
func (s *Simulation) Grain() geom.Point { return s.grain }

// Done reports whether the simulation has ended.
func (s *Simulation) Done() bool { return s.done }

// Err returns the context error that ended the simulation, if any.
func (s *Simulation) Err() error { return s.err }

// Next moves the current grain until it settles and reports it. It returns
// false once the source is filled, the stop predicate fires or the context
// is cancelled.
func (s *Simulation) Next() (Event, bool) {
	for !s.done {
		select {
		case <-s.opts.Ctx.Done():
			s.err = s.opts.Ctx.Err()
			s.done = true
			return Event{}, false
		default:
		}
		if s.opts.Stop(s.cave, s.grain) {
			s.done = true
			return Event{}, false
		}

		if s.step() {
			continue
		}
		return s.settle(), true
	}
	return Event{}, false
}

// step moves the grain to its first free candidate. Every free candidate is
// recorded and pushed so later grains can resume from it. It returns false
// when no candidate is free.
func (s *Simulation) step() bool {
	var free []geom.Point
	for _, d := range fall {
		next := s.grain.Add(d)
		if !s.cave.Occupied(next) {
			free = append(free, next)
		}
	}
	if len(free) == 0 {
		return false
	}
	for i := len(free) - 1; i >= 0; i-- {
		if !s.record.Reached(free[i]) {
			s.record.Link(free[i], s.grain)
		}
		s.pending.Push(free[i])
	}
	s.grain = free[0]
	return true
}

// settle freezes the grain, drops pending cells that are no longer free and
// resumes from the newest remaining one.
func (s *Simulation) settle() Event {
	g := s.grain
	s.cave.settle(g)
	for s.pending.Size() > 0 && s.cave.Occupied(s.pending.Peek()) {
		s.pending.Pop()
	}
	if s.pending.Size() == 0 {
		s.done = true
	} else {
		s.grain = s.pending.Peek()
	}
	return Event{Grain: g, Count: s.cave.Count()}
}

// Events yields settle events until Next reports false.
func (s *Simulation) Events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for {
			ev, ok := s.Next()
			if !ok || !yield(ev) {
				return
			}
		}
	}
}

// Run drains the simulation and returns the number of grains settled by
// this call.
func (s *Simulation) Run() int {
	n := 0
	for range s.Events() {
		n++
	}
	return n
}

// Path returns the fall from p back to the source, p first.
func (s *Simulation) Path(p geom.Point) ([]geom.Point, error) {
	return s.record.Path(p)
}

// Trajectory returns the fall of the most recently settled grain, from its
// resting place back to the source.
func (s *Simulation) Trajectory() ([]geom.Point, error) {
	last, ok := s.cave.Last()
	if !ok {
		return nil, trace.ErrNotFound
	}
	return s.record.Path(last)
}

// Record exposes the cumulative predecessor map.
func (s *Simulation) Record() *trace.Record[geom.Point] { return s.record }
