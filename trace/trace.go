package trace

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrNotFound is returned when a queried position was never reached.
	ErrNotFound = errors.New("trace: position not reached")

	// ErrBroken is returned when following predecessors never arrives at the start.
	ErrBroken = errors.New("trace: predecessor chain does not reach start")
)

// Record maps every reached position to the position it was reached from.
// The start position is reached implicitly and has no predecessor.
type Record[T comparable] struct {
	start T
	prev  map[T]T
}

// New returns an empty Record anchored at start.
func New[T comparable](start T) *Record[T] {
	return &Record[T]{start: start, prev: make(map[T]T)}
}

// Start returns the anchor position.
func (r *Record[T]) Start() T { return r.start }

// Link records that to was reached from from. A later Link for the same
// position replaces the earlier predecessor.
func (r *Record[T]) Link(to, from T) {
	r.prev[to] = from
}

// Reached reports whether p is the start or has a recorded predecessor.
func (r *Record[T]) Reached(p T) bool {
	if p == r.start {
		return true
	}
	_, ok := r.prev[p]
	return ok
}

// Len returns the number of positions with a recorded predecessor.
func (r *Record[T]) Len() int { return len(r.prev) }

// Path returns the positions from p back to the start, both inclusive.
func (r *Record[T]) Path(p T) ([]T, error) {
	if !r.Reached(p) {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, p)
	}
	path := []T{p}
	for cur := p; cur != r.start; {
		prev, ok := r.prev[cur]
		if !ok || len(path) > len(r.prev) {
			return nil, fmt.Errorf("%w: stuck at %v", ErrBroken, cur)
		}
		path = append(path, prev)
		cur = prev
	}
	return path, nil
}

// Steps returns the number of moves between the start and p (len(Path)-1).
func (r *Record[T]) Steps(p T) (int, error) {
	path, err := r.Path(p)
	if err != nil {
		return 0, err
	}
	return len(path) - 1, nil
}

// All yields every (position, predecessor) pair in unspecified order.
func (r *Record[T]) All() iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		for to, from := range r.prev {
			if !yield(to, from) {
				return
			}
		}
	}
}
