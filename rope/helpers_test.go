package rope_test

import (
	"iter"

	"github.com/katalvlaran/gridlab/rope"
)

// iterPull adapts iter.Pull to a plain next() for step-by-step tests.
func iterPull(seq iter.Seq[rope.Direction]) (func() rope.Direction, func()) {
	next, stop := iter.Pull(seq)
	return func() rope.Direction {
		d, _ := next()
		return d
	}, stop
}
