package rope_test

import (
	"fmt"

	"github.com/katalvlaran/gridlab/rope"
)

// ExampleRecordTail drags a two-knot rope along an L-shaped route.
func ExampleRecordTail() {
	moves, err := rope.ParseMoves([]string{"R 3", "U 2"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	r, _ := rope.New(2)
	visited := rope.RecordTail(r, rope.Steps(moves))
	fmt.Println("head:", r.Head(), "tail:", r.Tail(), "visited:", visited.Size())
	// Output:
	// head: 3,-2 tail: 3,-1 visited: 4
}
