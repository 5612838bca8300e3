package interval_test

import (
	"fmt"

	"github.com/katalvlaran/gridlab/interval"
)

// ExampleMerge folds overlapping and touching ranges together.
func ExampleMerge() {
	in := []interval.Interval{{Start: 14, End: 19}, {Start: 4, End: 8}, {Start: -3, End: 3}, {Start: 8, End: 12}}
	for i := range interval.Merge(in) {
		fmt.Println(i)
	}
	// Output:
	// [-3,12]
	// [14,19]
}
