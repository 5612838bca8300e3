package rope_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridlab/rope"
)

// BenchmarkRecordTail replays 2000 random moves on a 10-knot rope.
func BenchmarkRecordTail(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	moves := make([]rope.Move, 2000)
	for i := range moves {
		moves[i] = rope.Move{Dir: rope.Direction(r.Intn(4)), Count: 1 + r.Intn(20)}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = rope.CountTailPositions(10, moves)
	}
}
