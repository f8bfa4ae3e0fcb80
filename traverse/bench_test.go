package traverse_test

import (
	"fmt"
	"testing"

	"github.com/weftworks/patterngraph/core"
	"github.com/weftworks/patterngraph/traverse"
)

// benchRing builds a ring of n alternating Pattern/Color blocks.
func benchRing(n int) *core.PatternGraph {
	g := core.NewPatternGraph()
	kind := func(i int) core.BlockKind {
		if i%2 == 0 {
			return core.KindPattern
		}

		return core.KindColor
	}
	for i := 0; i < n; i++ {
		_ = g.AddBlock(ioBlock(fmt.Sprintf("b%d", i), kind(i)))
	}
	for i := 0; i < n; i++ {
		_ = g.Bind(fmt.Sprintf("b%d", i), "out", fmt.Sprintf("b%d", (i+1)%n), "in")
	}

	return g
}

func BenchmarkConnectedBlocks_Ring32(b *testing.B) {
	g := benchRing(32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := traverse.ConnectedBlocks(g, "b0"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFindCycles_Ring16(b *testing.B) {
	g := benchRing(16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = traverse.FindCycles(g)
	}
}
