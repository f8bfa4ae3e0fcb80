package core_test

import (
	"fmt"

	"github.com/weftworks/patterngraph/core"
)

// ioBlock builds a block with one Output point "out" and one Input point
// "in" — the standard two-port shape most scenarios need.
func ioBlock(id string, kind core.BlockKind) *core.Block {
	return core.NewBlock(id, kind,
		core.ConnectionPoint{ID: "out", Kind: core.Output},
		core.ConnectionPoint{ID: "in", Kind: core.Input},
	)
}

// chainGraph builds blocks of the given kinds (ids "b0".."bN-1") and binds
// each output→input to the next. Panics on bind failure: test topologies
// are expected to be legal by construction.
func chainGraph(kinds ...core.BlockKind) *core.PatternGraph {
	g := core.NewPatternGraph()
	for i, k := range kinds {
		if err := g.AddBlock(ioBlock(blockID(i), k)); err != nil {
			panic(err)
		}
	}
	for i := 0; i < len(kinds)-1; i++ {
		if err := g.Bind(blockID(i), "out", blockID(i+1), "in"); err != nil {
			panic(err)
		}
	}

	return g
}

// ringGraph closes a chainGraph back to its first block.
func ringGraph(kinds ...core.BlockKind) *core.PatternGraph {
	g := chainGraph(kinds...)
	if err := g.Bind(blockID(len(kinds)-1), "out", blockID(0), "in"); err != nil {
		panic(err)
	}

	return g
}

func blockID(i int) string {
	return fmt.Sprintf("b%d", i)
}
