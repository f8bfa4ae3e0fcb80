// SPDX-License-Identifier: MIT
//
// File: shapes.go — stock topology constructors.
//
// Contract:
//   - Deterministic ids "b0".."bN-1" in argument order.
//   - Every block gets one Output point "out" and one Input point "in";
//     Chain binds i.out → (i+1).in, Ring additionally closes the loop.
//   - Kind sequences that violate the block-kind table surface the core
//     bind sentinel; nothing is silently skipped.

package catalog

import (
	"errors"
	"fmt"

	"github.com/weftworks/patterngraph/core"
)

// ErrTooFewBlocks indicates a topology constructor received fewer kinds
// than its minimum (Chain ≥2, Ring ≥3).
var ErrTooFewBlocks = errors.New("catalog: too few blocks for topology")

const (
	minChainBlocks = 2
	minRingBlocks  = 3
)

// Chain builds a path of blocks of the given kinds, each bound
// output→input to the next.
// Complexity: O(n).
func Chain(kinds ...core.BlockKind) (*core.PatternGraph, error) {
	if len(kinds) < minChainBlocks {
		return nil, fmt.Errorf("Chain: n=%d < min=%d: %w", len(kinds), minChainBlocks, ErrTooFewBlocks)
	}

	g, err := unboundRow(kinds)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(kinds)-1; i++ {
		if err := g.Bind(shapeID(i), "out", shapeID(i+1), "in"); err != nil {
			return nil, fmt.Errorf("Chain: bind %d→%d: %w", i, i+1, err)
		}
	}

	return g, nil
}

// Ring builds a Chain and closes it back to the first block.
// Complexity: O(n).
func Ring(kinds ...core.BlockKind) (*core.PatternGraph, error) {
	if len(kinds) < minRingBlocks {
		return nil, fmt.Errorf("Ring: n=%d < min=%d: %w", len(kinds), minRingBlocks, ErrTooFewBlocks)
	}

	g, err := Chain(kinds...)
	if err != nil {
		return nil, fmt.Errorf("Ring: %w", err)
	}
	last := len(kinds) - 1
	if err := g.Bind(shapeID(last), "out", shapeID(0), "in"); err != nil {
		return nil, fmt.Errorf("Ring: close %d→0: %w", last, err)
	}

	return g, nil
}

// unboundRow adds one two-port block per kind, in order, with no binds.
func unboundRow(kinds []core.BlockKind) (*core.PatternGraph, error) {
	g := core.NewPatternGraph()
	for i, k := range kinds {
		b := core.NewBlock(shapeID(i), k,
			core.ConnectionPoint{ID: "out", Kind: core.Output},
			core.ConnectionPoint{ID: "in", Kind: core.Input},
		)
		if err := g.AddBlock(b); err != nil {
			return nil, fmt.Errorf("catalog: add %s: %w", b.ID, err)
		}
	}

	return g, nil
}

// shapeID is the deterministic id scheme shared by the topology
// constructors.
func shapeID(i int) string {
	return fmt.Sprintf("b%d", i)
}
