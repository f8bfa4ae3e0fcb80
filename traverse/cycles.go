// SPDX-License-Identifier: MIT
//
// File: cycles.go — cycle enumeration over the undirected peer relation.
//
// Contract:
//   - Every block is tried as a cycle start; the walk tracks the current
//     path (not a global visited set), so cycles through previously
//     explored regions are still found.
//   - The immediate parent is skipped as a candidate neighbor: a single
//     reciprocal bind is not a cycle.
//   - A cycle is recorded as the sub-path from the repeated block onward,
//     e.g. the ring b0→b1→b2→b0 yields [b0 b1 b2].
//   - No deduplication: the same cycle is reported once per start and
//     rotation (and once per direction). Callers needing distinct cycles
//     canonicalize with Canonical and collapse.

package traverse

import "github.com/weftworks/patterngraph/core"

// FindCycles enumerates cycles in the undirected peer relation.
// A nil or empty graph yields an empty list; an acyclic graph yields an
// empty list. See the file contract for duplication semantics.
func FindCycles(g *core.PatternGraph) [][]string {
	if g == nil {
		return nil
	}

	var cycles [][]string
	for _, start := range g.BlockIDs() {
		path := []string{start}
		onPath := map[string]int{start: 0}
		cycleWalk(g, start, "", path, onPath, &cycles)
	}

	return cycles
}

// cycleWalk extends the current simple path from id, closing a cycle
// whenever a neighbor other than the arrival parent is already on the path.
func cycleWalk(g *core.PatternGraph, id, parent string, path []string, onPath map[string]int, cycles *[][]string) {
	for _, nbr := range Neighbors(g, id) {
		if nbr == parent {
			continue // arriving bind is not a cycle
		}
		if at, ok := onPath[nbr]; ok {
			// Close the cycle: the sub-path from the repeated block onward.
			cyc := make([]string, len(path)-at)
			copy(cyc, path[at:])
			*cycles = append(*cycles, cyc)

			continue
		}
		onPath[nbr] = len(path)
		cycleWalk(g, nbr, id, append(path, nbr), onPath, cycles)
		delete(onPath, nbr)
	}
}

// Canonical rotates a cycle so its lexicographically smallest id comes
// first, giving rotation-equivalent cycles an identical representation.
// The input is not modified; an empty cycle returns nil.
func Canonical(cycle []string) []string {
	if len(cycle) == 0 {
		return nil
	}

	min := 0
	for i := 1; i < len(cycle); i++ {
		if cycle[i] < cycle[min] {
			min = i
		}
	}

	out := make([]string, 0, len(cycle))
	out = append(out, cycle[min:]...)
	out = append(out, cycle[:min]...)

	return out
}
