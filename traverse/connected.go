// SPDX-License-Identifier: MIT
//
// File: connected.go — undirected neighbor computation and depth-first
// reachability.
//
// Determinism:
//   - Neighbors returns sorted, deduplicated ids.
//   - ConnectedBlocks explores neighbors in sorted order and returns the
//     preorder discovery sequence, so output is stable for a fixed graph.

package traverse

import (
	"errors"
	"sort"

	"github.com/weftworks/patterngraph/core"
)

// ErrGraphNil is returned when a nil *core.PatternGraph is passed to
// ConnectedBlocks or FindCycles consumers that require one.
var ErrGraphNil = errors.New("traverse: graph is nil")

// ErrStartNotFound indicates the start block id does not exist in the graph.
var ErrStartNotFound = errors.New("traverse: start block not found")

// Neighbors returns the undirected neighbor set of the given block: every
// block it names as a peer through a bound point, and every block whose
// point names it. Self references (same-block binds) are excluded. The
// result is sorted and deduplicated; an unknown id yields an empty set.
// Complexity: O(V·P).
func Neighbors(g *core.PatternGraph, id string) []string {
	if g == nil || !g.HasBlock(id) {
		return nil
	}

	seen := make(map[string]struct{})

	// Outgoing: peers this block's points name.
	b, _ := g.Block(id)
	for _, p := range b.Points {
		if p.PeerBlockID != "" && p.PeerBlockID != id {
			seen[p.PeerBlockID] = struct{}{}
		}
	}

	// Incoming: blocks whose points name this block, even when this block
	// does not name them back (possible on imported data).
	for _, other := range g.Blocks() {
		if other.ID == id {
			continue
		}
		for _, p := range other.Points {
			if p.PeerBlockID == id {
				seen[other.ID] = struct{}{}
				break
			}
		}
	}

	out := make([]string, 0, len(seen))
	for nid := range seen {
		out = append(out, nid)
	}
	sort.Strings(out)

	return out
}

// ConnectedBlocks returns every block reachable from startID over the
// undirected neighbor relation, in depth-first discovery order starting
// with startID itself. Visited ids are tracked, so cyclic graphs terminate
// and no block is revisited.
//
// Errors: ErrGraphNil, ErrStartNotFound.
func ConnectedBlocks(g *core.PatternGraph, startID string) ([]string, error) {
	// 1) Guard inputs
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasBlock(startID) {
		return nil, ErrStartNotFound
	}

	// 2) Iterative DFS with an explicit stack; neighbors pushed in reverse
	//    sorted order so they pop in sorted order.
	visited := make(map[string]struct{}, g.BlockCount())
	order := make([]string, 0, g.BlockCount())
	stack := []string{startID}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, done := visited[id]; done {
			continue
		}
		visited[id] = struct{}{}
		order = append(order, id)

		nbrs := Neighbors(g, id)
		for i := len(nbrs) - 1; i >= 0; i-- {
			if _, done := visited[nbrs[i]]; !done {
				stack = append(stack, nbrs[i])
			}
		}
	}

	return order, nil
}
