// SPDX-License-Identifier: MIT
//
// File: validity.go
// Role: Cached well-formedness — the derive-on-demand, invalidate-on-write
//       memoization cell and the full reciprocity/compatibility sweep
//       behind it.
// Contract:
//   - IsWellFormed recomputes only when dirty; mutation operations are the
//     only writers of the dirty flag.
//   - The sweep short-circuits on the first failure but is total when no
//     failure is found: every point of every block is visited.
//   - A broken invariant found here is data to report (the graph is
//     invalid), not a programming error: graphs may arrive pre-built from
//     external producers that never went through this package's mutators.

package core

// markDirty invalidates the cached well-formedness result.
func (g *PatternGraph) markDirty() {
	g.valid = validityDirty
}

// IsWellFormed reports whether every stated peer reference in the graph is
// reciprocal and kind-compatible. The empty graph is vacuously well-formed.
//
// The result is cached: a read while the cache is dirty runs the full sweep
// and stores the outcome; subsequent reads return the stored value until
// the next mutation. Complexity: O(V·P) when dirty, O(1) when cached.
func (g *PatternGraph) IsWellFormed() bool {
	if g.valid == validityDirty {
		if g.checkWellFormed() {
			g.valid = validityValid
		} else {
			g.valid = validityInvalid
		}
	}

	return g.valid == validityValid
}

// checkWellFormed runs the uncached sweep. For every connection point with
// a peer set: the named peer block and point must exist, the peer must name
// this point back, and both the connection-kind and block-kind rules (plus
// the anchor axis) must hold for the pair.
func (g *PatternGraph) checkWellFormed() bool {
	for _, id := range g.order {
		b := g.blocks[id]
		for _, p := range b.Points {
			if p.PeerBlockID == "" && p.PeerPointID == "" {
				continue // free point
			}
			// Half-set peer fields violate the both-or-neither invariant.
			if p.PeerBlockID == "" || p.PeerPointID == "" {
				return false
			}
			peer, ok := g.blocks[p.PeerBlockID]
			if !ok {
				return false // dangling block reference
			}
			pp, ok := peer.Point(p.PeerPointID)
			if !ok {
				return false // dangling point reference
			}
			// Reciprocity: the peer must point straight back.
			if pp.PeerBlockID != b.ID || pp.PeerPointID != p.ID {
				return false
			}
			// Kind rules, both axes, plus the block-kind table.
			if !ConnectionKindsCompatible(p.Kind, pp.Kind) {
				return false
			}
			if !AnchorsCompatible(p.Anchor, pp.Anchor) {
				return false
			}
			if !BlockKindsCanBind(b.Kind, peer.Kind) {
				return false
			}
		}
	}

	return true
}
