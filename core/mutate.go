// SPDX-License-Identifier: MIT
//
// File: mutate.go
// Role: All mutation operations on PatternGraph: AddBlock, RemoveBlock,
//       Bind, Unbind, UnbindAll.
// Contract:
//   - Every successful mutation marks the cached validity dirty; no
//     mutation path bypasses it.
//   - Bind and Unbind are all-or-nothing: a failed precondition leaves
//     every involved point untouched.
//   - RemoveBlock and UnbindAll treat "already gone" as a no-op, never an
//     error; Bind and Unbind surface not-found as typed failures.

package core

import "fmt"

// AddBlock appends a block to the arena.
//
// Steps:
//  1. Reject nil blocks and empty ids.
//  2. Reject id collisions (no silent overwrite).
//  3. Append to the arena and insertion order; mark validity dirty.
//
// Errors: ErrNilBlock, ErrEmptyBlockID, ErrIDCollision.
// Complexity: O(1).
func (g *PatternGraph) AddBlock(b *Block) error {
	// 1) Input validation
	if b == nil {
		return ErrNilBlock
	}
	if b.ID == "" {
		return ErrEmptyBlockID
	}

	// 2) Collision check — rejecting beats overwriting: a silent overwrite
	//    would drop the prior block and any binds it held.
	if _, exists := g.blocks[b.ID]; exists {
		return fmt.Errorf("AddBlock(%s): %w", b.ID, ErrIDCollision)
	}

	// 3) Insert and invalidate
	g.blocks[b.ID] = b
	g.order = append(g.order, b.ID)
	g.markDirty()

	return nil
}

// RemoveBlock deletes a block and severs every peer reference naming it.
//
// Removal is idempotent: an absent id is a no-op, not an error. When the
// block is present, every other block's connection points are scanned and
// any peer reference naming id is cleared on the surviving side — required
// to keep the reciprocity invariant, since the removed block's own points
// disappear with it.
//
// Complexity: O(V·P).
func (g *PatternGraph) RemoveBlock(id string) {
	if _, exists := g.blocks[id]; !exists {
		return // deletion of something already gone is not an error
	}

	// Sever inbound references before dropping the block.
	for _, b := range g.blocks {
		if b.ID == id {
			continue
		}
		for _, p := range b.Points {
			if p.PeerBlockID == id {
				p.clearPeer()
			}
		}
	}

	delete(g.blocks, id)
	for i, oid := range g.order {
		if oid == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	g.markDirty()
}

// Bind pairs two connection points across two blocks.
//
// Validation ladder (checked in order, nothing is written until all pass):
//  1. Both blocks exist, both points exist.
//  2. The two points are distinct.
//  3. Neither point already has a peer.
//  4. Connection kinds are compatible.
//  5. Anchors are compatible.
//  6. Block kinds are bindable.
//
// On success both peer fields are set symmetrically and validity is marked
// dirty. No partial binds: a failure at any step leaves both points
// completely unmodified.
//
// Errors: ErrBlockNotFound, ErrPointNotFound, ErrSelfBind, ErrPointBound,
// ErrConnectionKindMismatch, ErrAnchorMismatch, ErrBlockKindMismatch.
// Complexity: O(P) point lookup.
func (g *PatternGraph) Bind(blockA, pointA, blockB, pointB string) error {
	// 1) Resolve both endpoints
	ba, pa, err := g.resolve(blockA, pointA)
	if err != nil {
		return fmt.Errorf("Bind(%s/%s): %w", blockA, pointA, err)
	}
	bb, pb, err := g.resolve(blockB, pointB)
	if err != nil {
		return fmt.Errorf("Bind(%s/%s): %w", blockB, pointB, err)
	}

	// 2) A point cannot peer with itself
	if ba.ID == bb.ID && pa.ID == pb.ID {
		return ErrSelfBind
	}

	// 3) Exclusivity: one peer per point
	if pa.Bound() || pb.Bound() {
		return ErrPointBound
	}

	// 4) Connection-kind rule
	if !ConnectionKindsCompatible(pa.Kind, pb.Kind) {
		return fmt.Errorf("Bind(%s↔%s): %w", pa.Kind, pb.Kind, ErrConnectionKindMismatch)
	}

	// 5) Anchor rule (independent spatial axis)
	if !AnchorsCompatible(pa.Anchor, pb.Anchor) {
		return fmt.Errorf("Bind(%s↔%s): %w", pa.Anchor, pb.Anchor, ErrAnchorMismatch)
	}

	// 6) Block-kind rule (independent of connection kinds; both must hold)
	if !BlockKindsCanBind(ba.Kind, bb.Kind) {
		return fmt.Errorf("Bind(%s↔%s): %w", ba.Kind, bb.Kind, ErrBlockKindMismatch)
	}

	// All checks passed: set both sides symmetrically.
	pa.PeerBlockID, pa.PeerPointID = bb.ID, pb.ID
	pb.PeerBlockID, pb.PeerPointID = ba.ID, pa.ID
	g.markDirty()

	return nil
}

// Unbind severs the bind between two connection points.
//
// The two points must exist and be mutual peers of each other, checked in
// both directions; anything else returns ErrNotPeers (or a not-found
// sentinel from resolution). On success both sides are cleared symmetrically
// and validity is marked dirty.
//
// Errors: ErrBlockNotFound, ErrPointNotFound, ErrNotPeers.
// Complexity: O(P) point lookup.
func (g *PatternGraph) Unbind(blockA, pointA, blockB, pointB string) error {
	_, pa, err := g.resolve(blockA, pointA)
	if err != nil {
		return fmt.Errorf("Unbind(%s/%s): %w", blockA, pointA, err)
	}
	_, pb, err := g.resolve(blockB, pointB)
	if err != nil {
		return fmt.Errorf("Unbind(%s/%s): %w", blockB, pointB, err)
	}

	// Both directions must agree before anything is cleared.
	if pa.PeerBlockID != blockB || pa.PeerPointID != pointB ||
		pb.PeerBlockID != blockA || pb.PeerPointID != pointA {
		return ErrNotPeers
	}

	pa.clearPeer()
	pb.clearPeer()
	g.markDirty()

	return nil
}

// UnbindAll severs every bind touching the given block, clearing both ends.
// An absent block id is a no-op. Complexity: O(V·P).
func (g *PatternGraph) UnbindAll(blockID string) {
	b, exists := g.blocks[blockID]
	if !exists {
		return
	}

	touched := false

	// Outgoing side: clear this block's own peers and, where reciprocal,
	// the far side too.
	for _, p := range b.Points {
		if !p.Bound() {
			continue
		}
		if peer, ok := g.blocks[p.PeerBlockID]; ok {
			if pp, ok := peer.Point(p.PeerPointID); ok && pp.PeerBlockID == blockID {
				pp.clearPeer()
			}
		}
		p.clearPeer()
		touched = true
	}

	// Inbound side: a non-reciprocal reference (possible on imported data)
	// may name this block without being named back; sever those as well.
	for _, other := range g.blocks {
		if other.ID == blockID {
			continue
		}
		for _, p := range other.Points {
			if p.PeerBlockID == blockID {
				p.clearPeer()
				touched = true
			}
		}
	}

	if touched {
		g.markDirty()
	}
}

// resolve looks up a block and one of its points by id.
func (g *PatternGraph) resolve(blockID, pointID string) (*Block, *ConnectionPoint, error) {
	b, ok := g.blocks[blockID]
	if !ok {
		return nil, nil, ErrBlockNotFound
	}
	p, ok := b.Point(pointID)
	if !ok {
		return nil, nil, ErrPointNotFound
	}

	return b, p, nil
}
