// SPDX-License-Identifier: MIT
//
// File: snapshot.go — snapshot value types, Export, and Import.
//
// Contract:
//   - Export copies everything and aliases nothing: mutating the graph
//     after Export does not change the snapshot, and vice versa.
//   - Import re-parses every kind/anchor string through the core closed
//     enumeration parsers and rebuilds the arena in snapshot order. Peer
//     fields are restored verbatim; validation, not import, judges them.

package snapshot

import (
	"errors"
	"fmt"

	"github.com/weftworks/patterngraph/core"
)

// ErrNilSnapshot indicates Import received a nil snapshot.
var ErrNilSnapshot = errors.New("snapshot: snapshot is nil")

// ErrBadSnapshot indicates the snapshot data cannot form a graph: unknown
// kind or anchor strings, empty or duplicate ids. The wrapped cause names
// the offending value.
var ErrBadSnapshot = errors.New("snapshot: malformed snapshot")

// PointState is the serialized form of one connection point.
type PointState struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Anchor      string `json:"anchor,omitempty"`
	PeerBlockID string `json:"peerBlockId,omitempty"`
	PeerPointID string `json:"peerPointId,omitempty"`
}

// BlockState is the serialized form of one block.
type BlockState struct {
	ID         string            `json:"id"`
	Kind       string            `json:"kind"`
	Subkind    string            `json:"subkind,omitempty"`
	Position   core.Position     `json:"position"`
	Extent     core.Extent       `json:"extent"`
	Points     []PointState      `json:"points"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// Snapshot is the full serialized graph. Blocks appear in the graph's
// insertion order.
type Snapshot struct {
	Metadata map[string]string `json:"metadata,omitempty"`
	Blocks   []BlockState      `json:"blocks"`
}

// Export captures the graph as a snapshot. Complexity: O(V·P).
func Export(g *core.PatternGraph) *Snapshot {
	s := &Snapshot{}
	if g == nil {
		return s
	}

	if len(g.Metadata()) > 0 {
		s.Metadata = make(map[string]string, len(g.Metadata()))
		for k, v := range g.Metadata() {
			s.Metadata[k] = v
		}
	}

	for _, b := range g.Blocks() {
		bs := BlockState{
			ID:       b.ID,
			Kind:     string(b.Kind),
			Subkind:  b.Subkind,
			Position: b.Position,
			Extent:   b.Extent,
			Points:   make([]PointState, 0, len(b.Points)),
		}
		for _, p := range b.Points {
			bs.Points = append(bs.Points, PointState{
				ID:          p.ID,
				Kind:        string(p.Kind),
				Anchor:      string(p.Anchor),
				PeerBlockID: p.PeerBlockID,
				PeerPointID: p.PeerPointID,
			})
		}
		if len(b.Attributes) > 0 {
			bs.Attributes = make(map[string]string, len(b.Attributes))
			for k, v := range b.Attributes {
				bs.Attributes[k] = v
			}
		}
		if len(b.Metadata) > 0 {
			bs.Metadata = make(map[string]string, len(b.Metadata))
			for k, v := range b.Metadata {
				bs.Metadata[k] = v
			}
		}
		s.Blocks = append(s.Blocks, bs)
	}

	return s
}

// Import rebuilds a graph from a snapshot.
//
// Steps:
//  1. Parse every block kind, connection kind, and anchor through the
//     closed-enum parsers; any unknown string fails with ErrBadSnapshot.
//  2. Reject duplicate point ids within a block (the arena rejects
//     duplicate block ids on its own).
//  3. Add blocks in snapshot order; restore peer fields verbatim.
//
// The imported graph starts with dirty validity: a malformed external
// snapshot is valid input here and invalid output of IsWellFormed there.
func Import(s *Snapshot) (*core.PatternGraph, error) {
	if s == nil {
		return nil, ErrNilSnapshot
	}

	g := core.NewPatternGraph()
	for k, v := range s.Metadata {
		g.Metadata()[k] = v
	}

	for _, bs := range s.Blocks {
		kind, err := core.ParseBlockKind(bs.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w: block %q: %w", ErrBadSnapshot, bs.ID, err)
		}

		points := make([]core.ConnectionPoint, 0, len(bs.Points))
		seen := make(map[string]struct{}, len(bs.Points))
		for _, ps := range bs.Points {
			if ps.ID == "" {
				return nil, fmt.Errorf("%w: block %q has a point with an empty id", ErrBadSnapshot, bs.ID)
			}
			if _, dup := seen[ps.ID]; dup {
				return nil, fmt.Errorf("%w: block %q repeats point id %q", ErrBadSnapshot, bs.ID, ps.ID)
			}
			seen[ps.ID] = struct{}{}

			ck, err := core.ParseConnectionKind(ps.Kind)
			if err != nil {
				return nil, fmt.Errorf("%w: block %q point %q: %w", ErrBadSnapshot, bs.ID, ps.ID, err)
			}
			anchor, err := core.ParseAnchor(ps.Anchor)
			if err != nil {
				return nil, fmt.Errorf("%w: block %q point %q: %w", ErrBadSnapshot, bs.ID, ps.ID, err)
			}

			points = append(points, core.ConnectionPoint{
				ID:          ps.ID,
				Kind:        ck,
				Anchor:      anchor,
				PeerBlockID: ps.PeerBlockID,
				PeerPointID: ps.PeerPointID,
			})
		}

		b := core.NewBlock(bs.ID, kind, points...)
		b.Subkind = bs.Subkind
		b.Position = bs.Position
		b.Extent = bs.Extent
		for k, v := range bs.Attributes {
			b.Attributes[k] = v
		}
		for k, v := range bs.Metadata {
			b.Metadata[k] = v
		}

		if err := g.AddBlock(b); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadSnapshot, err)
		}
	}

	return g, nil
}
