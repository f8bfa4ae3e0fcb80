// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Closed enumerations (BlockKind, ConnectionKind, Anchor), their
//       string parsers, spatial value types, and the Block/ConnectionPoint
//       entities.
// Policy:
//   - Parsing from untrusted strings goes through ParseX functions that
//     return an error on unknown input. There is no silent default kind.
//   - Peer links are stored as ids (PeerBlockID/PeerPointID), never as
//     pointers; both are set together or both empty.

package core

import "fmt"

// BlockKind is the closed enumeration of block node kinds.
type BlockKind string

const (
	// KindPattern is the distinguished motif-carrying kind; a valid pattern
	// requires at least one block of this kind.
	KindPattern BlockKind = "pattern"

	// KindColor carries color assignments consumed by classification.
	KindColor BlockKind = "color"

	// KindStructure groups blocks into larger compositional units.
	KindStructure BlockKind = "structure"

	// KindLoop marks a repeated sub-sequence.
	KindLoop BlockKind = "loop"

	// KindColumn marks a vertical strip within a structure.
	KindColumn BlockKind = "column"
)

// blockKinds enumerates every BlockKind; used by parsers and rule tables.
var blockKinds = []BlockKind{KindPattern, KindColor, KindStructure, KindLoop, KindColumn}

// ParseBlockKind converts an untrusted string into a BlockKind.
// Unknown input returns ErrUnknownBlockKind; there is deliberately no
// fallback kind, so data-entry bugs surface instead of being absorbed.
func ParseBlockKind(s string) (BlockKind, error) {
	for _, k := range blockKinds {
		if string(k) == s {
			return k, nil
		}
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownBlockKind)
}

// ConnectionKind is the closed enumeration of connection-point kinds.
type ConnectionKind string

const (
	// Input accepts a bind from an Output or Bidirectional point.
	Input ConnectionKind = "input"

	// Output offers a bind to an Input or Bidirectional point.
	Output ConnectionKind = "output"

	// Bidirectional binds to any connection kind.
	Bidirectional ConnectionKind = "bidirectional"
)

// connectionKinds enumerates every ConnectionKind.
var connectionKinds = []ConnectionKind{Input, Output, Bidirectional}

// ParseConnectionKind converts an untrusted string into a ConnectionKind.
// Unknown input returns ErrUnknownConnectionKind.
func ParseConnectionKind(s string) (ConnectionKind, error) {
	for _, k := range connectionKinds {
		if string(k) == s {
			return k, nil
		}
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownConnectionKind)
}

// Anchor is the spatial sub-attribute of a connection point: where on the
// block face the point sits. It forms a second compatibility axis,
// independent of ConnectionKind (both must hold for a bind to succeed).
type Anchor string

const (
	// AnchorNone means the point carries no spatial constraint.
	AnchorNone Anchor = ""

	AnchorTop    Anchor = "top"
	AnchorBottom Anchor = "bottom"
	AnchorLeft   Anchor = "left"
	AnchorRight  Anchor = "right"

	// AnchorCenter is spatially unconstrained and pairs with any anchor.
	AnchorCenter Anchor = "center"
)

// anchors enumerates every non-empty Anchor.
var anchors = []Anchor{AnchorTop, AnchorBottom, AnchorLeft, AnchorRight, AnchorCenter}

// ParseAnchor converts an untrusted string into an Anchor.
// The empty string parses to AnchorNone; other unknown input returns
// ErrUnknownAnchor.
func ParseAnchor(s string) (Anchor, error) {
	if s == "" {
		return AnchorNone, nil
	}
	for _, a := range anchors {
		if string(a) == s {
			return a, nil
		}
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownAnchor)
}

// Position is a block's placement on the canvas. Mutable; irrelevant to
// validity.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Extent is a block's size on the canvas. Mutable; irrelevant to validity.
type Extent struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// ConnectionPoint is a typed attachment point on a block.
//
// ID is unique within the owning block. PeerBlockID and PeerPointID are
// either both set (the point is bound) or both empty (free); they must only
// be mutated through PatternGraph.Bind/Unbind so the reciprocity invariant
// and the validity cache stay correct.
type ConnectionPoint struct {
	ID     string         `json:"id"`
	Kind   ConnectionKind `json:"kind"`
	Anchor Anchor         `json:"anchor,omitempty"`

	PeerBlockID string `json:"peerBlockId,omitempty"`
	PeerPointID string `json:"peerPointId,omitempty"`
}

// Bound reports whether the point currently has a peer.
func (p *ConnectionPoint) Bound() bool {
	return p.PeerBlockID != "" && p.PeerPointID != ""
}

// clearPeer resets both peer fields together.
func (p *ConnectionPoint) clearPeer() {
	p.PeerBlockID = ""
	p.PeerPointID = ""
}

// Block is a typed node in the pattern graph.
//
// ID and Kind are immutable after creation. The connection-point list is
// fixed at construction: points are never added or removed, only their peer
// fields change. Attributes holds semantically typed values read by
// classification (e.g. "pattern", "color"); Metadata is reserved for
// provenance and cultural annotation and is ignored by validation.
type Block struct {
	ID      string    `json:"id"`
	Kind    BlockKind `json:"kind"`
	Subkind string    `json:"subkind,omitempty"`

	Position Position `json:"position"`
	Extent   Extent   `json:"extent"`

	Points []*ConnectionPoint `json:"points"`

	Attributes map[string]string `json:"attributes,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// NewBlock constructs a Block with the given identity, kind, and fixed
// connection-point list. Attribute and metadata maps are allocated empty.
// Point values are copied; the caller's slice is not retained.
func NewBlock(id string, kind BlockKind, points ...ConnectionPoint) *Block {
	b := &Block{
		ID:         id,
		Kind:       kind,
		Points:     make([]*ConnectionPoint, 0, len(points)),
		Attributes: make(map[string]string),
		Metadata:   make(map[string]string),
	}
	for i := range points {
		p := points[i] // copy, do not alias the caller's storage
		b.Points = append(b.Points, &p)
	}

	return b
}

// Point returns the connection point with the given id, or (nil, false).
func (b *Block) Point(id string) (*ConnectionPoint, bool) {
	for _, p := range b.Points {
		if p.ID == id {
			return p, true
		}
	}

	return nil, false
}

// clone deep-copies the block, including point peer state and both maps.
func (b *Block) clone() *Block {
	nb := &Block{
		ID:         b.ID,
		Kind:       b.Kind,
		Subkind:    b.Subkind,
		Position:   b.Position,
		Extent:     b.Extent,
		Points:     make([]*ConnectionPoint, 0, len(b.Points)),
		Attributes: make(map[string]string, len(b.Attributes)),
		Metadata:   make(map[string]string, len(b.Metadata)),
	}
	for _, p := range b.Points {
		cp := *p
		nb.Points = append(nb.Points, &cp)
	}
	for k, v := range b.Attributes {
		nb.Attributes[k] = v
	}
	for k, v := range b.Metadata {
		nb.Metadata[k] = v
	}

	return nb
}
