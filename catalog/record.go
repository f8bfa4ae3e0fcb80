// SPDX-License-Identifier: MIT
//
// File: record.go — untrusted record → core.Block conversion.
//
// Contract:
//   - Every string field is untrusted: kinds and anchors are parsed through
//     the core closed enumerations and unknown values error out with the
//     record's position attached for diagnostics.
//   - A record without an id gets a minted UUID; producers that track
//     identity themselves pass their own ids through untouched.

package catalog

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/weftworks/patterngraph/core"
)

// ErrDuplicatePointID indicates a BlockRecord repeats a connection-point id.
var ErrDuplicatePointID = errors.New("catalog: duplicate connection point id")

// ErrEmptyPointID indicates a BlockRecord carries a point without an id.
// Point ids are producer-assigned; unlike block ids they are not minted.
var ErrEmptyPointID = errors.New("catalog: empty connection point id")

// PointRecord is the raw form of one connection point.
type PointRecord struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Anchor string `json:"anchor,omitempty"`
}

// BlockRecord is the raw form of one block as produced by a catalog loader
// or content generator. Peer references never appear here: records describe
// unbound blocks; binding happens on the graph.
type BlockRecord struct {
	ID         string            `json:"id,omitempty"`
	Kind       string            `json:"kind"`
	Subkind    string            `json:"subkind,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Points     []PointRecord     `json:"points"`
}

// NewBlock converts a record into a core.Block.
//
// Steps:
//  1. Parse the block kind (unknown → error, no default).
//  2. Parse every point's kind and anchor; reject duplicate point ids.
//  3. Mint a UUID when the record carries no id.
//  4. Copy attributes and metadata.
//
// Errors: core.ErrUnknownBlockKind, core.ErrUnknownConnectionKind,
// core.ErrUnknownAnchor, ErrDuplicatePointID — all wrapped with record
// context.
func NewBlock(rec BlockRecord) (*core.Block, error) {
	kind, err := core.ParseBlockKind(rec.Kind)
	if err != nil {
		return nil, fmt.Errorf("catalog: record %q: %w", rec.ID, err)
	}

	points := make([]core.ConnectionPoint, 0, len(rec.Points))
	seen := make(map[string]struct{}, len(rec.Points))
	for i, pr := range rec.Points {
		if pr.ID == "" {
			return nil, fmt.Errorf("catalog: record %q point %d: %w", rec.ID, i, ErrEmptyPointID)
		}
		if _, dup := seen[pr.ID]; dup {
			return nil, fmt.Errorf("catalog: record %q point %q: %w", rec.ID, pr.ID, ErrDuplicatePointID)
		}
		seen[pr.ID] = struct{}{}

		ck, err := core.ParseConnectionKind(pr.Kind)
		if err != nil {
			return nil, fmt.Errorf("catalog: record %q point %q: %w", rec.ID, pr.ID, err)
		}
		anchor, err := core.ParseAnchor(pr.Anchor)
		if err != nil {
			return nil, fmt.Errorf("catalog: record %q point %q: %w", rec.ID, pr.ID, err)
		}

		points = append(points, core.ConnectionPoint{ID: pr.ID, Kind: ck, Anchor: anchor})
	}

	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}

	b := core.NewBlock(id, kind, points...)
	b.Subkind = rec.Subkind
	for k, v := range rec.Attributes {
		b.Attributes[k] = v
	}
	for k, v := range rec.Metadata {
		b.Metadata[k] = v
	}

	return b, nil
}

// NewBlocks converts a slice of records, failing on the first bad record.
func NewBlocks(recs []BlockRecord) ([]*core.Block, error) {
	out := make([]*core.Block, 0, len(recs))
	for _, rec := range recs {
		b, err := NewBlock(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}

	return out, nil
}
