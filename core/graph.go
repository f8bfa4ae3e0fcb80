// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: PatternGraph arena — construction, options, lookup queries, stats,
//       deep cloning. Mutation lives in mutate.go; cached validity in
//       validity.go.
// Determinism:
//   - BlockIDs() and Blocks() return insertion order, the order snapshot
//     export preserves.

package core

// validity is the tri-state cached well-formedness cell.
type validity int

const (
	validityDirty validity = iota // not computed, or invalidated by mutation
	validityValid
	validityInvalid
)

// GraphOption configures a PatternGraph at construction time.
type GraphOption func(g *PatternGraph)

// WithMetadata sets one graph-level metadata entry (e.g. name, creator,
// free-form tags). Metadata is irrelevant to validation.
func WithMetadata(key, value string) GraphOption {
	return func(g *PatternGraph) { g.metadata[key] = value }
}

// PatternGraph owns an ordered arena of blocks and is the unit validation
// and classification operate on.
//
// Blocks are indexed by id; insertion order is tracked separately and is
// semantically irrelevant to validity but preserved for deterministic
// export. The graph carries no locking: it has exactly one logical owner at
// a time (see package doc).
type PatternGraph struct {
	order    []string          // block ids in insertion order
	blocks   map[string]*Block // id → block
	metadata map[string]string // free-form graph annotation

	valid validity // cached well-formedness, invalidated by every mutation
}

// NewPatternGraph creates an empty PatternGraph with the given options.
// Complexity: O(len(opts)).
func NewPatternGraph(opts ...GraphOption) *PatternGraph {
	g := &PatternGraph{
		blocks:   make(map[string]*Block),
		metadata: make(map[string]string),
		valid:    validityDirty,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Block returns the block with the given id.
// Peer fields on the returned block's points must only be mutated through
// Bind/Unbind; position, extent, attributes, and metadata may be edited in
// place (they do not affect validity).
func (g *PatternGraph) Block(id string) (*Block, error) {
	b, ok := g.blocks[id]
	if !ok {
		return nil, ErrBlockNotFound
	}

	return b, nil
}

// HasBlock reports whether a block with the given id is in the arena.
func (g *PatternGraph) HasBlock(id string) bool {
	_, ok := g.blocks[id]

	return ok
}

// BlockIDs returns all block ids in insertion order.
// The returned slice is a copy; mutating it does not affect the graph.
func (g *PatternGraph) BlockIDs() []string {
	ids := make([]string, len(g.order))
	copy(ids, g.order)

	return ids
}

// Blocks returns all blocks in insertion order.
// The slice is fresh on every call; the *Block values are the live arena
// entries (see Block for the mutation contract).
func (g *PatternGraph) Blocks() []*Block {
	out := make([]*Block, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.blocks[id])
	}

	return out
}

// BlockCount returns the number of blocks in the arena.
func (g *PatternGraph) BlockCount() int {
	return len(g.order)
}

// Metadata returns the graph-level metadata map (live, not a copy).
func (g *PatternGraph) Metadata() map[string]string {
	return g.metadata
}

// GraphStats is a read-only summary of arena composition, suitable for
// diagnostics and test assertions.
type GraphStats struct {
	BlockCount int
	PointCount int
	BoundCount int // connection points currently holding a peer
	KindCounts map[BlockKind]int
}

// Stats produces a deterministic snapshot of block, point, and bind counts.
// Complexity: O(V·P).
func (g *PatternGraph) Stats() *GraphStats {
	st := &GraphStats{KindCounts: make(map[BlockKind]int)}
	for _, id := range g.order {
		b := g.blocks[id]
		st.BlockCount++
		st.KindCounts[b.Kind]++
		for _, p := range b.Points {
			st.PointCount++
			if p.Bound() {
				st.BoundCount++
			}
		}
	}

	return st
}

// Clone deep-copies the graph: blocks, points, peer state, and all metadata
// maps. The clone shares no mutable state with the original and starts with
// the same cached validity. Use Clone before handing a graph to another
// goroutine; the live graph must never be aliased across execution contexts.
// Complexity: O(V·P).
func (g *PatternGraph) Clone() *PatternGraph {
	ng := &PatternGraph{
		order:    make([]string, len(g.order)),
		blocks:   make(map[string]*Block, len(g.blocks)),
		metadata: make(map[string]string, len(g.metadata)),
		valid:    g.valid,
	}
	copy(ng.order, g.order)
	for id, b := range g.blocks {
		ng.blocks[id] = b.clone()
	}
	for k, v := range g.metadata {
		ng.metadata[k] = v
	}

	return ng
}
