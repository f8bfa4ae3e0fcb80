// Package core defines the pattern-graph data model: typed blocks, their
// connection points, the PatternGraph arena that owns them, and the pure
// compatibility rule tables that govern which binds are legal.
//
// What:
//
//   - Block: a typed node with a fixed list of connection points, free-form
//     attributes, and free-form metadata.
//   - ConnectionPoint: a typed attachment point; optionally bound to exactly
//     one peer point on another block. Peers are stored as ids, never as
//     direct references; all traversal goes through arena lookup.
//   - PatternGraph: an ordered arena of blocks with mutation operations
//     (AddBlock, RemoveBlock, Bind, Unbind, UnbindAll) that preserve the
//     reciprocity invariant, and a cached tri-state well-formedness result.
//   - Rule tables: ConnectionKindsCompatible, BlockKindsCanBind,
//     AnchorsCompatible — pure, total functions over closed enumerations.
//
// Why:
//   - Model a visual pattern as a small (tens of nodes) mutable graph whose
//     binds are constrained by kind-compatibility rules, and keep derived
//     validity cheap through invalidate-on-write memoization.
//
// Invariants (enforced by the mutation API, verified by IsWellFormed):
//
//   - A connection point has at most one peer; peer references are always
//     reciprocal when produced through Bind/Unbind/RemoveBlock.
//   - Bind is all-or-nothing: a failed precondition leaves both points
//     untouched.
//   - RemoveBlock severs every peer reference naming the removed block; no
//     dangling peer ids survive a removal.
//   - Every mutation marks the cached validity dirty; no mutation path
//     bypasses it.
//
// Concurrency:
//   - Single-owner, single-threaded semantics. PatternGraph carries no
//     locking; a caller offloading work to another goroutine must hand it a
//     Clone(), never the live graph.
//
// Errors:
//
//   - ErrNilBlock, ErrEmptyBlockID, ErrIDCollision      — AddBlock
//   - ErrBlockNotFound, ErrPointNotFound                — Bind/Unbind lookups
//   - ErrSelfBind, ErrPointBound                        — Bind preconditions
//   - ErrConnectionKindMismatch, ErrAnchorMismatch,
//     ErrBlockKindMismatch                              — Bind rule checks
//   - ErrNotPeers                                       — Unbind
//   - ErrUnknownBlockKind, ErrUnknownConnectionKind,
//     ErrUnknownAnchor                                  — string parsing
//
// Complexity:
//
//   - AddBlock/Bind/Unbind: O(1) beyond point-list scans (points per block
//     are few and fixed).
//   - RemoveBlock/UnbindAll: O(V·P) arena sweep (V=#blocks, P=points/block).
//   - IsWellFormed: O(V·P) when dirty, O(1) when cached.
package core
