// Package snapshot is the serialization boundary of the pattern graph: a
// deterministic, order-preserving export of blocks, connection points, peer
// references, attributes, and metadata, plus the inverse import.
//
// What:
//
//   - Export/Import: graph ⇄ Snapshot value (plain structs, JSON-tagged).
//   - EncodeJSON/DecodeJSON: graph ⇄ canonical JSON bytes.
//
// Why:
//   - Persistence and transmission collaborators consume snapshots; the
//     core graph itself has no wire format. Import(Export(g)) reproduces an
//     observationally identical graph.
//
// Import restores peer references verbatim without re-binding, so a
// snapshot produced by an external tool may violate reciprocity or the
// kind rules — such a graph imports successfully and is *reported invalid*
// by validation. Kind and anchor strings, however, go through the closed
// enumeration parsers: unknown values fail the import (ErrBadSnapshot
// wrapping the parse sentinel), never fall back to a default.
//
// Determinism:
//   - Blocks serialize in insertion order; maps marshal with sorted keys
//     (encoding/json), so equal graphs produce byte-equal encodings.
//
// Errors:
//
//   - ErrNilSnapshot — Import(nil)
//   - ErrBadSnapshot — unparseable kind/anchor, duplicate ids, empty ids
package snapshot
